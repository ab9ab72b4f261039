package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
)

type mockCatalog struct {
	entity.BaseCatalog
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
	Skip  string `db:"-" json:"-"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	for _, expected := range []string{"id", "deletion_mark", "version", "name", "phone"} {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Name:  "Ramesh Traders",
		Phone: "+919876543210",
		Skip:  "not persisted",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "Ramesh Traders", m["name"])
	assert.Equal(t, "+919876543210", m["phone"])
	assert.NotContains(t, m, "-")
}
