package handlers

import (
	"ledgerbook/internal/domain/catalogs/account"
	"ledgerbook/internal/infrastructure/http/v1/dto"
)

// AccountHTTPHandler is the catalog handler specialization for funds accounts.
type AccountHTTPHandler = CatalogHandler[
	*account.Account,
	dto.CreateAccountRequest,
	dto.UpdateAccountRequest,
]

// NewAccountHandler creates a new funds account handler.
func NewAccountHandler(base *BaseHandler, service *account.Service) *AccountHTTPHandler {
	cfg := CatalogHandlerConfig[*account.Account, dto.CreateAccountRequest, dto.UpdateAccountRequest]{
		Service:    service.CatalogService,
		EntityName: "account",
		MapCreateDTO: func(req dto.CreateAccountRequest) *account.Account {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateAccountRequest, existing *account.Account) *account.Account {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *account.Account) any {
			return dto.FromAccount(entity)
		},
	}

	return NewCatalogHandler(base, cfg)
}
