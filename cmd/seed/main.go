// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/catalogs/account"
	"ledgerbook/internal/domain/catalogs/customer"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/infrastructure/storage/postgres"
	"ledgerbook/internal/infrastructure/storage/postgres/catalog_repo"
	"ledgerbook/internal/infrastructure/storage/postgres/ledger_repo"
	"ledgerbook/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("seed")

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`,
		adminUsername,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", adminUsername, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	adminID := id.New()
	now := time.Now().UTC()
	_, err = pool.Pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, display_name, is_active, is_admin, created_at, updated_at, version)
		 VALUES ($1, $2, $3, $4, true, true, $5, $5, 1)`,
		adminID, adminUsername, string(hash), "Administrator", now,
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", adminUsername, "user_id", adminID)
	return nil
}

// seedDemoData inserts a small trading dataset: a few customers, the default
// cash and bank accounts, and a handful of ledger entries.
func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	txManager := postgres.NewTxManager(pool)

	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	accountRepo := catalog_repo.NewAccountRepo(txManager)
	ledgerRepo := ledger_repo.NewTransactionRepo(txManager)

	phone := "9876543210"
	village := "Rampur"

	customers := []*customer.Customer{
		customer.NewCustomer("Ramesh Traders", customer.CategoryWholesale),
		customer.NewCustomer("Anita Stores", customer.CategoryRetail),
	}
	customers[0].Phone = &phone
	customers[1].Village = &village

	accounts := []*account.Account{
		account.NewAccount("Cash", account.KindCash),
		account.NewAccount("SBI Current", account.KindBank),
	}

	err := txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, c := range customers {
			if err := customerRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("create customer %s: %w", c.Name, err)
			}
		}
		for _, a := range accounts {
			if err := accountRepo.Create(ctx, a); err != nil {
				return fmt.Errorf("create account %s: %w", a.Name, err)
			}
		}

		product := "Rice"
		bags := 10.0
		entries := []*ledger.Transaction{
			ledger.NewTransaction(customers[0].ID, ledger.TypeSale,
				time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), types.MinorUnits(12000)),
			ledger.NewTransaction(customers[0].ID, ledger.TypePayment,
				time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), types.MinorUnits(5000)),
			ledger.NewTransaction(customers[1].ID, ledger.TypeSale,
				time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), types.MinorUnits(3000)),
		}
		entries[0].SubCategory = &product
		entries[0].Bags = &bags
		entries[1].AccountID = &accounts[0].ID

		for _, t := range entries {
			if err := ledgerRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("create ledger entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infow("demo data seeded",
		"customers", len(customers),
		"accounts", len(accounts),
	)
	return nil
}
