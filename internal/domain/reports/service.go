package reports

import (
	"context"
	"fmt"
	"time"
)

// Service runs the report aggregators over repository snapshots.
type Service struct {
	repo Repository

	// now is swapped in tests for deterministic activity reports.
	now func() time.Time
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) customerLedgers(ctx context.Context) ([]*CustomerLedger, error) {
	ledgers, err := s.repo.CustomerLedgers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customer ledgers: %w", err)
	}
	return ledgers, nil
}

// ItemReportByParty reports sold quantity and amount per customer and product.
func (s *Service) ItemReportByParty(ctx context.Context, rng DateRange) ([]PartyItemRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return ItemReportByParty(ledgers, rng), nil
}

// ItemSaleSummary reports sold quantity per product.
func (s *Service) ItemSaleSummary(ctx context.Context, rng DateRange) ([]ItemSummaryRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return ItemSaleSummary(ledgers, rng), nil
}

// MonthlyBusinessSummary reports sales and collections per calendar month.
func (s *Service) MonthlyBusinessSummary(ctx context.Context, rng DateRange) ([]MonthlySummaryRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyBusinessSummary(ledgers, rng), nil
}

// CustomerWiseSummary reports per-customer totals for customers with activity
// inside the range.
func (s *Service) CustomerWiseSummary(ctx context.Context, rng DateRange) ([]CustomerSummaryRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return CustomerWiseSummary(ledgers, rng), nil
}

// AccountBalanceSummary reports collected payment totals per funds account.
func (s *Service) AccountBalanceSummary(ctx context.Context, rng DateRange) ([]AccountBalanceRow, error) {
	ledgers, err := s.repo.AccountLedgers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load account ledgers: %w", err)
	}
	return AccountBalanceSummary(ledgers, rng), nil
}

// TransactionReport returns the flat transaction list, newest first.
func (s *Service) TransactionReport(ctx context.Context, rng DateRange) ([]TransactionRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return TransactionReport(ledgers, rng), nil
}

// CustomerActivityData reports per-customer recency relative to the current
// clock.
func (s *Service) CustomerActivityData(ctx context.Context) ([]CustomerActivityRow, error) {
	ledgers, err := s.customerLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return CustomerActivityData(ledgers, s.now()), nil
}

// ProfitLossData reports revenue, cost and per-bag profit over the range.
func (s *Service) ProfitLossData(ctx context.Context, rng DateRange) (ProfitLoss, error) {
	sales, err := s.repo.Sales(ctx)
	if err != nil {
		return ProfitLoss{}, fmt.Errorf("load sales: %w", err)
	}
	purchases, err := s.repo.Purchases(ctx)
	if err != nil {
		return ProfitLoss{}, fmt.Errorf("load purchases: %w", err)
	}
	return ProfitLossData(sales, purchases, rng), nil
}
