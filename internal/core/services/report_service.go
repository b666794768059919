package services

import (
	"context"
	"sort"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	priceBook portssvc.PriceBookSvcFacade
	customers portssvc.CustomerSvcFacade
	ledger    portssvc.LedgerSvcFacade
}

// NewReportingService creates the daily report builder.
func NewReportingService(
	priceBook portssvc.PriceBookSvcFacade,
	customers portssvc.CustomerSvcFacade,
	ledger portssvc.LedgerSvcFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		priceBook: priceBook,
		customers: customers,
		ledger:    ledger,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BuildDailyReport assembles the snapshot for a date. The per-row kas bon
// figure is the balance carried after the day's payments were reconciled;
// the stored balances are never touched.
func (s *reportingService) BuildDailyReport(ctx context.Context, date string) (*domain.DailyReport, error) {
	day, err := s.ledger.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := s.priceBook.ListPrices(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.DailyReport{
		Date:      day.Date,
		Customers: []domain.ReportCustomer{},
		Stock:     day.Stock,
		Prices:    domain.PriceMap(prices),
	}

	for _, customer := range customers {
		txn, ok := day.Transactions[customer.CustomerID]
		if !ok || len(txn.Items) == 0 {
			continue
		}

		// A missing payment means the customer settled in cash for the
		// full amount.
		paid := txn.Total
		if txn.Paid != nil {
			paid = *txn.Paid
		}
		kasBon, ok := day.Credits[customer.CustomerID]
		if !ok {
			kasBon = decimal.Zero
		}

		report.Customers = append(report.Customers, domain.ReportCustomer{
			Name:     customer.Name,
			Category: customer.Category,
			Items:    domain.CopyQuantities(txn.Items),
			Total:    txn.Total,
			Paid:     paid,
			KasBon:   kasBon,
		})
	}

	sort.Slice(report.Customers, func(i, j int) bool {
		return report.Customers[i].Name < report.Customers[j].Name
	})

	summary := domain.ReportSummary{
		TotalRevenue:   decimal.Zero,
		TotalKasBon:    decimal.Zero,
		TotalCustomers: len(customers),
	}
	for _, row := range report.Customers {
		summary.TotalRevenue = summary.TotalRevenue.Add(row.Paid)
		summary.TotalKasBon = summary.TotalKasBon.Add(row.KasBon)
	}
	report.Summary = summary

	return report, nil
}
