package application

import (
	"github.com/shopspring/decimal"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
)

// OrderSummary aggregates a listing for the dashboard's summary cards.
type OrderSummary struct {
	OrderCount int
	TotalValue decimal.Decimal
	Pending    int // delivery status A
	Processing int // delivery status B
	Completed  int // delivery status C
}

// Summarize computes the order-value total and delivery-status counts for a
// set of orders. Amounts are summed exactly; no currency conversion or
// cross-currency check is attempted.
func Summarize(orders []model.SalesOrder) OrderSummary {
	summary := OrderSummary{
		OrderCount: len(orders),
		TotalValue: decimal.Zero,
	}

	for _, order := range orders {
		summary.TotalValue = summary.TotalValue.Add(model.ParseAmount(order.TotalNetAmount))

		switch order.OverallDeliveryStatus {
		case model.StatusNotProcessed:
			summary.Pending++
		case model.StatusPartiallyProcessed:
			summary.Processing++
		case model.StatusCompletelyProcessed:
			summary.Completed++
		}
	}

	return summary
}
