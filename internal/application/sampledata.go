package application

import "github.com/ericfisherdev/sapdash/internal/domain/model"

// SampleOrders returns the fixed demo data set served while no SAP
// credentials are configured, so the dashboard has content before a
// connection is established. Deterministic: every call returns a fresh copy
// of the same three orders, each line-item set summing to its order total.
func SampleOrders() []model.SalesOrder {
	return []model.SalesOrder{
		{
			ID:                    "0000000001",
			Type:                  "OR",
			SoldToParty:           "0000100001",
			SoldToPartyName:       "ABC Corporation",
			CreationDate:          "/Date(1704067200000)/",
			CreatedByUser:         "SALES001",
			TotalNetAmount:        "15750.00",
			TransactionCurrency:   "USD",
			SalesOrderDate:        "/Date(1704067200000)/",
			OverallDeliveryStatus: model.StatusNotProcessed,
			OverallBillingStatus:  model.StatusNotProcessed,
			Items: []model.SalesOrderItem{
				{
					ID:           "000010",
					Material:     "MAT001",
					Description:  "Premium Widget Set",
					Quantity:     "5.000",
					QuantityUnit: "EA",
					NetAmount:    "7500.00",
					Currency:     "USD",
				},
				{
					ID:           "000020",
					Material:     "MAT002",
					Description:  "Standard Widget",
					Quantity:     "10.000",
					QuantityUnit: "EA",
					NetAmount:    "8250.00",
					Currency:     "USD",
				},
			},
		},
		{
			ID:                    "0000000002",
			Type:                  "OR",
			SoldToParty:           "0000100002",
			SoldToPartyName:       "XYZ Industries",
			CreationDate:          "/Date(1703980800000)/",
			CreatedByUser:         "SALES002",
			TotalNetAmount:        "28900.00",
			TransactionCurrency:   "USD",
			SalesOrderDate:        "/Date(1703980800000)/",
			OverallDeliveryStatus: model.StatusPartiallyProcessed,
			OverallBillingStatus:  model.StatusNotProcessed,
			Items: []model.SalesOrderItem{
				{
					ID:           "000010",
					Material:     "MAT003",
					Description:  "Enterprise Solution Package",
					Quantity:     "1.000",
					QuantityUnit: "EA",
					NetAmount:    "28900.00",
					Currency:     "USD",
				},
			},
		},
		{
			ID:                    "0000000003",
			Type:                  "OR",
			SoldToParty:           "0000100003",
			SoldToPartyName:       "Tech Solutions Ltd",
			CreationDate:          "/Date(1703894400000)/",
			CreatedByUser:         "SALES001",
			TotalNetAmount:        "12300.00",
			TransactionCurrency:   "USD",
			SalesOrderDate:        "/Date(1703894400000)/",
			OverallDeliveryStatus: model.StatusCompletelyProcessed,
			OverallBillingStatus:  model.StatusPartiallyProcessed,
			Items: []model.SalesOrderItem{
				{
					ID:           "000010",
					Material:     "MAT004",
					Description:  "Software License",
					Quantity:     "3.000",
					QuantityUnit: "EA",
					NetAmount:    "9000.00",
					Currency:     "USD",
				},
				{
					ID:           "000020",
					Material:     "MAT005",
					Description:  "Support Package",
					Quantity:     "1.000",
					QuantityUnit: "EA",
					NetAmount:    "3300.00",
					Currency:     "USD",
				},
			},
		},
	}
}
