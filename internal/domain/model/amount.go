package model

import "github.com/shopspring/decimal"

// ParseAmount converts an OData decimal-string amount to an exact decimal.
// Empty and malformed inputs parse as zero; the remote system occasionally
// omits amounts on incomplete orders and the dashboard treats those as 0.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ItemTotal sums the net amounts of the order's line items.
func (o SalesOrder) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(ParseAmount(item.NetAmount))
	}
	return total
}
