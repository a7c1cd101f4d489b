package sap

import "github.com/ericfisherdev/sapdash/internal/domain/model"

// wireOrder mirrors one A_SalesOrder entity as the OData v2 service delivers
// it. All scalar fields are strings on the wire, including amounts.
type wireOrder struct {
	SalesOrder            string         `json:"SalesOrder"`
	SalesOrderType        string         `json:"SalesOrderType"`
	SoldToParty           string         `json:"SoldToParty"`
	SoldToPartyName       string         `json:"SoldToPartyName"`
	CreationDate          string         `json:"CreationDate"`
	CreatedByUser         string         `json:"CreatedByUser"`
	TotalNetAmount        string         `json:"TotalNetAmount"`
	TransactionCurrency   string         `json:"TransactionCurrency"`
	SalesOrderDate        string         `json:"SalesOrderDate"`
	OverallDeliveryStatus string         `json:"OverallDeliveryStatus"`
	OverallBillingStatus  string         `json:"OverallBillingStatus"`
	ToItem                *wireItemsPage `json:"to_Item"`
}

// wireItemsPage is the nested results wrapper around expanded line items.
type wireItemsPage struct {
	Results []wireItem `json:"results"`
}

// wireItem mirrors one A_SalesOrderItem entity.
type wireItem struct {
	SalesOrderItem      string `json:"SalesOrderItem"`
	Material            string `json:"Material"`
	SalesOrderItemText  string `json:"SalesOrderItemText"`
	OrderQuantity       string `json:"OrderQuantity"`
	OrderQuantityUnit   string `json:"OrderQuantityUnit"`
	NetAmount           string `json:"NetAmount"`
	TransactionCurrency string `json:"TransactionCurrency"`
}

// mapOrder converts a wire order to the domain model. Date strings stay in
// their wrapped epoch form; model.DecodeSAPDate handles them downstream.
func mapOrder(w wireOrder) model.SalesOrder {
	var items []model.SalesOrderItem
	if w.ToItem != nil {
		items = make([]model.SalesOrderItem, 0, len(w.ToItem.Results))
		for _, item := range w.ToItem.Results {
			items = append(items, mapItem(item))
		}
	}

	return model.SalesOrder{
		ID:                    w.SalesOrder,
		Type:                  w.SalesOrderType,
		SoldToParty:           w.SoldToParty,
		SoldToPartyName:       w.SoldToPartyName,
		CreationDate:          w.CreationDate,
		CreatedByUser:         w.CreatedByUser,
		TotalNetAmount:        w.TotalNetAmount,
		TransactionCurrency:   w.TransactionCurrency,
		SalesOrderDate:        w.SalesOrderDate,
		OverallDeliveryStatus: model.ProcessingStatus(w.OverallDeliveryStatus),
		OverallBillingStatus:  model.ProcessingStatus(w.OverallBillingStatus),
		Items:                 items,
	}
}

// mapItem converts a wire line item to the domain model.
func mapItem(w wireItem) model.SalesOrderItem {
	return model.SalesOrderItem{
		ID:           w.SalesOrderItem,
		Material:     w.Material,
		Description:  w.SalesOrderItemText,
		Quantity:     w.OrderQuantity,
		QuantityUnit: w.OrderQuantityUnit,
		NetAmount:    w.NetAmount,
		Currency:     w.TransactionCurrency,
	}
}
