package model

// SalesOrder is one sales-order record as read from the remote system.
// Scalar fields keep their wire form: amounts stay decimal strings and the
// date fields stay in SAP's wrapped epoch form ("/Date(ms)/"); DecodeSAPDate
// and ParseAmount normalize them where a view needs to.
type SalesOrder struct {
	ID                    string
	Type                  string
	SoldToParty           string
	SoldToPartyName       string
	CreationDate          string
	CreatedByUser         string
	TotalNetAmount        string
	TransactionCurrency   string
	SalesOrderDate        string
	OverallDeliveryStatus ProcessingStatus
	OverallBillingStatus  ProcessingStatus
	Items                 []SalesOrderItem
}

// SalesOrderItem is one line item of a sales order. Quantity and NetAmount
// are decimal strings, as delivered.
type SalesOrderItem struct {
	ID           string
	Material     string
	Description  string
	Quantity     string
	QuantityUnit string
	NetAmount    string
	Currency     string
}
