package entities

// Quote is the price breakdown computed for a machine selection. Installment
// fields are nil for cash quotes and for machines not offered in installments.
type Quote struct {
	UnitPrice  float64
	TotalPrice float64

	Installments         *int
	InstallmentUnitPrice *float64
	InstallmentTotal     *float64
}
