// Package payment holds the payment choices offered at the end of checkout.
package payment

// Method is how the customer pays.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	Card
)

func (m Method) String() string {
	switch m {
	case Cash:
		return "cash"
	case Card:
		return "card"
	default:
		return "unknown"
	}
}

// MinorUnitsPerMajor converts backend currency units to the smallest unit
// the payment provider expects.
const MinorUnitsPerMajor int64 = 100

// InvoiceAmount converts a cart total to the invoice amount.
func InvoiceAmount(total int64) int64 {
	return total * MinorUnitsPerMajor
}
