package payment_test

import (
	"testing"

	"orderbot/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
)

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "cash", payment.Cash.String())
	assert.Equal(t, "card", payment.Card.String())
	assert.Equal(t, "unknown", payment.UnknownMethod.String())
}

func TestInvoiceAmount(t *testing.T) {
	assert.Equal(t, int64(140000), payment.InvoiceAmount(1400))
	assert.Equal(t, int64(0), payment.InvoiceAmount(0))
}
