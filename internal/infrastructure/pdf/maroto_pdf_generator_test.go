package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

func TestGenerateInvoicePDF(t *testing.T) {
	inv := entity.Invoice{
		ID: "INV-2025-006", Date: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Client: "KRBL Limited", Amount: decimal.NewFromInt(10000), Tax: decimal.NewFromInt(1800),
		Items: 1, Status: entity.InvoiceStatusPending,
	}
	company := billing.Company{
		Name: "FumiManager Inc.", AddressLines: []string{"123 Industrial Estate, Mundra Port"},
		GSTIN: "24AAACC1234J1Z2", Currency: "₹", ServiceLabel: "Fumigation Services (Methyl Bromide)",
		TaxLabel: "IGST (18%)",
	}

	b, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv, company)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(ctx, entity.Invoice{}, billing.Company{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "Rs. ", currencySymbol("₹"))
	assert.Equal(t, "$", currencySymbol("$"))
}
