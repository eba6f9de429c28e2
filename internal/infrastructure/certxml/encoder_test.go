package certxml_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/infrastructure/certxml"
)

func TestEncodeCertificate(t *testing.T) {
	c := entity.Certificate{
		CertNo: "045 A", Branch: "Gujarat", Treatment: "Methyl Bromide (MB)",
		Exporter: "Designers & Desire", BillingParty: "Designers & Desire",
		FumigationDate: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		ContainerNo:    "GLDU-9876543(20')", Dosage: "32/m³", Temperature: "25°C",
		Amount: "4500", Country: "Russia", Status: entity.CertificatePendingInvoice,
	}

	b, err := certxml.NewEncoder().EncodeCertificate(c)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "FumigationCertificate", root.Tag)
	assert.Equal(t, "045 A", root.SelectAttrValue("number", ""))
	assert.Equal(t, entity.CertificatePendingInvoice, root.SelectAttrValue("status", ""))

	assert.Equal(t, "Designers & Desire", root.FindElement("Parties/Exporter").Text(), "el texto se escapa y se recupera")
	assert.Equal(t, "2025-08-28", root.FindElement("Dates/Fumigation").Text())
	assert.Nil(t, root.FindElement("Dates/Issue"), "sin fecha de emisión no hay nodo")
	assert.Nil(t, root.FindElement("Parties/Consignee"))
	assert.Equal(t, "32/m³", root.FindElement("Conditions/Dosage").Text())
	assert.Equal(t, "4500", root.FindElement("Billing/Amount").Text())
}
