// Package certxml genera el documento XML de un certificado de fumigación.
package certxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/fumimanager/internal/application/certificates"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// Namespace del documento.
const Namespace = "urn:fumimanager:certificate:1"

const dateLayout = "2006-01-02"

var _ certificates.DocumentEncoder = (*Encoder)(nil)

// Encoder implementa certificates.DocumentEncoder con etree.
type Encoder struct {
	Indent int
}

// NewEncoder construye el encoder con indentación de dos espacios.
func NewEncoder() *Encoder { return &Encoder{Indent: 2} }

// EncodeCertificate serializa el certificado. Los campos vacíos se omiten.
func (e *Encoder) EncodeCertificate(c entity.Certificate) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("FumigationCertificate")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("number", c.CertNo)
	root.CreateAttr("status", c.Status)

	add(root, "Branch", c.Branch)
	add(root, "Treatment", c.Treatment)

	parties := root.CreateElement("Parties")
	add(parties, "Exporter", c.Exporter)
	add(parties, "BillingParty", c.BillingParty)
	add(parties, "Consignee", c.Consignee)

	dates := root.CreateElement("Dates")
	add(dates, "Fumigation", c.FumigationDate.Format(dateLayout))
	if !c.IssueDate.IsZero() {
		add(dates, "Issue", c.IssueDate.Format(dateLayout))
	}

	cargo := root.CreateElement("Cargo")
	add(cargo, "ContainerNo", c.ContainerNo)
	add(cargo, "Packages", c.Packages)
	add(cargo, "Volume", c.Volume)
	add(cargo, "Country", c.Country)

	cond := root.CreateElement("Conditions")
	add(cond, "Dosage", c.Dosage)
	add(cond, "Temperature", c.Temperature)
	add(cond, "Exposure", c.Exposure)
	add(cond, "Humidity", c.Humidity)

	if c.InvoiceNo != "" || c.Amount != "" {
		billing := root.CreateElement("Billing")
		add(billing, "InvoiceNo", c.InvoiceNo)
		add(billing, "Amount", c.Amount)
	}
	add(root, "Place", c.Place)
	add(root, "MadeBy", c.MadeBy)

	doc.Indent(e.Indent)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("certxml: serializar %s: %w", c.CertNo, err)
	}
	return b, nil
}

func add(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}
