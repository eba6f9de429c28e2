package entity

import "time"

// Estados de un certificado de fumigación.
const (
	CertificateIssued         = "Issued"
	CertificatePendingInvoice = "Pending Invoice"
)

// Certificate certificado de fumigación emitido por una sucursal.
type Certificate struct {
	ID             string
	CertNo         string
	Branch         string
	Treatment      string
	Exporter       string
	BillingParty   string
	Consignee      string
	FumigationDate time.Time
	IssueDate      time.Time // cero si aún no se emite
	ContainerNo    string
	Packages       string
	Volume         string
	Dosage         string
	Temperature    string
	Exposure       string
	Humidity       string
	InvoiceNo      string
	Amount         string
	Country        string
	Place          string
	MadeBy         string
	Status         string
}
