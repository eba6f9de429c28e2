package dto

// CreateCertificateRequest alta de un certificado de fumigación.
// SameAsExporter copia el exportador en BillingParty.
type CreateCertificateRequest struct {
	CertNo         string `json:"cert_no" validate:"required,max=40"`
	Branch         string `json:"branch" validate:"max=100"`
	Treatment      string `json:"treatment" validate:"max=100"`
	Exporter       string `json:"exporter" validate:"required,max=200"`
	BillingParty   string `json:"billing_party" validate:"max=200"`
	SameAsExporter bool   `json:"same_as_exporter"`
	Consignee      string `json:"consignee" validate:"max=200"`
	FumigationDate string `json:"fumigation_date" validate:"required,datetime=2006-01-02"`
	IssueDate      string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ContainerNo    string `json:"container_no"`
	Packages       string `json:"packages"`
	Volume         string `json:"volume"`
	Dosage         string `json:"dosage"`
	Temperature    string `json:"temperature"`
	Exposure       string `json:"exposure"`
	Humidity       string `json:"humidity"`
	InvoiceNo      string `json:"invoice_no"`
	Amount         string `json:"amount"`
	Country        string `json:"country"`
	Place          string `json:"place"`
	MadeBy         string `json:"made_by"`
}

// CertificateFilter filtros del registro: sucursal, texto y rango de fecha de fumigación.
type CertificateFilter struct {
	PageRequest
	Branch string `query:"branch"`
	Search string `query:"search"`
	Status string `query:"status"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// CertificateResponse certificado en respuestas.
type CertificateResponse struct {
	ID             string `json:"id"`
	CertNo         string `json:"cert_no"`
	Branch         string `json:"branch"`
	Treatment      string `json:"treatment"`
	Exporter       string `json:"exporter"`
	BillingParty   string `json:"billing_party"`
	Consignee      string `json:"consignee"`
	FumigationDate string `json:"fumigation_date"`
	IssueDate      string `json:"issue_date,omitempty"`
	ContainerNo    string `json:"container_no"`
	Packages       string `json:"packages"`
	Volume         string `json:"volume"`
	Dosage         string `json:"dosage"`
	Temperature    string `json:"temperature"`
	Exposure       string `json:"exposure"`
	Humidity       string `json:"humidity"`
	InvoiceNo      string `json:"invoice_no"`
	Amount         string `json:"amount"`
	Country        string `json:"country"`
	Place          string `json:"place"`
	MadeBy         string `json:"made_by"`
	Status         string `json:"status"`
}

// CertificateListResponse listado paginado.
type CertificateListResponse struct {
	Items []CertificateResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
