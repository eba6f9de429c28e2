package certificates

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// CertificateUseCase emisión y registro de certificados de fumigación.
type CertificateUseCase struct {
	store    repository.RecordStore[entity.Certificate]
	encoder  DocumentEncoder
	activity repository.ActivitySink
	log      zerolog.Logger
}

// NewCertificateUseCase construye el caso de uso.
func NewCertificateUseCase(store repository.RecordStore[entity.Certificate], encoder DocumentEncoder,
	activity repository.ActivitySink, log zerolog.Logger) *CertificateUseCase {
	if activity == nil {
		activity = repository.NopActivity{}
	}
	return &CertificateUseCase{store: store, encoder: encoder, activity: activity, log: log}
}

// Create valida el borrador y lo registra al inicio del registro.
// Sin número de factura queda como Pending Invoice.
func (uc *CertificateUseCase) Create(actor string, in dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	in.CertNo = strings.TrimSpace(in.CertNo)
	in.Exporter = strings.TrimSpace(in.Exporter)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	fumigated, _ := time.Parse(dto.DateLayout, in.FumigationDate)
	var issued time.Time
	if in.IssueDate != "" {
		issued, _ = time.Parse(dto.DateLayout, in.IssueDate)
		if issued.Before(fumigated) {
			ve := domain.NewValidationError()
			ve.Add("issue_date", "Issue Date cannot be before Fumigation Date")
			return nil, ve
		}
	}

	billing := strings.TrimSpace(in.BillingParty)
	if in.SameAsExporter {
		billing = in.Exporter
	}
	status := entity.CertificatePendingInvoice
	if strings.TrimSpace(in.InvoiceNo) != "" {
		status = entity.CertificateIssued
	}

	c, err := uc.store.CreateUnique(entity.Certificate{
		CertNo:         in.CertNo,
		Branch:         strings.TrimSpace(in.Branch),
		Treatment:      in.Treatment,
		Exporter:       in.Exporter,
		BillingParty:   billing,
		Consignee:      strings.TrimSpace(in.Consignee),
		FumigationDate: fumigated,
		IssueDate:      issued,
		ContainerNo:    strings.TrimSpace(in.ContainerNo),
		Packages:       in.Packages,
		Volume:         in.Volume,
		Dosage:         in.Dosage,
		Temperature:    in.Temperature,
		Exposure:       in.Exposure,
		Humidity:       in.Humidity,
		InvoiceNo:      strings.TrimSpace(in.InvoiceNo),
		Amount:         in.Amount,
		Country:        in.Country,
		Place:          in.Place,
		MadeBy:         in.MadeBy,
		Status:         status,
	}, func(existing, draft entity.Certificate) bool {
		return strings.EqualFold(existing.CertNo, draft.CertNo)
	})
	if err != nil {
		return nil, fmt.Errorf("certificado %s: %w", in.CertNo, err)
	}

	uc.log.Info().Str("cert_no", c.CertNo).Str("branch", c.Branch).Str("status", c.Status).Msg("certificado creado")
	uc.activity.Record("Certificate Created", actorAt(actor, c.Branch), entity.ActivitySuccess)
	return toCertificateResponse(c), nil
}

// GetByID obtiene un certificado.
func (uc *CertificateUseCase) GetByID(id string) (*dto.CertificateResponse, error) {
	c, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toCertificateResponse(c), nil
}

// AttachInvoice asocia el número de factura y marca el certificado como emitido.
func (uc *CertificateUseCase) AttachInvoice(id, invoiceNo string) (*dto.CertificateResponse, error) {
	invoiceNo = strings.TrimSpace(invoiceNo)
	if invoiceNo == "" {
		ve := domain.NewValidationError()
		ve.Add("invoice_no", "is required")
		return nil, ve
	}
	c, err := uc.store.Update(id, func(c *entity.Certificate) error {
		c.InvoiceNo = invoiceNo
		c.Status = entity.CertificateIssued
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCertificateResponse(c), nil
}

// Register registro filtrado por sucursal, texto (partes, contenedor, número), estado
// y rango de fecha de fumigación, en el orden de la colección.
func (uc *CertificateUseCase) Register(f dto.CertificateFilter) (*dto.CertificateListResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	f.DefaultPage()
	matches := uc.filter(f)
	page := record.Page(matches, f.Limit, f.Offset)
	items := make([]dto.CertificateResponse, 0, len(page))
	for _, c := range page {
		items = append(items, *toCertificateResponse(c))
	}
	return &dto.CertificateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matches)},
	}, nil
}

func (uc *CertificateUseCase) filter(f dto.CertificateFilter) []entity.Certificate {
	var from, to time.Time
	if f.From != "" {
		from, _ = time.Parse(dto.DateLayout, f.From)
	}
	if f.To != "" {
		to, _ = time.Parse(dto.DateLayout, f.To)
	}
	return uc.store.Filter(
		record.MatchEnum(f.Branch, func(c entity.Certificate) string { return c.Branch }),
		record.MatchEnum(f.Status, func(c entity.Certificate) string { return c.Status }),
		record.MatchText(f.Search,
			func(c entity.Certificate) string { return c.Exporter },
			func(c entity.Certificate) string { return c.BillingParty },
			func(c entity.Certificate) string { return c.Consignee },
			func(c entity.Certificate) string { return c.ContainerNo },
			func(c entity.Certificate) string { return c.CertNo }),
		func(c entity.Certificate) bool {
			if !from.IsZero() && c.FumigationDate.Before(from) {
				return false
			}
			return to.IsZero() || !c.FumigationDate.After(to)
		},
	)
}

// Counts conteo total y por estado.
func (uc *CertificateUseCase) Counts() record.Counts {
	return record.Tally(uc.store.All(), func(c entity.Certificate) string { return c.Status })
}

// Recent los n certificados más recientes, filtrados por estado ("All" no filtra).
func (uc *CertificateUseCase) Recent(status string, n int) []dto.CertificateResponse {
	list := record.Page(uc.store.Filter(
		record.MatchEnum(status, func(c entity.Certificate) string { return c.Status }),
	), n, 0)
	out := make([]dto.CertificateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCertificateResponse(c))
	}
	return out
}

// Document documento XML del certificado y su nombre de archivo.
func (uc *CertificateUseCase) Document(id string) ([]byte, string, error) {
	c, err := uc.store.Get(id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.encoder.EncodeCertificate(c)
	if err != nil {
		return nil, "", fmt.Errorf("xml: %w", err)
	}
	return b, "Certificate_" + strings.ReplaceAll(c.CertNo, " ", "_") + ".xml", nil
}

func actorAt(actor, branch string) string {
	if actor == "" {
		return branch
	}
	if branch == "" {
		return actor
	}
	return actor + " (" + branch + ")"
}

func toCertificateResponse(c entity.Certificate) *dto.CertificateResponse {
	r := &dto.CertificateResponse{
		ID:             c.ID,
		CertNo:         c.CertNo,
		Branch:         c.Branch,
		Treatment:      c.Treatment,
		Exporter:       c.Exporter,
		BillingParty:   c.BillingParty,
		Consignee:      c.Consignee,
		FumigationDate: c.FumigationDate.Format(dto.DateLayout),
		ContainerNo:    c.ContainerNo,
		Packages:       c.Packages,
		Volume:         c.Volume,
		Dosage:         c.Dosage,
		Temperature:    c.Temperature,
		Exposure:       c.Exposure,
		Humidity:       c.Humidity,
		InvoiceNo:      c.InvoiceNo,
		Amount:         c.Amount,
		Country:        c.Country,
		Place:          c.Place,
		MadeBy:         c.MadeBy,
		Status:         c.Status,
	}
	if !c.IssueDate.IsZero() {
		r.IssueDate = c.IssueDate.Format(dto.DateLayout)
	}
	return r
}
