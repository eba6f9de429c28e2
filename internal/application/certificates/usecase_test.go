package certificates_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/application/certificates"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/infrastructure/memory"
)

type fakeEncoder struct {
	got entity.Certificate
	err error
}

func (f *fakeEncoder) EncodeCertificate(c entity.Certificate) ([]byte, error) {
	f.got = c
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<certificate/>"), nil
}

type recorder struct{ actions []string }

func (r *recorder) Record(action, actor, status string) {
	r.actions = append(r.actions, action+"|"+actor+"|"+status)
}

func newUseCase(t *testing.T) (*certificates.CertificateUseCase, *fakeEncoder, *recorder) {
	t.Helper()
	enc := &fakeEncoder{}
	rec := &recorder{}
	store := memory.NewCertificateStore(zerolog.Nop(), memory.SeedCertificates()...)
	return certificates.NewCertificateUseCase(store, enc, rec, zerolog.Nop()), enc, rec
}

func validDraft() dto.CreateCertificateRequest {
	return dto.CreateCertificateRequest{
		CertNo:         "096 A",
		Branch:         "Gujarat",
		Treatment:      "Methyl Bromide (MB)",
		Exporter:       "KRBL Limited",
		SameAsExporter: true,
		FumigationDate: "2025-09-10",
		IssueDate:      "2025-09-11",
		ContainerNo:    "TCLU-1112223(40')",
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_SinFacturaQuedaPendiente(t *testing.T) {
	uc, _, rec := newUseCase(t)

	c, err := uc.Create("Rajeev", validDraft())
	require.NoError(t, err)
	assert.Equal(t, entity.CertificatePendingInvoice, c.Status)
	assert.Equal(t, "KRBL Limited", c.BillingParty, "same_as_exporter copia el exportador")
	assert.Equal(t, "2025-09-11", c.IssueDate)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, []string{"Certificate Created|Rajeev (Gujarat)|success"}, rec.actions)

	list, err := uc.Register(dto.CertificateFilter{})
	require.NoError(t, err)
	assert.Equal(t, "096 A", list.Items[0].CertNo, "los nuevos van al inicio")
	assert.Equal(t, 5, list.Page.Total)
}

func TestCreate_ConFacturaQuedaEmitido(t *testing.T) {
	uc, _, _ := newUseCase(t)
	in := validDraft()
	in.InvoiceNo = "2717200151"

	c, err := uc.Create("", in)
	require.NoError(t, err)
	assert.Equal(t, entity.CertificateIssued, c.Status)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc, _, rec := newUseCase(t)

	_, err := uc.Create("", dto.CreateCertificateRequest{CertNo: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "cert_no")
	assert.Contains(t, ve.Fields, "exporter")
	assert.Contains(t, ve.Fields, "fumigation_date")
	assert.Empty(t, rec.actions)
	assert.Equal(t, 4, uc.Counts().Total)
}

func TestCreate_EmisionAntesDeFumigacion(t *testing.T) {
	uc, _, _ := newUseCase(t)
	in := validDraft()
	in.IssueDate = "2025-09-09"

	_, err := uc.Create("", in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Issue Date cannot be before Fumigation Date", ve.Fields["issue_date"])
	assert.Equal(t, 4, uc.Counts().Total)
}

func TestCreate_FechaMalFormada(t *testing.T) {
	uc, _, _ := newUseCase(t)
	in := validDraft()
	in.IssueDate = "11/09/2025"

	_, err := uc.Create("", in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "issue_date")
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	in := validDraft()
	in.CertNo = "095 a"

	_, err := uc.Create("", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 4, uc.Counts().Total)
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_Filtros(t *testing.T) {
	uc, _, _ := newUseCase(t)

	tests := []struct {
		name   string
		filter dto.CertificateFilter
		want   []string
	}{
		{"sin filtro", dto.CertificateFilter{}, []string{"095 A", "045 A", "044 B", "043 A"}},
		{"sucursal", dto.CertificateFilter{Branch: "Punjab"}, []string{"044 B"}},
		{"sucursal All", dto.CertificateFilter{Branch: "All"}, []string{"095 A", "045 A", "044 B", "043 A"}},
		{"texto en exportador", dto.CertificateFilter{Search: "krbl"}, []string{"095 A", "043 A"}},
		{"texto en contenedor", dto.CertificateFilter{Search: "mscu"}, []string{"044 B"}},
		{"estado", dto.CertificateFilter{Status: entity.CertificatePendingInvoice}, []string{"045 A"}},
		{"rango de fechas", dto.CertificateFilter{From: "2025-08-27", To: "2025-08-28"}, []string{"045 A", "044 B", "043 A"}},
		{"solo desde", dto.CertificateFilter{From: "2025-08-28"}, []string{"045 A", "044 B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := uc.Register(tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(list.Items))
			for _, c := range list.Items {
				got = append(got, c.CertNo)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_RangoInvalido(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Register(dto.CertificateFilter{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Counts / Recent / AttachInvoice / Document ────────────────────────────────

func TestCounts_PorEstado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	c := uc.Counts()
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 3, c.Of(entity.CertificateIssued))
	assert.Equal(t, 1, c.Of(entity.CertificatePendingInvoice))
}

func TestRecent_FiltraYLimita(t *testing.T) {
	uc, _, _ := newUseCase(t)
	assert.Len(t, uc.Recent("All", 2), 2)
	pend := uc.Recent(entity.CertificatePendingInvoice, 5)
	require.Len(t, pend, 1)
	assert.Equal(t, "045 A", pend[0].CertNo)
}

func TestAttachInvoice_PasaAEmitido(t *testing.T) {
	uc, _, _ := newUseCase(t)

	c, err := uc.AttachInvoice("c-045a", "2717200160")
	require.NoError(t, err)
	assert.Equal(t, entity.CertificateIssued, c.Status)
	assert.Equal(t, 0, uc.Counts().Of(entity.CertificatePendingInvoice))

	_, err = uc.AttachInvoice("c-045a", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AttachInvoice("no-existe", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocument_UsaElEncoder(t *testing.T) {
	uc, enc, _ := newUseCase(t)

	b, name, err := uc.Document("c-044b")
	require.NoError(t, err)
	assert.Equal(t, "<certificate/>", string(b))
	assert.Equal(t, "Certificate_044_B.xml", name)
	assert.Equal(t, "Ralington Exports", enc.got.Exporter)

	enc.err = errors.New("boom")
	_, _, err = uc.Document("c-044b")
	assert.Error(t, err)
}
