package memory

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
)

// Esquemas de cada colección: posición de inserción y estado por defecto.
var (
	UserSchema = record.Schema[entity.User]{
		Name:          "users",
		ID:            func(u *entity.User) string { return u.ID },
		SetID:         func(u *entity.User, id string) { u.ID = id },
		Status:        func(u *entity.User) string { return u.Status },
		SetStatus:     func(u *entity.User, s string) { u.Status = s },
		DefaultStatus: entity.StatusActive,
		Placement:     record.Append,
	}
	BranchSchema = record.Schema[entity.Branch]{
		Name:          "branches",
		ID:            func(b *entity.Branch) string { return b.ID },
		SetID:         func(b *entity.Branch, id string) { b.ID = id },
		Status:        func(b *entity.Branch) string { return b.Status },
		SetStatus:     func(b *entity.Branch, s string) { b.Status = s },
		DefaultStatus: entity.StatusActive,
		Placement:     record.Append,
	}
	MasterDataSchema = record.Schema[entity.MasterDataEntry]{
		Name:          "master_data",
		ID:            func(m *entity.MasterDataEntry) string { return m.ID },
		SetID:         func(m *entity.MasterDataEntry, id string) { m.ID = id },
		Status:        func(m *entity.MasterDataEntry) string { return m.Status },
		SetStatus:     func(m *entity.MasterDataEntry, s string) { m.Status = s },
		DefaultStatus: entity.StatusActive,
		Placement:     record.Prepend,
	}
	InvoiceSchema = record.Schema[entity.Invoice]{
		Name:          "invoices",
		ID:            func(i *entity.Invoice) string { return i.ID },
		SetID:         func(i *entity.Invoice, id string) { i.ID = id },
		Status:        func(i *entity.Invoice) string { return i.Status },
		SetStatus:     func(i *entity.Invoice, s string) { i.Status = s },
		DefaultStatus: entity.InvoiceStatusPending,
		Placement:     record.Prepend,
	}
	CertificateSchema = record.Schema[entity.Certificate]{
		Name:      "certificates",
		ID:        func(c *entity.Certificate) string { return c.ID },
		SetID:     func(c *entity.Certificate, id string) { c.ID = id },
		Placement: record.Prepend,
	}
	ActivitySchema = record.Schema[entity.ActivityEntry]{
		Name:      "activity",
		ID:        func(a *entity.ActivityEntry) string { return a.ID },
		SetID:     func(a *entity.ActivityEntry, id string) { a.ID = id },
		Placement: record.Prepend,
	}
)

// NewUserStore colección de usuarios con ids secuenciales a partir del mayor id sembrado.
func NewUserStore(log zerolog.Logger, seed ...entity.User) *record.Store[entity.User] {
	return record.New(UserSchema, record.NewSequence(int64(len(seed))), log, seed...)
}

// NewBranchStore colección de sucursales.
func NewBranchStore(log zerolog.Logger, seed ...entity.Branch) *record.Store[entity.Branch] {
	return record.New(BranchSchema, record.NewSequence(int64(len(seed))), log, seed...)
}

// NewMasterDataStore catálogos.
func NewMasterDataStore(log zerolog.Logger, seed ...entity.MasterDataEntry) *record.Store[entity.MasterDataEntry] {
	return record.New(MasterDataSchema, record.NewSequence(int64(len(seed))), log, seed...)
}

// NewInvoiceStore facturas con etiquetas prefix-año-correlativo.
func NewInvoiceStore(log zerolog.Logger, labels record.IDAllocator, seed ...entity.Invoice) *record.Store[entity.Invoice] {
	return record.New(InvoiceSchema, labels, log, seed...)
}

// NewCertificateStore certificados con ids UUID.
func NewCertificateStore(log zerolog.Logger, seed ...entity.Certificate) *record.Store[entity.Certificate] {
	return record.New(CertificateSchema, record.UUIDs{}, log, seed...)
}

// NewActivityStore registro de actividad.
func NewActivityStore(log zerolog.Logger, seed ...entity.ActivityEntry) *record.Store[entity.ActivityEntry] {
	return record.New(ActivitySchema, record.NewSequence(int64(len(seed))), log, seed...)
}
