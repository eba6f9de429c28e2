package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// Datos iniciales de la demo. Se cargan al arrancar; nada se persiste entre reinicios.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedUsers usuarios administrados.
func SeedUsers() []entity.User {
	return []entity.User{
		{ID: "1", Name: "Rajeev Kumar", Email: "operator@dpcs.com", Role: entity.UserRoleOperator, Branch: "Gujarat", Status: entity.StatusActive, Phone: "9876543210"},
		{ID: "2", Name: "Amit Singh", Email: "amit@dpcs.com", Role: entity.UserRoleOperator, Branch: "Punjab", Status: entity.StatusActive, Phone: "9123456780"},
		{ID: "3", Name: "Sarah Jenkins", Email: "admin@dpcs.com", Role: entity.UserRoleAdmin, Branch: "Head Office", Status: entity.StatusActive, Phone: "9988776655"},
		{ID: "4", Name: "Vikram Malhotra", Email: "vikram@dpcs.com", Role: entity.UserRoleOperator, Branch: "Mumbai", Status: entity.StatusInactive, Phone: "8877665544"},
	}
}

// SeedBranches sucursales.
func SeedBranches() []entity.Branch {
	return []entity.Branch{
		{ID: "1", Name: "Gujarat Head Office", Code: "GUJ-01", Manager: "Rajesh Verma", Phone: "+91 98765 43210", Location: "Mundra, Gujarat", Status: entity.StatusActive, GST: "24AAACC1234J1Z2"},
		{ID: "2", Name: "Punjab Regional Office", Code: "PUN-02", Manager: "Amit Singh", Phone: "+91 98765 12345", Location: "Ludhiana, Punjab", Status: entity.StatusActive, GST: "03BBBDD1234K1Z5"},
		{ID: "3", Name: "Mumbai Port Unit", Code: "MUM-03", Manager: "Sarah Jones", Phone: "+91 98123 45678", Location: "Navi Mumbai", Status: entity.StatusMaintenance, GST: "27CCCCD5678L1Z9"},
		{ID: "4", Name: "Karnal Depot", Code: "KAR-04", Manager: "Vikram Malhotra", Phone: "+91 99887 77665", Location: "Karnal, Haryana", Status: entity.StatusActive, GST: "06DDDEE5566M2Z8"},
	}
}

// SeedMasterData catálogos de exportadores, tratamientos y sucursales.
func SeedMasterData() []entity.MasterDataEntry {
	return []entity.MasterDataEntry{
		{ID: "1", Category: entity.MasterCategoryExporters, Name: "KRBL Limited", Detail: "Delhi", Status: entity.StatusActive},
		{ID: "2", Category: entity.MasterCategoryExporters, Name: "Ralington Exports", Detail: "Karnal", Status: entity.StatusActive},
		{ID: "3", Category: entity.MasterCategoryExporters, Name: "Designers Desire", Detail: "Mumbai", Status: entity.StatusInactive},
		{ID: "4", Category: entity.MasterCategoryTreatments, Name: "Methyl Bromide (MB)", Detail: "Gas", Status: entity.StatusActive},
		{ID: "5", Category: entity.MasterCategoryTreatments, Name: "Aluminum Phosphide (ALP)", Detail: "Tablet", Status: entity.StatusActive},
		{ID: "6", Category: entity.MasterCategoryBranches, Name: "Gujarat Branch", Detail: "Mundra", Status: entity.StatusActive},
		{ID: "7", Category: entity.MasterCategoryBranches, Name: "Punjab Branch", Detail: "Ludhiana", Status: entity.StatusActive},
	}
}

// SeedInvoices facturas INV-2025-001 a 005; el siguiente correlativo es 006.
func SeedInvoices() []entity.Invoice {
	inv := func(id string, d time.Time, client, addr string, amount, tax int64, items int, status string) entity.Invoice {
		return entity.Invoice{
			ID: id, Date: d, Client: client, Address: addr,
			Amount: decimal.NewFromInt(amount), Tax: decimal.NewFromInt(tax),
			Items: items, Status: status,
		}
	}
	return []entity.Invoice{
		inv("INV-2025-001", day(2025, 9, 1), "KRBL Limited", "Delhi, India", 45000, 8100, 3, entity.InvoiceStatusPaid),
		inv("INV-2025-002", day(2025, 9, 2), "Ralington Exports", "Karnal, Haryana", 12500, 2250, 1, entity.InvoiceStatusPending),
		inv("INV-2025-003", day(2025, 8, 28), "Casewell Drilling", "Mumbai, MH", 8200, 1476, 1, entity.InvoiceStatusOverdue),
		inv("INV-2025-004", day(2025, 9, 5), "Fortune Rice Ltd", "Punjab, India", 33000, 5940, 2, entity.InvoiceStatusPending),
		inv("INV-2025-005", day(2025, 9, 6), "Designers Desire", "Jaipur, RJ", 5400, 972, 1, entity.InvoiceStatusPaid),
	}
}

// SeedInvoiceCounter último correlativo sembrado.
const SeedInvoiceCounter = 5

// SeedCertificates registro de certificados.
func SeedCertificates() []entity.Certificate {
	return []entity.Certificate{
		{
			ID: "c-095a", CertNo: "095 A", Branch: "Gujarat", Treatment: "Aluminum Phosphide (ALP)",
			Exporter: "KRBL Limited", BillingParty: "KRBL Limited",
			FumigationDate: day(2025, 8, 26), IssueDate: day(2025, 8, 26),
			InvoiceNo: "2717200150", Place: "Mundra", MadeBy: "Rajeev",
			Status: entity.CertificateIssued,
		},
		{
			ID: "c-045a", CertNo: "045 A", Branch: "Gujarat", Treatment: "Methyl Bromide (MB)",
			Exporter: "Designers Desire", BillingParty: "Designers Desire",
			FumigationDate: day(2025, 8, 28), IssueDate: day(2025, 8, 29),
			ContainerNo: "GLDU-9876543(20')", Dosage: "32/m³", Temperature: "25°C",
			Amount: "4500", Country: "Russia", Place: "DPCS", MadeBy: "Rajeev",
			Status: entity.CertificatePendingInvoice,
		},
		{
			ID: "c-044b", CertNo: "044 B", Branch: "Punjab", Treatment: "Methyl Bromide (MB)",
			Exporter: "Ralington Exports", BillingParty: "Ralington Exports",
			FumigationDate: day(2025, 8, 28), IssueDate: day(2025, 8, 30),
			ContainerNo: "MSCU-1234567(40')", Dosage: "48/m³", Temperature: "30°C",
			InvoiceNo: "2717200147", Amount: "12000", Country: "USA", Place: "Mundra", MadeBy: "Amit",
			Status: entity.CertificateIssued,
		},
		{
			ID: "c-043a", CertNo: "043 A", Branch: "Gujarat", Treatment: "Methyl Bromide (MB)",
			Exporter: "KRBL Limited", BillingParty: "KRBL Limited",
			FumigationDate: day(2025, 8, 27), IssueDate: day(2025, 8, 29),
			ContainerNo: "MRKU-9440920(20')", Dosage: "32/m³", Temperature: "26°C",
			InvoiceNo: "2717200146", Country: "Kuwait", Place: "DPCS", MadeBy: "Rajeev",
			Status: entity.CertificateIssued,
		},
	}
}

// SeedStock saldos de apertura más los movimientos registrados, en orden cronológico.
// Los niveles resultantes son Gujarat MB 450 / ALP 120 / Certificates 800 y
// Punjab MB 300 / ALP 50 / Certificates 200.
func SeedStock() []entity.StockTransaction {
	open := day(2025, 8, 31)
	tx := func(d time.Time, branch, typ string, item entity.ItemKey, qty int, ref string) entity.StockTransaction {
		return entity.StockTransaction{Date: d, Branch: branch, Type: typ, Item: item, Qty: qty, Ref: ref}
	}
	return []entity.StockTransaction{
		tx(open, "Gujarat", entity.StockInward, entity.ItemMB, 250, "Opening Balance"),
		tx(open, "Gujarat", entity.StockInward, entity.ItemALP, 120, "Opening Balance"),
		tx(open, "Gujarat", entity.StockInward, entity.ItemCertificates, 805, "Opening Balance"),
		tx(open, "Punjab", entity.StockInward, entity.ItemMB, 300, "Opening Balance"),
		tx(open, "Punjab", entity.StockInward, entity.ItemALP, 65, "Opening Balance"),
		tx(open, "Punjab", entity.StockInward, entity.ItemCertificates, 200, "Opening Balance"),
		tx(day(2025, 9, 1), "Gujarat", entity.StockInward, entity.ItemMB, 200, "PO-9921"),
		tx(day(2025, 9, 2), "Punjab", entity.StockConsumption, entity.ItemALP, -15, "Cert #043 A"),
		tx(day(2025, 9, 5), "Gujarat", entity.StockConsumption, entity.ItemCertificates, -5, "Cert #095 A"),
	}
}

// SeedActivity entradas iniciales del registro de actividad, relativas a now.
func SeedActivity(now time.Time) []entity.ActivityEntry {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	return []entity.ActivityEntry{
		{ID: "1", Action: "Certificate Created", Actor: "Rajeev (Gujarat)", At: ago(10 * time.Minute), Status: entity.ActivitySuccess},
		{ID: "2", Action: "Stock Added", Actor: "Amit (Punjab)", At: ago(35 * time.Minute), Status: entity.ActivitySuccess},
		{ID: "3", Action: "Login Failed", Actor: "IP: 192.168.1.1", At: ago(time.Hour), Status: entity.ActivityError},
		{ID: "4", Action: "Invoice Generated", Actor: "System", At: ago(2 * time.Hour), Status: entity.ActivityInfo},
		{ID: "5", Action: "Config Changed", Actor: "Super Admin", At: ago(5 * time.Hour), Status: entity.ActivityWarning},
		{ID: "6", Action: "DB Backup", Actor: "System", At: ago(6 * time.Hour), Status: entity.ActivitySuccess},
	}
}
