package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/analytics"
	"github.com/jhoicas/fumimanager/internal/application/auth"
	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/certificates"
	"github.com/jhoicas/fumimanager/internal/application/inventory"
	"github.com/jhoicas/fumimanager/internal/application/usecase"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/navigation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	BranchUC      *usecase.BranchUseCase
	MasterDataUC  *usecase.MasterDataUseCase
	SettingsUC    *usecase.SettingsUseCase
	ActivityUC    *usecase.ActivityUseCase
	CertificateUC *certificates.CertificateUseCase
	StockUC       *inventory.StockUseCase
	InvoiceUC     *billing.InvoiceUseCase
	DashboardUC   *analytics.DashboardUseCase
	Menu          []navigation.Section
	Routes        *navigation.Router
	Token         TokenConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Token.Secret, deps.AuthUC))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Token)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Navegación (guest incluido: el menú sale vacío y resolve indica el redirect)
	navHandler := NewNavigationHandler(deps.Menu, deps.Routes)
	api.Get("/navigation", navHandler.Menu)
	api.Get("/navigation/resolve", navHandler.Resolve)

	// Portal del operador: cualquier sesión, igual que las vistas de la tabla de navegación.
	// Bloqueado en mantenimiento salvo para admin.
	requireSession := RequireSession()
	online := RequireOnline(deps.SettingsUC)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", requireSession, online, dashboardHandler.Operator)

	certHandler := NewCertificateHandler(deps.CertificateUC)
	certs := api.Group("/certificates", requireSession, online)
	certs.Post("/", certHandler.Create)
	certs.Get("/", certHandler.Register)
	certs.Get("/:id", certHandler.GetByID)
	certs.Patch("/:id/invoice", certHandler.AttachInvoice)
	certs.Get("/:id/xml", certHandler.Document)

	stockHandler := NewStockHandler(deps.StockUC)
	stock := api.Group("/stock", requireSession, online)
	stock.Get("/", stockHandler.Overview)
	stock.Post("/inward", stockHandler.Inward)
	stock.Post("/consumption", stockHandler.Consume)
	stock.Get("/history", stockHandler.History)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Get("/reconcile", stockHandler.Reconcile)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices := api.Group("/invoices", requireSession, online)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Get("/export", invoiceHandler.Export)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/paid", invoiceHandler.MarkPaid)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/document", invoiceHandler.Document)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	masterHandler := NewMasterDataHandler(deps.MasterDataUC)
	api.Get("/master-data/:category", requireSession, online, masterHandler.Names)

	// Portal de administración
	admin := api.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/dashboard", dashboardHandler.Admin)

	userHandler := NewUserHandler(deps.UserUC)
	users := admin.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle", userHandler.Toggle)
	users.Delete("/:id", userHandler.Delete)

	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := admin.Group("/branches")
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Patch("/:id/toggle", branchHandler.Toggle)
	branches.Delete("/:id", branchHandler.Delete)

	master := admin.Group("/master-data")
	master.Post("/", masterHandler.Create)
	master.Get("/", masterHandler.List)
	master.Put("/:id", masterHandler.Update)
	master.Patch("/:id/toggle", masterHandler.Toggle)
	master.Delete("/:id", masterHandler.Delete)

	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.ActivityUC)
	admin.Get("/settings", settingsHandler.Get)
	admin.Put("/settings", settingsHandler.Update)
	admin.Get("/activity", settingsHandler.Activity)
}
