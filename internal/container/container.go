// Package container arma los stores sembrados, los casos de uso y las dependencias del router
// a partir de la configuración.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/application/analytics"
	"github.com/jhoicas/fumimanager/internal/application/auth"
	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/certificates"
	appinventory "github.com/jhoicas/fumimanager/internal/application/inventory"
	"github.com/jhoicas/fumimanager/internal/application/usecase"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/inventory"
	"github.com/jhoicas/fumimanager/internal/domain/navigation"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
	"github.com/jhoicas/fumimanager/internal/infrastructure/certxml"
	"github.com/jhoicas/fumimanager/internal/infrastructure/export"
	"github.com/jhoicas/fumimanager/internal/infrastructure/idgen"
	"github.com/jhoicas/fumimanager/internal/infrastructure/memory"
	"github.com/jhoicas/fumimanager/internal/infrastructure/pdf"
	"github.com/jhoicas/fumimanager/internal/infrastructure/redisstore"
	apphttp "github.com/jhoicas/fumimanager/internal/interfaces/http"
	"github.com/jhoicas/fumimanager/pkg/config"
	"github.com/jhoicas/fumimanager/pkg/logger"
)

// Container dependencias listas para el router, más el cierre de recursos externos.
type Container struct {
	Deps  apphttp.RouterDeps
	close []func() error
}

// Close libera las conexiones abiertas (Redis).
func (c *Container) Close() error {
	var first error
	for _, fn := range c.close {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New construye la aplicación. now fija el reloj (nil = time.Now).
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, now func() time.Time) (*Container, error) {
	if now == nil {
		now = time.Now
	}
	c := &Container{}
	zl := log.Zerolog()

	storage, lock, err := c.sessionBackend(ctx, cfg.Session, log)
	if err != nil {
		return nil, err
	}

	activity := usecase.NewActivityUseCase(memory.NewActivityStore(zl, memory.SeedActivity(now())...), now)

	creds, err := credentials(cfg.Auth)
	if err != nil {
		return nil, err
	}
	authUC := auth.NewAuthUseCase(storage, lock, creds, activity,
		auth.Options{Delay: cfg.Session.LoginDelay}, log.Component("auth"))

	userUC := usecase.NewUserUseCase(memory.NewUserStore(zl, memory.SeedUsers()...), log.Component("users"))
	branchUC := usecase.NewBranchUseCase(memory.NewBranchStore(zl, memory.SeedBranches()...), log.Component("branches"))
	masterUC := usecase.NewMasterDataUseCase(memory.NewMasterDataStore(zl, memory.SeedMasterData()...), log.Component("master_data"))
	settingsUC := usecase.NewSettingsUseCase(entity.SystemSettings{
		AppName:      cfg.App.Name,
		SupportEmail: cfg.App.SupportEmail,
	}, activity, log.Component("settings"))

	certUC := certificates.NewCertificateUseCase(memory.NewCertificateStore(zl, memory.SeedCertificates()...),
		certxml.NewEncoder(), activity, log.Component("certificates"))

	ids, err := idgen.NewSnowflake(cfg.Stock.NodeID)
	if err != nil {
		return nil, fmt.Errorf("generador de IDs: %w", err)
	}
	ledger := inventory.NewLedger(ids.Next, now)
	if err := ledger.Restore(memory.SeedStock()); err != nil {
		return nil, fmt.Errorf("saldos iniciales: %w", err)
	}
	stockUC := appinventory.NewStockUseCase(ledger, limits(cfg.Stock), activity, log.Component("stock"))

	invoiceStore := memory.NewInvoiceStore(zl,
		record.NewLabels(cfg.Billing.InvoicePrefix, memory.SeedInvoiceCounter, now), memory.SeedInvoices()...)
	invoiceUC := billing.NewInvoiceUseCase(invoiceStore, pdf.NewMarotoPDFGenerator(), export.NewExcelWriter(), activity,
		billing.Options{
			TaxRate: decimal.NewFromFloat(cfg.Billing.TaxRate),
			Company: billing.Company{
				Name:         cfg.Billing.CompanyName,
				AddressLines: cfg.Billing.AddressLines(),
				GSTIN:        cfg.Billing.CompanyGSTIN,
				Currency:     cfg.Billing.Currency,
				ServiceLabel: cfg.Billing.ServiceLabel,
			},
			Now: now,
		}, log.Component("invoices"))

	dashboardUC := analytics.NewDashboardUseCase(analytics.Sources{
		Certificates: certUC,
		Stock:        stockUC,
		Invoices:     invoiceUC,
		Branches:     branchUC,
		Users:        userUC,
		Activity:     activity,
	})

	c.Deps = apphttp.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		BranchUC:      branchUC,
		MasterDataUC:  masterUC,
		SettingsUC:    settingsUC,
		ActivityUC:    activity,
		CertificateUC: certUC,
		StockUC:       stockUC,
		InvoiceUC:     invoiceUC,
		DashboardUC:   dashboardUC,
		Menu:          navigation.DefaultMenu(),
		Routes:        navigation.NewRouter(navigation.DefaultRoutes()),
		Token: apphttp.TokenConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
	}
	return c, nil
}

// sessionBackend memoria del proceso o Redis (hash por sesión + lock distribuido del login).
func (c *Container) sessionBackend(ctx context.Context, cfg config.SessionConfig, log *logger.Logger) (repository.SessionStorage, auth.LoginLock, error) {
	if cfg.Backend != "redis" {
		return memory.NewSessionStorage(), memory.NewLoginLock(), nil
	}
	rdb, err := redisstore.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	c.close = append(c.close, rdb.Close)
	log.Info().Str("prefix", cfg.KeyPrefix).Msg("sesiones en Redis")

	storage := redisstore.NewSessionStorage(rdb, cfg.KeyPrefix, cfg.TTL)
	lock := redisstore.NewLoginLock(redislock.New(rdb), cfg.KeyPrefix, loginLockTTL(cfg.LoginDelay), log.Component("login_lock"))
	return storage, lock, nil
}

// loginLockTTL el lock debe sobrevivir a la latencia simulada del login.
func loginLockTTL(delay time.Duration) time.Duration {
	return delay + 10*time.Second
}

func credentials(cfg config.AuthConfig) ([]auth.Credential, error) {
	admin, err := auth.NewCredential(cfg.AdminEmail, cfg.AdminName, entity.RoleAdmin, cfg.AdminPasswordHash, cfg.DevPassword)
	if err != nil {
		return nil, err
	}
	op, err := auth.NewCredential(cfg.OperatorEmail, cfg.OperatorName, entity.RoleOperator, cfg.OperatorPasswordHash, cfg.DevPassword)
	if err != nil {
		return nil, err
	}
	return []auth.Credential{admin, op}, nil
}

func limits(cfg config.StockConfig) appinventory.Limits {
	return appinventory.Limits{
		Thresholds: map[entity.ItemKey]int{
			entity.ItemMB:           cfg.ThresholdMB,
			entity.ItemALP:          cfg.ThresholdALP,
			entity.ItemCertificates: cfg.ThresholdCertificates,
		},
		Capacities: map[entity.ItemKey]int{
			entity.ItemMB:           cfg.CapacityMB,
			entity.ItemALP:          cfg.CapacityALP,
			entity.ItemCertificates: cfg.CapacityCertificates,
		},
	}
}
