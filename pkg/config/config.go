package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Session SessionConfig
	Auth    AuthConfig
	Billing BillingConfig
	Stock   StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, staging, production
	Name         string
	LogLevel     string
	SupportEmail string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig almacenamiento durable de la sesión (rol + nombre).
// Backend "memory" guarda en el proceso; "redis" usa RedisURL.
type SessionConfig struct {
	Backend    string
	RedisURL   string
	KeyPrefix  string
	TTL        time.Duration
	LoginDelay time.Duration // latencia simulada del login
}

// AuthConfig los dos pares de credenciales aceptados (admin / operador).
// Los hashes son bcrypt; si están vacíos se usa la contraseña literal de desarrollo.
type AuthConfig struct {
	AdminEmail           string
	AdminName            string
	AdminPasswordHash    string
	OperatorEmail        string
	OperatorName         string
	OperatorPasswordHash string
	DevPassword          string
}

// BillingConfig datos de facturación e impresión del documento.
type BillingConfig struct {
	TaxRate        float64
	InvoicePrefix  string
	CompanyName    string
	CompanyAddress string // líneas separadas por "|"
	CompanyGSTIN   string
	Currency       string
	ServiceLabel   string
}

// AddressLines devuelve la dirección de la empresa partida en líneas.
func (c BillingConfig) AddressLines() []string {
	if c.CompanyAddress == "" {
		return nil
	}
	parts := strings.Split(c.CompanyAddress, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// StockConfig umbrales de stock bajo y capacidades por ítem.
type StockConfig struct {
	ThresholdMB           int
	ThresholdALP          int
	ThresholdCertificates int
	CapacityMB            int
	CapacityALP           int
	CapacityCertificates  int
	NodeID                int64 // nodo snowflake para IDs del kardex
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SESSION_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "FumiManager"),
			LogLevel:     getString(v, "LOG_LEVEL", "info"),
			SupportEmail: getString(v, "APP_SUPPORT_EMAIL", "support@fumimanager.in"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "fumimanager"),
		},
		Session: SessionConfig{
			Backend:    getString(v, "SESSION_BACKEND", "memory"),
			RedisURL:   getString(v, "SESSION_REDIS_URL", "redis://localhost:6379/0"),
			KeyPrefix:  getString(v, "SESSION_KEY_PREFIX", "fumimanager:session:"),
			TTL:        getDuration(v, "SESSION_TTL", 30*24*time.Hour),
			LoginDelay: getDuration(v, "SESSION_LOGIN_DELAY", 1500*time.Millisecond),
		},
		Auth: AuthConfig{
			AdminEmail:           getString(v, "AUTH_ADMIN_EMAIL", "admin@a.com"),
			AdminName:            getString(v, "AUTH_ADMIN_NAME", "Super Admin"),
			AdminPasswordHash:    getString(v, "AUTH_ADMIN_PASSWORD_HASH", ""),
			OperatorEmail:        getString(v, "AUTH_OPERATOR_EMAIL", "operator@a.com"),
			OperatorName:         getString(v, "AUTH_OPERATOR_NAME", "Branch Operator"),
			OperatorPasswordHash: getString(v, "AUTH_OPERATOR_PASSWORD_HASH", ""),
			DevPassword:          getString(v, "AUTH_DEV_PASSWORD", "123"),
		},
		Billing: BillingConfig{
			TaxRate:        getFloat(v, "BILLING_TAX_RATE", 0.18),
			InvoicePrefix:  getString(v, "BILLING_INVOICE_PREFIX", "INV"),
			CompanyName:    getString(v, "BILLING_COMPANY_NAME", "FumiManager Inc."),
			CompanyAddress: getString(v, "BILLING_COMPANY_ADDRESS", "123 Industrial Estate, Mundra Port|Gujarat, India - 370421"),
			CompanyGSTIN:   getString(v, "BILLING_COMPANY_GSTIN", "24AAACC1234J1Z2"),
			Currency:       getString(v, "BILLING_CURRENCY", "₹"),
			ServiceLabel:   getString(v, "BILLING_SERVICE_LABEL", "Fumigation Services (Methyl Bromide)"),
		},
		Stock: StockConfig{
			ThresholdMB:           getInt(v, "STOCK_THRESHOLD_MB", 100),
			ThresholdALP:          getInt(v, "STOCK_THRESHOLD_ALP", 60),
			ThresholdCertificates: getInt(v, "STOCK_THRESHOLD_CERTIFICATES", 100),
			CapacityMB:            getInt(v, "STOCK_CAPACITY_MB", 1000),
			CapacityALP:           getInt(v, "STOCK_CAPACITY_ALP", 500),
			CapacityCertificates:  getInt(v, "STOCK_CAPACITY_CERTIFICATES", 2000),
			NodeID:                int64(getInt(v, "STOCK_NODE_ID", 1)),
		},
	}

	if cfg.Session.Backend != "memory" && cfg.Session.Backend != "redis" {
		return nil, fmt.Errorf("config: SESSION_BACKEND inválido %q (memory|redis)", cfg.Session.Backend)
	}
	if cfg.Billing.TaxRate < 0 {
		return nil, fmt.Errorf("config: BILLING_TAX_RATE no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}

// getDuration acepta "1500ms", "30s" o un entero en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := v.GetString(key)
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
