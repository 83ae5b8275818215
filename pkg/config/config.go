package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App   AppConfig
	Redis RedisConfig
	Cart  CartConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AMBORELLA_APP_ENV" required:"true"`
	Port         string `envconfig:"AMBORELLA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AMBORELLA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AMBORELLA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"AMBORELLA_REDIS_URL"`
	Address      string        `envconfig:"AMBORELLA_REDIS_ADDR"`
	Password     string        `envconfig:"AMBORELLA_REDIS_PASSWORD"`
	DB           int           `envconfig:"AMBORELLA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AMBORELLA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AMBORELLA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AMBORELLA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AMBORELLA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AMBORELLA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether Redis connection details were supplied. When
// it is false the service falls back to in-process cart persistence.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

// CartConfig carries the cart persistence knobs and the shipping tier
// constants. The 48-item and $100 free-shipping thresholds are business
// constants inherited from the storefront; they are configuration, not code.
type CartConfig struct {
	SessionTTL            time.Duration   `envconfig:"AMBORELLA_CART_SESSION_TTL" default:"720h"`
	FreeShippingItemCount int             `envconfig:"AMBORELLA_CART_FREE_SHIPPING_ITEM_COUNT" default:"48"`
	FreeShippingSubtotal  decimal.Decimal `envconfig:"AMBORELLA_CART_FREE_SHIPPING_SUBTOTAL" default:"100"`
	ReducedRateSubtotal   decimal.Decimal `envconfig:"AMBORELLA_CART_REDUCED_RATE_SUBTOTAL" default:"50"`
	ReducedRate           decimal.Decimal `envconfig:"AMBORELLA_CART_REDUCED_RATE" default:"5.99"`
	MidRateSubtotal       decimal.Decimal `envconfig:"AMBORELLA_CART_MID_RATE_SUBTOTAL" default:"25"`
	MidRate               decimal.Decimal `envconfig:"AMBORELLA_CART_MID_RATE" default:"7.99"`
	BaseRate              decimal.Decimal `envconfig:"AMBORELLA_CART_BASE_RATE" default:"9.99"`
}

func (c CartConfig) validate() error {
	if c.FreeShippingItemCount <= 0 {
		return fmt.Errorf("cart free shipping item count must be positive")
	}
	for name, rate := range map[string]decimal.Decimal{
		EnvCartReducedRate: c.ReducedRate,
		EnvCartMidRate:     c.MidRate,
		EnvCartBaseRate:    c.BaseRate,
	} {
		if rate.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AMBORELLA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
