// Package config loads the engine's recognized options (entities.Config)
// plus the infrastructure settings a run needs to pick its storage adapter,
// event sink, and input sources, following acdtunes-spacetraders's
// internal/infrastructure/config package: env vars over a YAML file over
// defaults, validated with go-playground/validator/v10.
package config

import (
	"fmt"
	"strings"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CSVSources points at the CSV files the csv.Loader reads into the in-memory
// source store for the run and levels commands, whatever the storage
// backend. Paths are resolved relative to the working directory.
type CSVSources struct {
	BOMEdges                   string `mapstructure:"bom_edges"`
	Items                      string `mapstructure:"items"`
	PreferredSupplierLeadTimes string `mapstructure:"preferred_supplier_lead_times"`
	SalesOrders                string `mapstructure:"sales_orders"`
	WorkOrders                 string `mapstructure:"work_orders"`
	IssuedStockMoves           string `mapstructure:"issued_stock_moves"`
	MRPDemands                 string `mapstructure:"mrp_demands"`
	LocationStock              string `mapstructure:"location_stock"`
	PurchaseOrders             string `mapstructure:"purchase_orders"`
	PositiveStockMoves         string `mapstructure:"positive_stock_moves"`
}

// PostgresConfig configures the optional SQL-backed working-set adapter.
type PostgresConfig struct {
	DatabaseURL   string `mapstructure:"database_url"`
	MigrationsDir string `mapstructure:"migrations_dir"`
}

// NATSConfig configures the optional NATS event sink.
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// MetricsConfig toggles the Prometheus collector.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AppConfig is the root configuration loaded by Load: the engine's
// recognized options (Engine) plus the infrastructure wiring a run needs.
type AppConfig struct {
	Engine       entities.Config `mapstructure:"engine"`
	LocationList []string        `mapstructure:"locations"`

	StorageBackend string     `mapstructure:"storage_backend" validate:"oneof=memory memdb postgres"`
	EventSink      string     `mapstructure:"event_sink" validate:"oneof=memory nats"`
	CSV            CSVSources `mapstructure:"csv"`
	Postgres       PostgresConfig `mapstructure:"postgres"`
	NATS           NATSConfig     `mapstructure:"nats"`
	Metrics        MetricsConfig  `mapstructure:"metrics"`
	LogLevel       string         `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Load reads configPath (if non-empty), layers MRPNET_-prefixed environment
// variables over it, applies defaults, and validates the result. A missing
// config file is not an error; a missing or malformed .env file in the
// working directory is silently ignored.
func Load(configPath string) (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mrpnet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/mrpnet")
	}

	v.SetEnvPrefix("MRPNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &mrperr.ConfigError{Field: "config_file", Reason: err.Error()}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &mrperr.ConfigError{Field: "unmarshal", Reason: err.Error()}
	}

	setDefaults(&cfg)
	cfg.Engine.Locations = toLocationSet(cfg.LocationList)

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// toLocationSet converts the configured location list into entities.Config's
// set representation, on/off per the configured name.
func toLocationSet(locations []string) map[string]bool {
	if len(locations) == 0 {
		return nil
	}
	set := make(map[string]bool, len(locations))
	for _, loc := range locations {
		set[loc] = true
	}
	return set
}

func setDefaults(cfg *AppConfig) {
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = "memdb"
	}
	if cfg.EventSink == "" {
		cfg.EventSink = "memory"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Postgres.MigrationsDir == "" {
		cfg.Postgres.MigrationsDir = "pkg/infrastructure/repositories/postgres/migrations"
	}
}

// validateConfig runs struct-tag validation and the cross-field checks the
// tags alone cannot express (a postgres backend needs a database url, a nats
// sink needs a url), surfacing every violation as a ConfigError.
func validateConfig(cfg *AppConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return &mrperr.ConfigError{Field: first.Namespace(), Reason: first.Tag()}
		}
		return &mrperr.ConfigError{Field: "config", Reason: err.Error()}
	}

	if cfg.StorageBackend == "postgres" && cfg.Postgres.DatabaseURL == "" {
		return &mrperr.ConfigError{Field: "postgres.database_url", Reason: "required when storage_backend is postgres"}
	}
	if cfg.EventSink == "nats" && cfg.NATS.URL == "" {
		return &mrperr.ConfigError{Field: "nats.url", Reason: "required when event_sink is nats"}
	}
	if cfg.Engine.LeewayDays < 0 {
		return &mrperr.ConfigError{Field: "engine.leeway_days", Reason: "cannot be negative"}
	}
	return nil
}

// Describe renders cfg as a human-readable summary for the validate-config
// CLI command.
func (c *AppConfig) Describe() string {
	return fmt.Sprintf(
		"storage=%s event_sink=%s log_level=%s use_mrp_demands=%v use_reorder_level_demands=%v use_eoq=%v use_pan_size=%v use_shrinkage=%v leeway_days=%d retain_audit=%v locations=%v",
		c.StorageBackend, c.EventSink, c.LogLevel,
		c.Engine.UseMrpDemands, c.Engine.UseReorderLevelDemands, c.Engine.UseEOQ,
		c.Engine.UsePanSize, c.Engine.UseShrinkage, c.Engine.LeewayDays, c.Engine.RetainAudit,
		c.LocationList,
	)
}
