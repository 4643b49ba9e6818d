package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ListingConfig struct {
	PageSize int
}

type BillingConfig struct {
	VATRate          float64
	DevisValiditeJrs int
	EcheanceJrs      int
}

type ExportConfig struct {
	Dir string
}

type StoreConfig struct {
	Latency time.Duration
}

type Config struct {
	Environment string
	Listing     ListingConfig
	Billing     BillingConfig
	Export      ExportConfig
	Store       StoreConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		Listing: ListingConfig{
			PageSize: v.GetInt("PAGE_SIZE"),
		},
		Billing: BillingConfig{
			VATRate:          v.GetFloat64("VAT_RATE"),
			DevisValiditeJrs: v.GetInt("DEVIS_VALIDITE_JOURS"),
			EcheanceJrs:      v.GetInt("FACTURE_ECHEANCE_JOURS"),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
		Store: StoreConfig{
			Latency: time.Duration(v.GetInt("STORE_LATENCY_MS")) * time.Millisecond,
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Listing.PageSize == 0 {
		cfg.Listing.PageSize = 10
	}
	if cfg.Billing.VATRate == 0 {
		cfg.Billing.VATRate = 20
	}
	if cfg.Billing.DevisValiditeJrs == 0 {
		cfg.Billing.DevisValiditeJrs = 30
	}
	if cfg.Billing.EcheanceJrs == 0 {
		cfg.Billing.EcheanceJrs = 30
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "./exports"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Listing.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	if cfg.Billing.VATRate < 0 || cfg.Billing.VATRate > 100 {
		return fmt.Errorf("VAT_RATE must be between 0 and 100")
	}
	if cfg.Store.Latency < 0 {
		return fmt.Errorf("STORE_LATENCY_MS must not be negative")
	}
	return nil
}
