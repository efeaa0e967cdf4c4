package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gyeh/facilities/internal/config"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "facilities",
	Short: "VA facility directory: CMS overlays, service names, collector loads",
	Long: "Merges CMS overlay submissions into stored facilities, reconciles service names " +
		"across naming authorities, loads collector dumps and exports the directory.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file; flags given on the command line win")
	pf.StringVar(&cfg.StoreDriver, "store", envOr("FACILITIES_STORE", config.DriverMemory), "Store driver: memory, sqlite or postgres")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.SQLitePath, "sqlite-path", "", "SQLite database file")
	pf.StringVar(&cfg.LinkerURL, "linker-url", "", "Base URL for v1 service links")
	pf.StringVar(&cfg.ATCCatalog, "atc-catalog", "", "ATC service name catalog (YAML)")
	pf.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile on exit")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
}

// loadConfig layers the YAML file under explicitly set flags, then fills
// defaults.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		changed := make(map[string]string)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			return err
		}
		for name, v := range changed {
			if err := cmd.Flags().Set(name, v); err != nil {
				return err
			}
		}
	}
	cfg.ApplyDefaults()
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
