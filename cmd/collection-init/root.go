package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/collection-init/v1/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configPath string
	envFile    string
	backend    string
	dataPath   string
	reportPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "collection-init",
		Short: "Create the trading game collections in a vector store",
		Long: `collection-init creates the five collections of the Bitcoin trading game
with their metadata, verifies what the store holds and writes a JSON report.

Existing collections are left untouched, so running it again is safe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runBootstrap(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file (default .env when present)")
	pf.StringVar(&flags.backend, "backend", "", "vector store: sqlite, postgres, qdrant or chroma")
	pf.StringVar(&flags.dataPath, "data-path", "", "persistent storage directory of the sqlite backend")
	pf.StringVar(&flags.reportPath, "report", "", "report file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warning or error")

	cmd.AddCommand(newListCmd(flags), newVersionCmd())
	return cmd
}

// load applies the explicitly set flags over the loaded configuration.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.Options{ConfigPath: f.configPath, EnvFile: f.envFile})
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("backend") {
		cfg.Backend = f.backend
	}
	if changed("data-path") {
		cfg.SQLStore.Path = f.dataPath
	}
	if changed("report") {
		cfg.Bootstrap.ReportPath = f.reportPath
	}
	if changed("log-level") {
		cfg.Logger.Level = f.logLevel
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "collection-init", version)
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the collections in the store with their document counts",
		Long:  "list prints every collection currently in the store. It creates nothing and writes no report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
}
