// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/budget-form/internal/config"
	"fjacquet/budget-form/internal/container"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Backend    string
	VaultRoot  string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.Discard()

	// AppContainer holds the dependencies of the running command.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-form",
		Short: "Record budget entries as documents in a notes vault.",
		Long: `budget-form records money transfers between accounts as new documents in a notes vault.
Each entry is rendered from a content template and stored under a path built from its date
and details, never overwriting an existing document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ConfigFile, "config", "c", config.GetEnv("BUDGET_CONFIG", ""), "Config file (default searches $HOME/.budget-form, .budget-form and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Vault backend (fs, bolt, gcs)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.VaultRoot, "vault", "V", "", "Vault root directory for the fs backend")
}

// setup loads the configuration and wires the container, unless a test already set one.
func setup(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		Log = AppContainer.GetLogger()
		return nil
	}

	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	c, err := container.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	err := AppContainer.Close()
	AppContainer = nil
	return err
}

// applyFlags lets command line flags win over every other configuration source.
func applyFlags(cfg *config.Config) {
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if SharedFlags.Backend != "" {
		cfg.Vault.Backend = SharedFlags.Backend
	}
	if SharedFlags.VaultRoot != "" {
		cfg.Vault.Root = SharedFlags.VaultRoot
	}
}

// Container returns the container wired for the running command.
func Container() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return AppContainer, nil
}

// Settings returns the configured entry settings.
func Settings() models.Settings {
	if AppContainer == nil {
		return models.DefaultSettings()
	}
	return AppContainer.GetConfig().Settings
}
