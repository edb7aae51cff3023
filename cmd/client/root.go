package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/client"
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/internal/tui"
	"github.com/MKhiriev/go-file-vault/models"
)

// Global persistent flags, bound in newRootCmd.
var (
	flagConfigPath  string
	flagServer      string
	flagVerbose     bool
	flagDownloadDir string
)

// Set up by the root pre-run for every command but version.
var (
	app      *client.App
	storages *store.ClientStorages
	log      *logger.Logger
)

func newRootCmd(build models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vault",
		Short:   "End-to-end encrypted file sharing",
		Long:    "vault uploads files encrypted on this device, shares them with other users and collects files others upload for you.",
		Version: build.BuildVersion(),
		// Errors are printed by exitOnError.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipSetup(cmd) {
				return nil
			}
			return setup(cmd, build)
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagServer, "server", "", "vault server URL")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSignUpCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newWhoAmICmd(),
		newLsCmd(),
		newSharedCmd(),
		newPutCmd(),
		newGetCmd(),
		newRmCmd(),
		newShareCmd(),
		newRevokeCmd(),
		newUsersCmd(),
		newRequestCmd(),
		newClaimCmd(),
		newBrowseCmd(),
		newVersionCmd(build),
	)

	return cmd
}

// skipSetup reports commands that need neither config nor a session.
func skipSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help":
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// closeStorages releases the local key store opened by setup.
func closeStorages() {
	if storages == nil {
		return
	}
	if err := storages.Close(); err != nil {
		log.Err(err).Msg("error closing local storage")
	}
}

// setup resolves the configuration and wires the client stack.
func setup(cmd *cobra.Command, build models.AppBuildInfo) error {
	overrides := &config.ClientConfig{}
	if cmd.Flags().Changed("server") {
		overrides.Adapter.ServerURL = flagServer
	}
	if flagVerbose {
		overrides.App.LogLevel = "debug"
	}

	cfg, err := config.GetClientConfig(flagConfigPath, overrides)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log = logger.NewClientLogger("vault-client", cfg.App.LogLevel, cfg.App.LogPath)
	log.Debug().Any("adapter", cfg.Adapter).Any("transfer", cfg.Transfer).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err = store.NewClientStorages(cmd.Context(), cfg.Storage, log.WithComponent("store"))
	if err != nil {
		return fmt.Errorf("open local storage: %w", err)
	}

	passphrase := client.PassphraseSource(os.LookupEnv, interactive(), tui.PromptPassphrase)
	services := service.NewClientServices(storages, serverAdapter, cfg, passphrase, log)

	ui, err := tui.New(services, build, flagDownloadDir, log.WithComponent("tui"))
	if err != nil {
		return err
	}

	app, err = client.NewApp(services, ui, os.Stdout, os.Stderr, log)
	return err
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// readPassword returns the account password from the environment or asks
// for it.
func readPassword(cmd *cobra.Command, title string) (string, error) {
	if v, ok := os.LookupEnv(client.PasswordEnv); ok && v != "" {
		return v, nil
	}
	if !interactive() {
		return "", fmt.Errorf("%w: set %s", service.ErrNoPassphrase, client.PasswordEnv)
	}
	return tui.PromptPassphrase(cmd.Context(), title)
}
