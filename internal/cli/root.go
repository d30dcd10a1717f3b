// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-encryptor/internal/client"
	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/internal/tui"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/spf13/cobra"
)

// uiFactory builds the interactive front-end. Tests replace it to avoid
// starting a terminal program.
type uiFactory func(services *service.ClientServices, logger *logger.Logger) (client.UI, error)

func newTUI(services *service.ClientServices, logger *logger.Logger) (client.UI, error) {
	return tui.New(services, logger)
}

// NewRootCommand returns the filecrypt command tree.
func NewRootCommand(buildInfo models.AppBuildInfo, logger *logger.Logger) *cobra.Command {
	return newRootCommand(buildInfo, logger, newTUI)
}

func newRootCommand(buildInfo models.AppBuildInfo, logger *logger.Logger, newUI uiFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filecrypt",
		Short: "Encrypt and decrypt files with a remote encryption service",
		Long: `filecrypt sends a file and a secret key to an encryption backend and
saves the returned file to the download directory.

Run without arguments to open the interactive terminal UI, or use the
encrypt and decrypt commands from scripts.`,
		Version:       buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flagCfg := config.BindFlags(cmd.PersistentFlags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		services, err := loadServices(flagCfg, buildInfo, logger)
		if err != nil {
			return err
		}

		ui, err := newUI(services, logger)
		if err != nil {
			return fmt.Errorf("create ui: %w", err)
		}

		app, err := client.NewApp(services, ui, logger)
		if err != nil {
			return fmt.Errorf("create app: %w", err)
		}

		return app.Run(cmd.Context())
	}

	cmd.AddCommand(
		submitCmd(models.Encrypt, flagCfg, buildInfo, logger),
		submitCmd(models.Decrypt, flagCfg, buildInfo, logger),
		versionCmd(buildInfo),
	)

	return cmd
}

func loadServices(flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*service.ClientServices, error) {
	cfg, err := config.GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Debug().Any("config", cfg).Msg("received configs")

	return client.NewServices(cfg, buildInfo, logger)
}

// Execute runs the command tree with args and returns the process exit
// code. Errors are printed to the command's error stream.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, logger *logger.Logger, args []string) int {
	cmd := NewRootCommand(buildInfo, logger)
	cmd.SetArgs(args)

	return execute(ctx, cmd)
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		newReporter(cmd.ErrOrStderr()).Failure(err)
		return 1
	}
	return 0
}
