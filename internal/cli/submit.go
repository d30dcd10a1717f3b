// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/spf13/cobra"
)

var ErrConflictingKeySources = errors.New("use only one of --key and --key-stdin")

type submitOptions struct {
	input    string
	key      string
	keyStdin bool
}

// submitCmd builds the headless "encrypt" or "decrypt" command.
func submitCmd(op models.Operation, flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   op.String() + " [file]",
		Short: op.Title() + " a file with the remote service",
		Long: fmt.Sprintf(`%s a file with the remote service and save the result to the
download directory.

If no key is given, you are prompted for one. The key is hidden while typing.

Examples:
  # Prompt for the key
  filecrypt %[2]s -i report.pdf

  # Key on the command line (visible in shell history)
  filecrypt %[2]s -i report.pdf -k "correct horse"

  # Read the key from stdin (for scripts)
  echo "correct horse" | filecrypt %[2]s -i report.pdf -K`, op.Title(), op.String()),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" && len(args) == 1 {
				opts.input = args[0]
			}
			return runSubmit(cmd, op, opts, flagCfg, buildInfo, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "File to "+op.String())
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Secret key")
	cmd.Flags().BoolVarP(&opts.keyStdin, "key-stdin", "K", false, "Read the secret key from stdin")

	return cmd
}

func runSubmit(cmd *cobra.Command, op models.Operation, opts submitOptions, flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) error {
	secretKey, err := resolveKey(cmd, opts)
	if err != nil {
		return err
	}

	services, err := loadServices(flagCfg, buildInfo, logger)
	if err != nil {
		return err
	}

	result, err := services.SubmissionService.Submit(cmd.Context(), op, opts.input, secretKey)
	if err != nil {
		return err
	}

	newReporter(cmd.OutOrStdout()).Success(result)
	return nil
}

func resolveKey(cmd *cobra.Command, opts submitOptions) (string, error) {
	switch {
	case opts.key != "" && opts.keyStdin:
		return "", ErrConflictingKeySources
	case opts.key != "":
		return opts.key, nil
	case opts.keyStdin:
		return readKeyFromReader(cmd.InOrStdin())
	default:
		return readKeySecure(cmd.InOrStdin(), cmd.ErrOrStderr(), "Secret key: ")
	}
}
