// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/spf13/cobra"
)

func versionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, buildInfo.BuildVersion())
				return
			}

			fmt.Fprintf(out, "Version:    %s\n", buildInfo.BuildVersion())
			fmt.Fprintf(out, "Commit:     %s\n", buildInfo.BuildCommit())
			fmt.Fprintf(out, "Built:      %s\n", buildInfo.BuildDate())
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
