// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-file-encryptor/internal/cli"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log, closer := logger.NewClientLogger("filecrypt")
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting")

	return cli.Execute(ctx, buildInfo, log, os.Args[1:])
}
