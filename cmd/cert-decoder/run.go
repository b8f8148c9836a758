// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/cert-decoder/src/cli"
	"github.com/H0llyW00dzZ/cert-decoder/src/logger"
)

func main() {
	// Errors go to stderr, the certificate to stdout
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	go func() {
		done <- cli.Execute(ctx, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			// cli.Execute already reported it
			stop()
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		os.Exit(130) // Standard exit code for SIGINT
	}
}
