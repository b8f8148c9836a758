// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/cert-decoder/src/internal/decoder"
	"github.com/H0llyW00dzZ/cert-decoder/src/internal/helper/fileio"
	"github.com/H0llyW00dzZ/cert-decoder/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/cert-decoder/src/logger"
)

// Option configures the root command.
type Option func(*options)

type options struct {
	files fileio.FileProcessor
	out   io.Writer
}

// WithFileProcessor replaces the filesystem used to check and read the certificate.
func WithFileProcessor(files fileio.FileProcessor) Option {
	return func(o *options) { o.files = files }
}

// WithOutput sets where the decoded certificate is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewRootCommand builds the cert-decoder cobra command.
//
// The command has no flags: every argument, including ones that look like
// flags or "--", reaches the argument checker untouched. Errors are neither
// printed nor followed by usage text; the caller decides how to report them.
func NewRootCommand(opts ...Option) *cobra.Command {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	d := decoder.New(o.files)
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exe + " /path/to/cert",
		Short: "Print the to-be-signed fields of a PEM encoded X.509 certificate",
		Long: `Reads a single PEM encoded X.509 certificate from the given file and prints
a debug representation of its to-be-signed structure: version, serial number,
signature algorithm, issuer, validity, subject, public key and extensions.

The certificate is decoded only. Its signature, chain and revocation status
are not checked.`,
		Example:            "  " + exe + " ./cert.pem",
		Args:               func(_ *cobra.Command, args []string) error { return decoder.CheckArgs(args) },
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			// A lone "completion" argument is a path, not a subcommand.
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.Run(args, cmd.OutOrStdout())
		},
	}

	if o.out != nil {
		rootCmd.SetOut(o.out)
	}

	return rootCmd
}

// Execute runs the root command against os.Args and reports any error through log.
func Execute(ctx context.Context, log logger.Logger) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		log.Println(err)
		return err
	}
	return nil
}
