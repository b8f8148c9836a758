// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decoder

import (
	"errors"
	"io"

	"github.com/H0llyW00dzZ/cert-decoder/src/internal/helper/fileio"
	x509certs "github.com/H0llyW00dzZ/cert-decoder/src/internal/x509/certs"
	x509tbs "github.com/H0llyW00dzZ/cert-decoder/src/internal/x509/tbs"
)

// The messages below are shown to the user verbatim.
var (
	// ErrUsage is returned when the tool is not given exactly one argument.
	ErrUsage = errors.New("Error: did not receive a single argument, please invoke cert-decoder as follows: ./cert-decoder /path/to/cert.")

	// ErrNotRegularFile is returned when the argument does not name a regular file.
	ErrNotRegularFile = errors.New("Error: path given as argument is not a regular file, it must be a path to a certificate!")
)

// Decoder runs the certificate decoding pipeline against a FileProcessor.
type Decoder struct {
	files fileio.FileProcessor
	certs *x509certs.Certificate
}

// New returns a Decoder that uses files for all filesystem access.
// A nil files falls back to the real filesystem.
func New(files fileio.FileProcessor) *Decoder {
	if files == nil {
		files = fileio.New()
	}
	return &Decoder{
		files: files,
		certs: x509certs.New(),
	}
}

// CheckArgs succeeds only when args holds exactly one element.
func CheckArgs(args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return nil
}

// Validate runs the validator stage and returns the certificate path.
func (d *Decoder) Validate(args []string) (string, error) {
	if err := CheckArgs(args); err != nil {
		return "", err
	}

	path := args[0]
	if !d.files.IsFile(path) {
		return "", ErrNotRegularFile
	}

	return path, nil
}

// Decode validates args, then reads and parses the certificate they name and
// returns the view of its to-be-signed portion.
func (d *Decoder) Decode(args []string) (*x509tbs.Certificate, error) {
	path, err := d.Validate(args)
	if err != nil {
		return nil, err
	}

	content, err := d.files.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cert, err := d.certs.DecodePEM([]byte(content))
	if err != nil {
		return nil, err
	}

	return x509tbs.Decode(cert)
}

// Run executes the full pipeline and prints the result to w.
// Nothing is written to w unless every step succeeds.
func (d *Decoder) Run(args []string, w io.Writer) error {
	tbs, err := d.Decode(args)
	if err != nil {
		return err
	}
	return x509tbs.Fprint(w, tbs)
}
