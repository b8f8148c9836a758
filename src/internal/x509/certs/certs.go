// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrMultipleBlocks indicates that the input holds more than one PEM block.
	ErrMultipleBlocks = errors.New("x509certs: expected a single PEM block, found more")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrUnsupportedPKCS7 indicates that the PEM block holds a PKCS7 bundle instead of a certificate.
	ErrUnsupportedPKCS7 = errors.New("x509certs: PKCS7 bundles are not supported")
)

// pkcs7BlockType is the PEM type written by "openssl crl2pkcs7".
const pkcs7BlockType = "PKCS7"

// Certificate provides methods to decode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes the only PEM block in data and checks its type.
// Text outside the block is ignored.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if c.IsPEM(rest) {
		return nil, ErrMultipleBlocks
	}

	switch block.Type {
	case c.certBlockType:
		return block, nil
	case pkcs7BlockType:
		return nil, c.rejectPKCS7(block.Bytes)
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidBlockType, block.Type)
	}
}

// rejectPKCS7 reports how many certificates a PKCS7 bundle carries so the
// caller can tell the user to extract one.
func (c *Certificate) rejectPKCS7(der []byte) error {
	p, err := pkcs7.ParsePKCS7(der)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedPKCS7, err)
	}
	return fmt.Errorf("%w: bundle holds %d certificate(s), extract a single one",
		ErrUnsupportedPKCS7, len(p.Content.SignedData.Certificates))
}

// Decode parses a single DER encoded certificate.
// The error from [x509.ParseCertificate] is kept in the chain.
func (c *Certificate) Decode(der []byte) (*x509.Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	return cert, nil
}

// DecodePEM strips the PEM armor from data and parses the certificate inside.
func (c *Certificate) DecodePEM(data []byte) (*x509.Certificate, error) {
	block, err := c.decodePEMBlock(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(block.Bytes)
}
