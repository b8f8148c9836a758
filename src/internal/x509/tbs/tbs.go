// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tbs

import (
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	ctasn1 "github.com/google/certificate-transparency-go/asn1"
	ctpkix "github.com/google/certificate-transparency-go/x509/pkix"
)

var (
	// ErrDecodeTBS indicates that the TBS sequence of a certificate could not be unmarshalled.
	ErrDecodeTBS = errors.New("x509tbs: failed to decode to-be-signed certificate")

	// ErrNilCertificate indicates that Decode was called without a certificate.
	ErrNilCertificate = errors.New("x509tbs: nil certificate")
)

// tbsCertificate mirrors the RFC 5280 TBSCertificate sequence.
type tbsCertificate struct {
	Raw                ctasn1.RawContent
	Version            int `asn1:"optional,explicit,default:0,tag:0"`
	SerialNumber       *big.Int
	SignatureAlgorithm ctpkix.AlgorithmIdentifier
	Issuer             ctasn1.RawValue
	Validity           validity
	Subject            ctasn1.RawValue
	PublicKey          publicKeyInfo
	IssuerUniqueID     ctasn1.BitString   `asn1:"optional,tag:1"`
	SubjectUniqueID    ctasn1.BitString   `asn1:"optional,tag:2"`
	Extensions         []ctpkix.Extension `asn1:"optional,explicit,tag:3"`
}

type validity struct {
	NotBefore, NotAfter time.Time
}

type publicKeyInfo struct {
	Raw       ctasn1.RawContent
	Algorithm ctpkix.AlgorithmIdentifier
	PublicKey ctasn1.BitString
}

// Certificate is the printable view of a TBSCertificate.
// Binary values are hex encoded and names use the RFC 2253 string form.
type Certificate struct {
	Version              int
	SerialNumber         string
	Signature            AlgorithmIdentifier
	Issuer               string
	Validity             Validity
	Subject              string
	SubjectPublicKeyInfo SubjectPublicKeyInfo
	IssuerUniqueID       string
	SubjectUniqueID      string
	Extensions           []Extension
}

// AlgorithmIdentifier names an algorithm by OID and, where known, by name.
type AlgorithmIdentifier struct {
	Algorithm  string
	Name       string
	Parameters string
}

// Validity is the certificate validity period in UTC.
type Validity struct {
	NotBefore time.Time
	NotAfter  time.Time
}

// SubjectPublicKeyInfo describes the subject's public key.
type SubjectPublicKeyInfo struct {
	Algorithm     AlgorithmIdentifier
	PublicKeyBits int
	PublicKey     string
}

// Extension is a single X.509 v3 extension.
type Extension struct {
	ID       string
	Name     string
	Critical bool
	Value    string
}

// Decode unmarshals cert.RawTBSCertificate into a Certificate view.
//
// Issuer and subject strings and the algorithm names come from the already
// parsed cert; everything else is read from the TBS bytes themselves.
func Decode(cert *x509.Certificate) (*Certificate, error) {
	if cert == nil {
		return nil, ErrNilCertificate
	}

	var tbs tbsCertificate
	rest, err := ctasn1.Unmarshal(cert.RawTBSCertificate, &tbs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeTBS, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecodeTBS, ctasn1.SyntaxError{Msg: "trailing data"})
	}

	view := &Certificate{
		Version:      tbs.Version + 1,
		SerialNumber: formatSerial(tbs.SerialNumber),
		Signature: AlgorithmIdentifier{
			Algorithm:  tbs.SignatureAlgorithm.Algorithm.String(),
			Name:       cert.SignatureAlgorithm.String(),
			Parameters: formatParameters(tbs.SignatureAlgorithm.Parameters),
		},
		Issuer: cert.Issuer.String(),
		Validity: Validity{
			NotBefore: tbs.Validity.NotBefore.UTC(),
			NotAfter:  tbs.Validity.NotAfter.UTC(),
		},
		Subject: cert.Subject.String(),
		SubjectPublicKeyInfo: SubjectPublicKeyInfo{
			Algorithm: AlgorithmIdentifier{
				Algorithm:  tbs.PublicKey.Algorithm.Algorithm.String(),
				Name:       cert.PublicKeyAlgorithm.String(),
				Parameters: formatParameters(tbs.PublicKey.Algorithm.Parameters),
			},
			PublicKeyBits: tbs.PublicKey.PublicKey.BitLength,
			PublicKey:     hex.EncodeToString(tbs.PublicKey.PublicKey.Bytes),
		},
		IssuerUniqueID:  formatUniqueID(tbs.IssuerUniqueID),
		SubjectUniqueID: formatUniqueID(tbs.SubjectUniqueID),
	}

	for _, ext := range tbs.Extensions {
		view.Extensions = append(view.Extensions, Extension{
			ID:       ext.Id.String(),
			Name:     extensionNames[ext.Id.String()],
			Critical: ext.Critical,
			Value:    hex.EncodeToString(ext.Value),
		})
	}

	return view, nil
}

// formatSerial renders a serial number as colon separated hex bytes.
func formatSerial(serial *big.Int) string {
	if serial == nil {
		return ""
	}
	b := serial.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}

	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}

	s := strings.Join(parts, ":")
	if serial.Sign() < 0 {
		s = "-" + s
	}
	return s
}

// formatParameters renders algorithm parameters. Absent parameters are empty,
// NULL and OID values are spelled out and anything else is hex.
func formatParameters(params ctasn1.RawValue) string {
	if len(params.FullBytes) == 0 {
		return ""
	}

	if params.Class == ctasn1.ClassUniversal {
		switch params.Tag {
		case ctasn1.TagNull:
			return "NULL"
		case ctasn1.TagOID:
			var oid ctasn1.ObjectIdentifier
			if _, err := ctasn1.Unmarshal(params.FullBytes, &oid); err == nil {
				return oid.String()
			}
		}
	}

	return hex.EncodeToString(params.FullBytes)
}

// formatUniqueID renders an optional unique identifier.
func formatUniqueID(id ctasn1.BitString) string {
	if id.BitLength == 0 {
		return ""
	}
	return hex.EncodeToString(id.RightAlign())
}

// extensionNames maps RFC 5280 and CT extension OIDs to their short names.
var extensionNames = map[string]string{
	"2.5.29.14":               "SubjectKeyIdentifier",
	"2.5.29.15":               "KeyUsage",
	"2.5.29.17":               "SubjectAltName",
	"2.5.29.18":               "IssuerAltName",
	"2.5.29.19":               "BasicConstraints",
	"2.5.29.30":               "NameConstraints",
	"2.5.29.31":               "CRLDistributionPoints",
	"2.5.29.32":               "CertificatePolicies",
	"2.5.29.35":               "AuthorityKeyIdentifier",
	"2.5.29.37":               "ExtendedKeyUsage",
	"1.3.6.1.5.5.7.1.1":       "AuthorityInfoAccess",
	"1.3.6.1.4.1.11129.2.4.2": "SignedCertificateTimestampList",
	"1.3.6.1.4.1.11129.2.4.3": "CTPoison",
}
