// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// cert-decoder prints the to-be-signed structure of a PEM encoded X.509
// certificate as a debug dump.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/cert-decoder/cmd/cert-decoder@latest
//
// # Usage
//
//	cert-decoder /path/to/cert
//
// Exactly one argument is accepted. It must name a regular file holding a single
// PEM "CERTIFICATE" block. There are no flags: an argument such as "--help" or
// "-cert.pem" is taken as a path, and "--" counts as an argument.
//
// # Exit Status
//
//	0    the certificate was decoded and printed
//	1    wrong argument count, not a regular file, unreadable file,
//	     invalid PEM or invalid certificate (message on stderr)
//	130  interrupted by a signal
//
// # Examples
//
// Decode a certificate:
//
//	cert-decoder ./cert.pem
//
// Decode a certificate fetched with OpenSSL:
//
//	openssl s_client -connect example.com:443 </dev/null 2>/dev/null \
//	  | openssl x509 > example.pem
//	cert-decoder example.pem
package main
