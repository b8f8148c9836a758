// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509tbs decodes the "to-be-signed" portion of an [X.509] certificate
// and renders it as a debug dump.
//
// The TBS sequence is unmarshalled with the [certificate-transparency-go] fork of
// encoding/asn1 into a plain [Certificate] view, which is then printed with
// [go-spew] using a fixed configuration so that identical input always yields
// identical output.
//
// [X.509]: https://grokipedia.com/page/X.509
// [certificate-transparency-go]: https://github.com/google/certificate-transparency-go
// [go-spew]: https://github.com/davecgh/go-spew
package x509tbs
