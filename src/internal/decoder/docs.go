// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package decoder implements the cert-decoder pipeline.
//
// The pipeline is linear and stops at the first failure:
//
//  1. exactly one argument must be given
//  2. the argument must name a regular file
//  3. the file is read and its single PEM block decoded
//  4. the DER bytes are parsed as an X.509 certificate
//  5. the to-be-signed portion is printed
//
// Steps 1 and 2 form the validator stage and are available on their own
// through [Decoder.Validate]. Filesystem access goes through
// [fileio.FileProcessor] so tests can replace it.
package decoder
