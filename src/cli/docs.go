// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for cert-decoder.
// It implements a Cobra-based root command that accepts a single certificate
// path, hands it to the decoder pipeline and writes the result to stdout.
// Errors are returned to the caller and reported through the logger package.
package cli
