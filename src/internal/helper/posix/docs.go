// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	// Use in cobra command definitions
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName() + " /path/to/cert",
//	    Short: "Decode a PEM encoded X.509 certificate",
//	}
//
// The function provides consistent behavior across platforms:
//
//   - Linux/macOS: "/usr/bin/cert-decoder" → "cert-decoder"
//   - Windows: "C:\bin\cert-decoder.exe" → "cert-decoder"
//   - Fallback: Empty args → "cert-decoder"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
