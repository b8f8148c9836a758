// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when os.Args[0] is unavailable.
const fallbackName = "cert-decoder"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so the
// name can be used in cobra usage strings.
//
//   - Linux/macOS: "cert-decoder" from "/usr/local/bin/cert-decoder"
//   - Windows: "cert-decoder" from "C:\bin\cert-decoder.exe"
//   - Fallback: "cert-decoder" if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}

	name := filepath.Base(os.Args[0])

	// A Windows path seen on Unix (or the reverse) keeps its separators after
	// filepath.Base, so take the last non-empty component by hand.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				name = parts[i]
				break
			}
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
