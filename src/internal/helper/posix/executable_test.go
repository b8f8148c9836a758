// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetExecutableName tests the GetExecutableName function for cross-platform compatibility.
func TestGetExecutableName(t *testing.T) {
	// Build test cases based on the current OS
	var tests []struct {
		name     string
		args     []string
		expected string
	}

	// Common test cases for all OS
	commonTests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Relative path",
			args:     []string{"./cert-decoder"},
			expected: "cert-decoder",
		},
		{
			name:     "Just filename",
			args:     []string{"cert-decoder-dev"},
			expected: "cert-decoder-dev",
		},
		{
			name:     "Empty args",
			args:     []string{},
			expected: "cert-decoder",
		},
		{
			name:     "Empty first arg",
			args:     []string{""},
			expected: "cert-decoder",
		},
	}

	tests = append(tests, commonTests...)

	// OS-specific test cases
	switch runtime.GOOS {
	case "windows":
		windowsTests := []struct {
			name     string
			args     []string
			expected string
		}{
			{
				name:     "Windows absolute path with .exe",
				args:     []string{"C:\\Program Files\\cert-decoder.exe"},
				expected: "cert-decoder",
			},
			{
				name:     "Windows absolute path without .exe",
				args:     []string{"C:\\Program Files\\cert-decoder"},
				expected: "cert-decoder",
			},
			{
				name:     "Windows path with backslashes",
				args:     []string{"C:\\Users\\user\\bin\\cert-decoder.exe"},
				expected: "cert-decoder",
			},
			// This is how GetExecutableName is robust.
			{
				name:     "Test with foreign windows path separators",
				args:     []string{"C:\\windows\\style\\path\\on\\unix\\system.exe"},
				expected: "system",
			},
		}
		tests = append(tests, windowsTests...)

	default: // Unix-like systems (linux, darwin, etc.)
		unixTests := []struct {
			name     string
			args     []string
			expected string
		}{
			{
				name:     "Unix absolute path",
				args:     []string{"/usr/local/bin/cert-decoder"},
				expected: "cert-decoder",
			},
			{
				name:     "Unix system path",
				args:     []string{"/bin/ls"},
				expected: "ls",
			},
			{
				name:     "Unix home path",
				args:     []string{"/home/user/bin/cert-decoder"},
				expected: "cert-decoder",
			},
		}
		tests = append(tests, unixTests...)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save original args
			origArgs := os.Args

			// Set test args
			os.Args = tt.args

			// Restore args after test
			defer func() {
				os.Args = origArgs
			}()

			result := GetExecutableName()
			assert.Equal(t, tt.expected, result, "GetExecutableName() for %q", tt.args)
		})
	}
}
