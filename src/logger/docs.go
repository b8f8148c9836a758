// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and CLILogger, a human-readable implementation
// backed by the standard log package. CLILogger writes to standard error so that
// standard output stays reserved for the decoded certificate.
package logger
