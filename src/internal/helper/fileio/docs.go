// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fileio abstracts the filesystem queries made by the decoder so that
// tests can substitute fixed answers without touching the disk.
//
// The production implementation, [OS], answers IsFile with os.Stat (symlinks are
// followed) and reads files through a pooled buffer from the gc package.
package fileio
