// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package fileio

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/cert-decoder/src/internal/helper/gc"
)

// ErrInvalidUTF8 is returned, wrapped in an *fs.PathError, when a file is not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("fileio: stream did not contain valid UTF-8")

// PathValidator reports whether a path names an existing regular file.
type PathValidator interface {
	IsFile(path string) bool
}

// FileProcessor extends PathValidator with the ability to read a file's full
// contents as text.
type FileProcessor interface {
	PathValidator
	ReadFile(path string) (string, error)
}

// OS implements FileProcessor on top of the real filesystem.
type OS struct{}

// New returns the filesystem backed FileProcessor.
func New() *OS { return &OS{} }

// IsFile reports whether path resolves to a regular file.
func (OS) IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the whole file at path as text. Errors from opening or reading
// the file are returned unmodified; content that is not valid UTF-8 fails with
// ErrInvalidUTF8.
func (OS) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return "", err
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrInvalidUTF8}
	}

	// String copies, so the buffer can go back to the pool.
	return buf.String(), nil
}
