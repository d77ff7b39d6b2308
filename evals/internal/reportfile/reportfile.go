/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package reportfile writes rendered reports to disk.
package reportfile

import (
	"os"
	"path/filepath"
	"unicode/utf8"
)

// MaxFieldLength is the number of characters kept by Truncate in bounded report fields.
const MaxFieldLength = 500

// Write creates the parent directories of path, writes data to it (replacing any
// existing file) and returns the absolute, symlink-resolved path. Filesystem errors
// are returned as-is.
func Write(path string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Truncate returns at most n characters (runes) of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
