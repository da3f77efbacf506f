// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"path"
	"strings"
)

// NormalizePath converts an internal archive path to normalized slash-separated form.
// It trims spaces, accepts both "/" and "\", removes leading "./" and "/", and cleans "." segments.
func NormalizePath(raw string) string {
	raw = normalizePathForMatching(raw)
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePathForMatching normalizes user/input paths for matcher use.
func normalizePathForMatching(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, `/`)
	path = strings.TrimPrefix(path, "./")
	return path
}

// splitPathSegments splits an internal path into ordered non-empty segment names.
func splitPathSegments(raw string) []string {
	normalized := NormalizePath(raw)
	if normalized == "" {
		return nil
	}

	parts := strings.Split(normalized, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return segments
}

// isCurrentDirPath reports whether an internal destination means "archive root".
func isCurrentDirPath(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", ".", "/", `\`, "./", `.\`:
		return true
	default:
		return false
	}
}
