// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathrules"
)

// nameContainsFold reports whether name contains filter, case-insensitive.
func nameContainsFold(name string, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// exportMatcher holds compiled selection rules for subtree export.
type exportMatcher struct {
	matcher *pathrules.Matcher
}

// newExportMatcher compiles export selection rules. Nil result means no
// selection is configured and every file is exported.
func newExportMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*exportMatcher, error) {
	rules = normalizeExportRules(rules)
	if len(rules) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidExportRules, err)
	}

	return &exportMatcher{matcher: matcher}, nil
}

// normalizeExportRules normalizes rule patterns and drops empty patterns.
func normalizeExportRules(rules []pathrules.Rule) []pathrules.Rule {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := normalizePathForMatching(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	return normalized
}

// Match reports whether the archive-relative path is selected for export.
// A nil matcher selects everything.
func (m *exportMatcher) Match(relPath string) bool {
	if m == nil || m.matcher == nil {
		return true
	}

	candidate := NormalizePath(relPath)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, false)
}
