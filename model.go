// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/woozymasta/pathrules"
	"go.uber.org/zap"
)

// Extension is the canonical VDF archive file extension.
const Extension = ".vdf"

// GameVersion selects the archive format generation written on save.
type GameVersion uint8

// Supported archive format generations.
const (
	// Gothic1 selects the first-generation VDF layout.
	Gothic1 GameVersion = iota + 1
	// Gothic2 selects the second-generation VDF layout (default).
	Gothic2
)

// String returns the short version token ("g1"/"g2").
func (v GameVersion) String() string {
	switch v {
	case Gothic1:
		return "g1"
	case Gothic2:
		return "g2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

// ParseGameVersion converts a version token to GameVersion.
// Known tokens are "g1" and "g2" (case-insensitive).
func ParseGameVersion(s string) (GameVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g1":
		return Gothic1, nil
	case "g2":
		return Gothic2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGameVersion, s)
	}
}

// NameCasing controls how inserted entry names are stored.
type NameCasing uint8

// Entry name casing policies, decided once at the insertion API boundary.
const (
	// CasingFormat applies the archive format convention: single-file inserts
	// store upper-cased names, host-directory merges keep source casing
	// (except the merge root, which is upper-cased like a direct insert).
	CasingFormat NameCasing = iota
	// CasingUpper upper-cases every inserted name.
	CasingUpper
	// CasingPreserve stores every inserted name exactly as given.
	CasingPreserve
)

// InsertOptions configures insertion behavior.
type InsertOptions struct {
	// Casing selects the stored-name casing policy.
	Casing NameCasing
}

// ExportOptions configures export behavior.
type ExportOptions struct {
	// OnFileDone is called after one file is fully written to the destination.
	OnFileDone func(name string, outputPath string, written int) `json:"-" yaml:"-"`
	// Rules select exported files by archive-relative path during subtree export.
	// Empty rules export everything.
	Rules []pathrules.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
	// MatcherOptions control export rule matching.
	MatcherOptions pathrules.MatcherOptions `json:"matcher_options,omitzero" yaml:"matcher_options,omitzero"`
	// MatchAll switches ExportNode to wildcard mode: every file whose name
	// contains the filter (case-insensitive) is written flat into the destination.
	MatchAll bool `json:"match_all,omitempty" yaml:"match_all,omitempty"`
	// RawNames disables default output name sanitization.
	RawNames bool `json:"raw_names,omitempty" yaml:"raw_names,omitempty"`
}

// RemoveOptions configures removal behavior.
type RemoveOptions struct {
	// MatchAll switches to wildcard mode: every file whose name contains the
	// filter (case-insensitive) is removed; directories are never removed by substring.
	MatchAll bool `json:"match_all,omitempty" yaml:"match_all,omitempty"`
}

// HandlerOptions configures Handler construction.
type HandlerOptions struct {
	// Filesystem is the host filesystem used for archive, insert and export I/O.
	// Default is the OS filesystem rooted at "/".
	Filesystem billy.Filesystem
	// Codec serializes and deserializes the archive tree.
	// Default is SnapshotCodec; production use wires the external VDF codec here.
	Codec Codec
	// Logger receives operation logging. Default is a no-op logger.
	Logger *zap.Logger
}

// applyDefaults fills zero-valued export options with defaults.
func (opts *ExportOptions) applyDefaults() {
	if opts.MatcherOptions == (pathrules.MatcherOptions{}) {
		opts.MatcherOptions = pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionExclude,
		}
	}

	if opts.MatcherOptions.DefaultAction == pathrules.ActionUnknown {
		opts.MatcherOptions.DefaultAction = pathrules.ActionExclude
	}
}

// applyDefaults fills zero-valued handler options with defaults.
func (opts *HandlerOptions) applyDefaults() {
	if opts.Filesystem == nil {
		opts.Filesystem = osfs.New("/")
	}

	if opts.Codec == nil {
		opts.Codec = SnapshotCodec{}
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
}
