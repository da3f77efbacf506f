// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import "errors"

// Sentinel errors for VDFS operations. Use errors.Is in callers.
var (
	// ErrNodeNotFound means no node with the requested name exists in the tree.
	ErrNodeNotFound = errors.New("node not found")
	// ErrInvalidData means node payload is missing or malformed (reserved for collaborator use).
	ErrInvalidData = errors.New("invalid node data")
	// ErrInvalidGameVersion means the game version string is not supported.
	ErrInvalidGameVersion = errors.New("invalid game version")
	// ErrNameCollision means a path segment resolves to an existing file node.
	ErrNameCollision = errors.New("path segment collides with existing file node")
	// ErrNilNode means the node is nil.
	ErrNilNode = errors.New("node is nil")
	// ErrNotDirectory means the operation requires a directory node.
	ErrNotDirectory = errors.New("node is not a directory")
	// ErrNilCodec means no archive codec is configured.
	ErrNilCodec = errors.New("codec is nil")
	// ErrNilFilesystem means no host filesystem is configured.
	ErrNilFilesystem = errors.New("filesystem is nil")
	// ErrInvalidInternalPath means the internal path is empty or invalid after normalization.
	ErrInvalidInternalPath = errors.New("invalid internal path")
	// ErrNoInput means neither a source path nor content was provided for insertion.
	ErrNoInput = errors.New("no source path or content provided")
	// ErrInvalidNodeName means the node name cannot be rewritten to a filesystem-safe form.
	ErrInvalidNodeName = errors.New("invalid node name")
	// ErrInvalidExportRules means one or more export selection rules are invalid.
	ErrInvalidExportRules = errors.New("invalid export rules")
)
