// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import "fmt"

// EnsureDirectory resolves a slash-delimited internal path segment by segment
// from start (root when nil), creating missing directory nodes, and returns
// the final directory node. Resolution is scoped to the current directory's
// direct children, so same-named directories in other subtrees never collide.
// A segment that resolves to an existing file node fails with ErrNameCollision.
func (t *Tree) EnsureDirectory(internalPath string, start *Node) (*Node, error) {
	segments := splitPathSegments(internalPath)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInternalPath, internalPath)
	}

	current := start
	if current == nil {
		current = t.root
	}

	if !current.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, current.Name())
	}

	for _, segment := range segments {
		existing := current.Child(segment)
		if existing == nil {
			created, err := current.CreateDir(segment)
			if err != nil {
				return nil, fmt.Errorf("create directory %q: %w", segment, err)
			}

			current = created
			continue
		}

		if !existing.dir {
			return nil, fmt.Errorf("%w: %q", ErrNameCollision, segment)
		}

		current = existing
	}

	return current, nil
}
