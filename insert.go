// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// mergeWorkItem stores one pending host subtree with its resolved target directory.
type mergeWorkItem struct {
	desc   *hostTree
	target *Node
}

// InsertContent creates a file node with the given payload at internalPath.
// A path without "." anywhere is treated as a pure directory path and only
// resolves/creates directories. Creation happens regardless of an existing
// same-named sibling, so duplicate file nodes remain possible (known
// limitation of the immediate-insert flow).
func (t *Tree) InsertContent(internalPath string, content []byte, opts InsertOptions) (*Node, error) {
	segments := splitPathSegments(internalPath)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInternalPath, internalPath)
	}

	if !strings.Contains(NormalizePath(internalPath), ".") {
		return t.EnsureDirectory(internalPath, nil)
	}

	if content == nil {
		return nil, fmt.Errorf("%w: content required for %q", ErrNoInput, internalPath)
	}

	parent := t.root
	if len(segments) > 1 {
		resolved, err := t.EnsureDirectory(strings.Join(segments[:len(segments)-1], "/"), nil)
		if err != nil {
			return nil, err
		}

		parent = resolved
	}

	name := insertFileName(segments[len(segments)-1], opts.Casing)
	node, err := parent.CreateFile(name, content)
	if err != nil {
		return nil, fmt.Errorf("create file %q: %w", name, err)
	}

	return node, nil
}

// InsertHostFile reads one host file and creates a file node for it under
// internalPath (archive root when the path means "current directory").
func (t *Tree) InsertHostFile(fs billy.Filesystem, sourcePath string, internalPath string, opts InsertOptions) (*Node, error) {
	if fs == nil {
		return nil, ErrNilFilesystem
	}

	data, err := util.ReadFile(fs, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("read host file %s: %w", sourcePath, err)
	}

	parent := t.root
	if !isCurrentDirPath(internalPath) {
		parent, err = t.EnsureDirectory(internalPath, nil)
		if err != nil {
			return nil, err
		}
	}

	name := insertFileName(path.Base(NormalizePath(sourcePath)), opts.Casing)
	node, err := parent.CreateFile(name, data)
	if err != nil {
		return nil, fmt.Errorf("create file %q: %w", name, err)
	}

	return node, nil
}

// InsertHostDir mirrors the host directory at sourceDir into the tree under
// internalPath (archive root when the path means "current directory") and
// returns the directory node created or reused for the merge root.
func (t *Tree) InsertHostDir(fs billy.Filesystem, sourceDir string, internalPath string, opts InsertOptions) (*Node, error) {
	desc, err := readHostTree(fs, sourceDir)
	if err != nil {
		return nil, err
	}

	target := t.root
	if !isCurrentDirPath(internalPath) {
		target, err = t.EnsureDirectory(internalPath, nil)
		if err != nil {
			return nil, err
		}
	}

	return t.mergeHostTree(fs, desc, target, opts)
}

// mergeHostTree creates directory and file nodes matching the host
// description under target. Directory resolution is scoped to the current
// target's direct children, so repeated merges reuse existing directories
// without duplicating them. Traversal uses an explicit work list.
func (t *Tree) mergeHostTree(fs billy.Filesystem, desc *hostTree, target *Node, opts InsertOptions) (*Node, error) {
	if desc == nil || target == nil {
		return nil, ErrNilNode
	}

	rootName := mergeRootName(desc.name, opts.Casing)
	mergeRoot, err := resolveMergeDir(target, rootName)
	if err != nil {
		return nil, err
	}

	stack := []mergeWorkItem{{desc: desc, target: mergeRoot}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, entry := range item.desc.entries {
			if entry.subtree != nil {
				name := mergeEntryName(entry.subtree.name, opts.Casing)
				dir, dirErr := resolveMergeDir(item.target, name)
				if dirErr != nil {
					return nil, dirErr
				}

				stack = append(stack, mergeWorkItem{desc: entry.subtree, target: dir})
				continue
			}

			data, readErr := util.ReadFile(fs, entry.filePath)
			if readErr != nil {
				return nil, fmt.Errorf("read host file %s: %w", entry.filePath, readErr)
			}

			name := mergeEntryName(path.Base(NormalizePath(entry.filePath)), opts.Casing)
			if _, fileErr := item.target.CreateFile(name, data); fileErr != nil {
				return nil, fmt.Errorf("create file %q: %w", name, fileErr)
			}
		}
	}

	return mergeRoot, nil
}

// resolveMergeDir reuses an existing same-named directory child or creates one.
func resolveMergeDir(parent *Node, name string) (*Node, error) {
	existing := parent.Child(name)
	if existing != nil {
		if !existing.dir {
			return nil, fmt.Errorf("%w: %q", ErrNameCollision, name)
		}

		return existing, nil
	}

	created, err := parent.CreateDir(name)
	if err != nil {
		return nil, fmt.Errorf("create directory %q: %w", name, err)
	}

	return created, nil
}

// insertFileName applies the casing policy for single-file inserts.
func insertFileName(name string, casing NameCasing) string {
	if casing == CasingPreserve {
		return name
	}

	return strings.ToUpper(name)
}

// mergeRootName applies the casing policy for the merge root directory.
// The merge root crosses the insertion API boundary directly, so the format
// convention upper-cases it like a single-file insert.
func mergeRootName(name string, casing NameCasing) string {
	if casing == CasingPreserve {
		return name
	}

	return strings.ToUpper(name)
}

// mergeEntryName applies the casing policy for names nested in a merged tree.
func mergeEntryName(name string, casing NameCasing) string {
	if casing == CasingUpper {
		return strings.ToUpper(name)
	}

	return name
}
