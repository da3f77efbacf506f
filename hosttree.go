// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
)

// hostTree is an ephemeral structural description of one host directory:
// its own name plus entries in host enumeration order. It is built once per
// insertion and discarded after the merge.
type hostTree struct {
	name    string
	entries []hostEntry
}

// hostEntry is one directory member: either a nested subtree or a file path.
type hostEntry struct {
	subtree  *hostTree
	filePath string
}

// readHostTree describes the host directory at dir. Pure read, no mutation.
func readHostTree(fs billy.Filesystem, dir string) (*hostTree, error) {
	if fs == nil {
		return nil, ErrNilFilesystem
	}

	infos, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read host directory %s: %w", dir, err)
	}

	tree := &hostTree{
		name:    path.Base(NormalizePath(dir)),
		entries: make([]hostEntry, 0, len(infos)),
	}

	for _, info := range infos {
		entryPath := fs.Join(dir, info.Name())
		if !info.IsDir() {
			tree.entries = append(tree.entries, hostEntry{filePath: entryPath})
			continue
		}

		subtree, err := readHostTree(fs, entryPath)
		if err != nil {
			return nil, err
		}

		tree.entries = append(tree.entries, hostEntry{subtree: subtree})
	}

	return tree, nil
}
