// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"io"
	"strings"
)

// Tree is one mounted archive: a single root directory node, the format
// generation declared for the next save, and a file count cached when the
// tree was mounted or created. The count is not maintained incrementally.
type Tree struct {
	root      *Node
	version   GameVersion
	fileCount int
}

// NewTree creates an empty tree with the default format generation.
func NewTree() *Tree {
	return &Tree{
		root:    newDirNode(""),
		version: Gothic2,
	}
}

// Root returns the root directory node.
func (t *Tree) Root() *Node {
	return t.root
}

// Version returns the format generation used on save.
func (t *Tree) Version() GameVersion {
	return t.version
}

// SetVersion declares the format generation used on save.
func (t *Tree) SetVersion(v GameVersion) {
	t.version = v
}

// FileCount returns the number of file nodes cached at mount/creation time.
func (t *Tree) FileCount() int {
	return t.fileCount
}

// Find returns the first node anywhere in the tree whose name equals the
// given name (case-insensitive, pre-order), or nil. The root is not matched.
func (t *Tree) Find(name string) *Node {
	if t == nil || t.root == nil {
		return nil
	}

	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node != t.root && strings.EqualFold(node.name, name) {
			return node
		}

		// Push children reversed so pre-order pops left to right.
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}

	return nil
}

// Mount replaces tree contents with an archive decoded by the codec
// and recomputes the cached file count.
func (t *Tree) Mount(r io.Reader, codec Codec) error {
	if codec == nil {
		return ErrNilCodec
	}

	root, version, err := codec.Decode(r)
	if err != nil {
		return fmt.Errorf("decode archive: %w", err)
	}

	if root == nil || !root.dir {
		return fmt.Errorf("%w: codec returned no root directory", ErrInvalidData)
	}

	t.root = root
	t.version = version
	t.fileCount = countFiles(root)

	return nil
}

// Save serializes the tree using the codec and the declared format generation.
func (t *Tree) Save(w io.Writer, codec Codec) error {
	if codec == nil {
		return ErrNilCodec
	}

	if err := codec.Encode(w, t.root, t.version); err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}

	return nil
}

// countFiles counts file (non-directory) nodes reachable from root.
func countFiles(root *Node) int {
	if root == nil {
		return 0
	}

	count := 0
	stack := []*Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range node.children {
			if child.dir {
				stack = append(stack, child)
				continue
			}

			count++
		}
	}

	return count
}
