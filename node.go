// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"strings"
)

// Node is one entry of the in-memory archive tree: either a directory holding
// creation-ordered children, or a file holding an immutable byte payload.
// Every non-root node is exclusively owned by its parent directory.
type Node struct {
	parent   *Node
	name     string
	data     []byte
	children []*Node
	dir      bool
}

// newDirNode creates a detached directory node.
func newDirNode(name string) *Node {
	return &Node{name: name, dir: true}
}

// Name returns the node name as stored.
func (n *Node) Name() string {
	return n.name
}

// IsDir reports whether this node is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.dir
}

// Data returns the file payload. Callers must not modify the returned slice.
// Directories return nil.
func (n *Node) Data() []byte {
	if n == nil || n.dir {
		return nil
	}

	return n.data
}

// Parent returns the owning directory node, or nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}

	return n.parent
}

// Children returns a copy of the child list in creation order.
// The copy keeps traversals safe while children are detached.
func (n *Node) Children() []*Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}

	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the direct child with the given name (case-insensitive), or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.children {
		if strings.EqualFold(child.name, name) {
			return child
		}
	}

	return nil
}

// CreateDir creates a directory node under this directory and returns it.
func (n *Node) CreateDir(name string) (*Node, error) {
	if err := n.checkCreate(name); err != nil {
		return nil, err
	}

	child := &Node{parent: n, name: name, dir: true}
	n.children = append(n.children, child)

	return child, nil
}

// CreateFile creates a file node with the given payload under this directory
// and returns it. A same-named sibling is not rejected (known archive format
// limitation, duplicates stay addressable by position).
func (n *Node) CreateFile(name string, data []byte) (*Node, error) {
	if err := n.checkCreate(name); err != nil {
		return nil, err
	}

	child := &Node{parent: n, name: name, data: data}
	n.children = append(n.children, child)

	return child, nil
}

// Remove detaches the first direct child with the given name (case-insensitive).
// It reports whether a child was removed.
func (n *Node) Remove(name string) bool {
	if n == nil {
		return false
	}

	for i, child := range n.children {
		if strings.EqualFold(child.name, name) {
			child.parent = nil
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}

	return false
}

// checkCreate validates the receiver and name before child creation.
func (n *Node) checkCreate(name string) error {
	if n == nil {
		return ErrNilNode
	}

	if !n.dir {
		return fmt.Errorf("%w: %s", ErrNotDirectory, n.name)
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInternalPath)
	}

	return nil
}
