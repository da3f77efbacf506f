// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"encoding/gob"
	"fmt"
	"io"
)

// Codec is the archive serialization collaborator. The VDF binary layout is
// owned by an external library; anything able to rebuild a root directory
// node satisfies this contract.
type Codec interface {
	// Encode writes the tree rooted at root using the given format generation.
	Encode(w io.Writer, root *Node, version GameVersion) error
	// Decode reads an archive and returns its root directory node and the
	// format generation it declares.
	Decode(r io.Reader) (*Node, GameVersion, error)
}

// SnapshotCodec is a development codec: a gob-framed structural snapshot of
// the tree. It round-trips structure, names and payloads but is not the VDF
// binary layout; production workflows wire the external VDF codec instead.
type SnapshotCodec struct{}

// snapshotArchive is the serialized archive frame.
type snapshotArchive struct {
	Root    snapshotNode
	Version GameVersion
}

// snapshotNode is one serialized node.
type snapshotNode struct {
	Name     string
	Data     []byte
	Children []snapshotNode
	Dir      bool
}

// Encode implements Codec.
func (SnapshotCodec) Encode(w io.Writer, root *Node, version GameVersion) error {
	if root == nil {
		return ErrNilNode
	}

	archive := snapshotArchive{
		Version: version,
		Root:    toSnapshot(root),
	}

	if err := gob.NewEncoder(w).Encode(archive); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}

// Decode implements Codec.
func (SnapshotCodec) Decode(r io.Reader) (*Node, GameVersion, error) {
	var archive snapshotArchive
	if err := gob.NewDecoder(r).Decode(&archive); err != nil {
		return nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}

	if !archive.Root.Dir {
		return nil, 0, fmt.Errorf("%w: snapshot root is not a directory", ErrInvalidData)
	}

	version := archive.Version
	if version != Gothic1 && version != Gothic2 {
		version = Gothic2
	}

	return fromSnapshot(archive.Root, nil), version, nil
}

// toSnapshot converts a node subtree to its serialized form.
func toSnapshot(n *Node) snapshotNode {
	out := snapshotNode{
		Name: n.name,
		Dir:  n.dir,
		Data: n.data,
	}

	if len(n.children) > 0 {
		out.Children = make([]snapshotNode, 0, len(n.children))
		for _, child := range n.children {
			out.Children = append(out.Children, toSnapshot(child))
		}
	}

	return out
}

// fromSnapshot rebuilds a node subtree under parent.
func fromSnapshot(s snapshotNode, parent *Node) *Node {
	node := &Node{
		parent: parent,
		name:   s.Name,
		dir:    s.Dir,
		data:   s.Data,
	}

	if len(s.Children) > 0 {
		node.children = make([]*Node, 0, len(s.Children))
		for _, child := range s.Children {
			node.children = append(node.children, fromSnapshot(child, node))
		}
	}

	return node
}
