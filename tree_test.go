// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTreeFind(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"A/TARGET.TXT": "first",
		"Z/TARGET.TXT": "second",
	})

	node := tree.Find("target.txt")
	if node == nil {
		t.Fatal("Find must locate the node case-insensitively")
	}

	// Pre-order: the match under A comes before the one under Z.
	if string(node.Data()) != "first" {
		t.Fatalf("Find returned %q, want the pre-order first match", node.Data())
	}

	if tree.Find("missing") != nil {
		t.Fatal("Find(missing) must return nil")
	}

	// The unnamed root itself is never matched.
	if tree.Find("") != nil {
		t.Fatal("Find must not match the root node")
	}
}

func TestTreeSaveAndMount(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"DATA/WORLDS/NEWWORLD.ZEN": "zen",
		"DATA/ANIMS.VDF":           "anims",
	})
	tree.SetVersion(Gothic1)

	var buf bytes.Buffer
	if err := tree.Save(&buf, SnapshotCodec{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mounted := NewTree()
	if err := mounted.Mount(&buf, SnapshotCodec{}); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if mounted.Version() != Gothic1 {
		t.Fatalf("version=%v, want Gothic1", mounted.Version())
	}

	if mounted.FileCount() != 2 {
		t.Fatalf("FileCount=%d, want 2", mounted.FileCount())
	}

	zen := mounted.Find("newworld.zen")
	if zen == nil || string(zen.Data()) != "zen" {
		t.Fatalf("newworld.zen=%v, want payload zen", zen)
	}

	if zen.Parent().Name() != "WORLDS" {
		t.Fatalf("parent=%q, want WORLDS", zen.Parent().Name())
	}
}

func TestTreeMountErrors(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	if err := tree.Mount(strings.NewReader("garbage"), SnapshotCodec{}); err == nil {
		t.Fatal("garbage input must fail to mount")
	}

	if err := tree.Mount(strings.NewReader(""), nil); !errors.Is(err, ErrNilCodec) {
		t.Fatalf("nil codec: %v, want ErrNilCodec", err)
	}

	var buf bytes.Buffer
	if err := tree.Save(&buf, nil); !errors.Is(err, ErrNilCodec) {
		t.Fatalf("Save nil codec: %v, want ErrNilCodec", err)
	}
}

func TestGameVersion(t *testing.T) {
	t.Parallel()

	if Gothic1.String() != "g1" || Gothic2.String() != "g2" {
		t.Fatalf("tokens=%q/%q, want g1/g2", Gothic1, Gothic2)
	}

	v, err := ParseGameVersion(" G1 ")
	if err != nil || v != Gothic1 {
		t.Fatalf("ParseGameVersion(G1)=%v/%v, want Gothic1", v, err)
	}

	if _, err := ParseGameVersion("g3"); err == nil {
		t.Fatal("unknown token must fail")
	}
}
