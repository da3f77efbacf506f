// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"errors"
	"testing"
)

func TestReadHostTree(t *testing.T) {
	t.Parallel()

	fs := newHostFS(t, map[string]string{
		"/data/a.txt":     "a",
		"/data/sub/b.txt": "b",
	})

	tree, err := readHostTree(fs, "/data")
	if err != nil {
		t.Fatalf("readHostTree: %v", err)
	}

	if tree.name != "data" {
		t.Fatalf("name=%q, want data", tree.name)
	}

	var files, dirs int
	for _, entry := range tree.entries {
		if entry.subtree != nil {
			dirs++
			continue
		}

		files++
		if entry.filePath == "" {
			t.Fatal("file entry must carry its host path")
		}
	}

	if files != 1 || dirs != 1 {
		t.Fatalf("files=%d dirs=%d, want 1/1", files, dirs)
	}

	var sub *hostTree
	for _, entry := range tree.entries {
		if entry.subtree != nil {
			sub = entry.subtree
		}
	}

	if sub == nil || sub.name != "sub" || len(sub.entries) != 1 {
		t.Fatalf("sub=%+v, want subtree with one file", sub)
	}
}

func TestReadHostTreeNilFilesystem(t *testing.T) {
	t.Parallel()

	if _, err := readHostTree(nil, "/x"); !errors.Is(err, ErrNilFilesystem) {
		t.Fatalf("nil filesystem: %v, want ErrNilFilesystem", err)
	}
}
