// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/woozymasta/pathrules"
)

// collectFiles walks dir and returns content keyed by slash-relative path.
func collectFiles(t *testing.T, fs billy.Filesystem, dir string) map[string]string {
	t.Helper()

	out := map[string]string{}

	var walk func(rel string)
	walk = func(rel string) {
		infos, err := fs.ReadDir(fs.Join(dir, rel))
		if err != nil {
			t.Fatalf("read dir %s/%s: %v", dir, rel, err)
		}

		for _, info := range infos {
			next := info.Name()
			if rel != "" {
				next = rel + "/" + info.Name()
			}

			if info.IsDir() {
				walk(next)
				continue
			}

			data, err := util.ReadFile(fs, fs.Join(dir, next))
			if err != nil {
				t.Fatalf("read %s: %v", next, err)
			}

			out[next] = string(data)
		}
	}

	walk("")
	return out
}

// buildTestTree inserts the given files (paths already cased as stored).
func buildTestTree(t *testing.T, files map[string]string) *Tree {
	t.Helper()

	tree := NewTree()
	for path, content := range files {
		if _, err := tree.InsertContent(path, []byte(content), InsertOptions{Casing: CasingPreserve}); err != nil {
			t.Fatalf("insert %s: %v", path, err)
		}
	}

	return tree
}

func TestExportNode_File(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{"DOCS/README.TXT": "hello"})

	fs := memfs.New()
	if err := tree.ExportNode(fs, "readme.txt", "/out", ExportOptions{}); err != nil {
		t.Fatalf("ExportNode: %v", err)
	}

	got := collectFiles(t, fs, "/out")
	if len(got) != 1 || got["README.TXT"] != "hello" {
		t.Fatalf("exported=%v, want README.TXT=hello", got)
	}
}

func TestExportNode_DirectoryKeepsStructure(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"DOCS/README.TXT": "hello",
		"DOCS/SUB/X.TXT":  "x",
		"OTHER/Y.TXT":     "y",
	})

	fs := memfs.New()
	if err := tree.ExportNode(fs, "docs", "/out", ExportOptions{}); err != nil {
		t.Fatalf("ExportNode: %v", err)
	}

	got := collectFiles(t, fs, "/out")
	if len(got) != 2 {
		t.Fatalf("exported=%v, want 2 files", got)
	}

	if got["README.TXT"] != "hello" || got["SUB/X.TXT"] != "x" {
		t.Fatalf("exported=%v, want README.TXT and SUB/X.TXT", got)
	}
}

func TestExportNode_MissingName(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{"A.TXT": "a"})

	fs := memfs.New()
	err := tree.ExportNode(fs, "missing", "/out", ExportOptions{})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("ExportNode missing: %v, want ErrNodeNotFound", err)
	}

	if err := tree.ExportNode(nil, "a.txt", "/out", ExportOptions{}); !errors.Is(err, ErrNilFilesystem) {
		t.Fatalf("nil filesystem: %v, want ErrNilFilesystem", err)
	}
}

func TestExportNode_WildcardFlat(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"A/LOG1.TXT":  "1",
		"B/LOG2.TXT":  "2",
		"B/IMAGE.TGA": "i",
	})

	fs := memfs.New()
	if err := tree.ExportNode(fs, "log", "/out", ExportOptions{MatchAll: true}); err != nil {
		t.Fatalf("ExportNode wildcard: %v", err)
	}

	got := collectFiles(t, fs, "/out")
	if len(got) != 2 {
		t.Fatalf("exported=%v, want 2 flat files", got)
	}

	// Wildcard matches land flat in the destination, no directories recreated.
	if got["LOG1.TXT"] != "1" || got["LOG2.TXT"] != "2" {
		t.Fatalf("exported=%v, want LOG1.TXT and LOG2.TXT", got)
	}
}

func TestExportNode_WildcardZeroMatches(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{"A.TXT": "a"})

	fs := memfs.New()
	if err := tree.ExportNode(fs, "nomatch", "/out", ExportOptions{MatchAll: true}); err != nil {
		t.Fatalf("ExportNode wildcard zero matches: %v", err)
	}

	if got := collectFiles(t, fs, "/out"); len(got) != 0 {
		t.Fatalf("exported=%v, want none", got)
	}
}

func TestExportNode_SanitizesOutputNames(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{"DIR/BAD:NAME.TXT": "v"})

	fs := memfs.New()
	if err := tree.ExportNode(fs, "bad:name.txt", "/out", ExportOptions{}); err != nil {
		t.Fatalf("ExportNode: %v", err)
	}

	got := collectFiles(t, fs, "/out")
	if got["BAD_NAME.TXT"] != "v" {
		t.Fatalf("exported=%v, want sanitized BAD_NAME.TXT", got)
	}
}

func TestExportAll(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"ANIMS/WALK.MAN":    "walk",
		"ANIMS/SUB/RUN.MAN": "run",
		"NOTES.TXT":         "notes",
	}
	tree := buildTestTree(t, files)

	fs := memfs.New()
	count, err := tree.ExportAll(fs, "/out", ExportOptions{})
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	if count != tree.FileCount() {
		t.Fatalf("count=%d, want cached FileCount %d", count, tree.FileCount())
	}

	got := collectFiles(t, fs, "/out")
	if len(got) != len(files) {
		t.Fatalf("exported=%v, want %d files", got, len(files))
	}

	for path, content := range files {
		if got[path] != content {
			t.Fatalf("exported[%s]=%q, want %q", path, got[path], content)
		}
	}
}

func TestExportAll_SelectionRules(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"NOTES.TXT":    "notes",
		"DIR/MORE.TXT": "more",
		"IMAGE.TGA":    "image",
	})

	fs := memfs.New()
	rules := []pathrules.Rule{{Action: pathrules.ActionInclude, Pattern: "*.txt"}}
	if _, err := tree.ExportAll(fs, "/out", ExportOptions{Rules: rules}); err != nil {
		t.Fatalf("ExportAll with rules: %v", err)
	}

	got := collectFiles(t, fs, "/out")
	if len(got) != 2 {
		t.Fatalf("exported=%v, want only txt files", got)
	}

	if got["NOTES.TXT"] != "notes" || got["DIR/MORE.TXT"] != "more" {
		t.Fatalf("exported=%v, want NOTES.TXT and DIR/MORE.TXT", got)
	}
}

func TestExportAll_OnFileDone(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, map[string]string{
		"A.TXT":     "aa",
		"DIR/B.TXT": "b",
	})

	var calls int
	var written int
	fs := memfs.New()
	_, err := tree.ExportAll(fs, "/out", ExportOptions{
		OnFileDone: func(name string, outputPath string, n int) {
			calls++
			written += n
		},
	})
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	if calls != 2 || written != 3 {
		t.Fatalf("calls=%d written=%d, want 2/3", calls, written)
	}
}

// Exporting a tree, re-inserting the export and exporting again must produce
// the same file set (modulo the merge-root directory of the second pass).
func TestExport_ReinsertRoundTrip(t *testing.T) {
	t.Parallel()

	fs := newHostFS(t, map[string]string{
		"/src/x.txt":     "x",
		"/src/sub/y.txt": "y",
	})

	first := NewTree()
	if _, err := first.InsertHostDir(fs, "/src", "", InsertOptions{}); err != nil {
		t.Fatalf("InsertHostDir: %v", err)
	}

	if _, err := first.ExportAll(fs, "/out1", ExportOptions{}); err != nil {
		t.Fatalf("ExportAll first: %v", err)
	}

	second := NewTree()
	if _, err := second.InsertHostDir(fs, "/out1", "", InsertOptions{}); err != nil {
		t.Fatalf("InsertHostDir re-insert: %v", err)
	}

	if _, err := second.ExportAll(fs, "/out2", ExportOptions{}); err != nil {
		t.Fatalf("ExportAll second: %v", err)
	}

	want := collectFiles(t, fs, "/out1")
	got := collectFiles(t, fs, "/out2/OUT1")
	if len(got) != len(want) {
		t.Fatalf("round trip=%v, want %v", got, want)
	}

	for path, content := range want {
		if got[path] != content {
			t.Fatalf("round trip[%s]=%q, want %q", path, got[path], content)
		}
	}
}
