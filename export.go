// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// exportWorkItem stores one pending directory with its destination-relative path.
type exportWorkItem struct {
	node   *Node
	relDir string
}

// ExportNode writes the node with the given name to destDir.
//
// Exact mode (default): a single global lookup selects the node; a directory
// is exported with its full relative structure recreated, a file is written
// directly under destDir. Fails with ErrNodeNotFound when no node matches.
//
// Wildcard mode (opts.MatchAll): every file anywhere in the tree whose name
// contains name (case-insensitive) is written flat into destDir; zero matches
// complete without error.
func (t *Tree) ExportNode(fs billy.Filesystem, name string, destDir string, opts ExportOptions) error {
	if fs == nil {
		return ErrNilFilesystem
	}

	opts.applyDefaults()

	if err := fs.MkdirAll(destDir, 0o750); err != nil {
		return fmt.Errorf("create output dir %s: %w", destDir, err)
	}

	if opts.MatchAll {
		return t.exportMatching(fs, name, destDir, opts)
	}

	node := t.Find(name)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	if node.dir {
		return exportSubtree(fs, node, destDir, opts, nil)
	}

	return writeExportFile(fs, node, destDir, "", opts)
}

// ExportAll writes the entire tree into destDir, recreating the directory
// structure, and returns the file count cached at mount time. Optional
// selection rules restrict exported files by archive-relative path.
func (t *Tree) ExportAll(fs billy.Filesystem, destDir string, opts ExportOptions) (int, error) {
	if fs == nil {
		return 0, ErrNilFilesystem
	}

	opts.applyDefaults()

	matcher, err := newExportMatcher(opts.Rules, opts.MatcherOptions)
	if err != nil {
		return 0, err
	}

	if err := fs.MkdirAll(destDir, 0o750); err != nil {
		return 0, fmt.Errorf("create output dir %s: %w", destDir, err)
	}

	if err := exportSubtree(fs, t.root, destDir, opts, matcher); err != nil {
		return 0, err
	}

	return t.fileCount, nil
}

// exportMatching writes every matching file flat into destDir (wildcard mode).
func (t *Tree) exportMatching(fs billy.Filesystem, filter string, destDir string, opts ExportOptions) error {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := node.children
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if child.dir {
				stack = append(stack, child)
				continue
			}

			if !nameContainsFold(child.name, filter) {
				continue
			}

			if err := writeExportFile(fs, child, destDir, "", opts); err != nil {
				return err
			}
		}
	}

	return nil
}

// exportSubtree writes every descendant file of start into destDir,
// recreating the relative directory structure with an explicit work stack.
func exportSubtree(fs billy.Filesystem, start *Node, destDir string, opts ExportOptions, matcher *exportMatcher) error {
	stack := []exportWorkItem{{node: start}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := item.node.children
		// Push directories reversed so pre-order pops in creation order.
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if !child.dir {
				continue
			}

			name, err := outputName(child.name, opts.RawNames)
			if err != nil {
				return err
			}

			relDir := joinRel(item.relDir, name)
			if err := fs.MkdirAll(fs.Join(destDir, relDir), 0o750); err != nil {
				return fmt.Errorf("create output directory %s: %w", relDir, err)
			}

			stack = append(stack, exportWorkItem{node: child, relDir: relDir})
		}

		for _, child := range children {
			if child.dir {
				continue
			}

			if !matcher.Match(joinRel(item.relDir, child.name)) {
				continue
			}

			if err := writeExportFile(fs, child, destDir, item.relDir, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeExportFile writes one file node under destDir/relDir.
func writeExportFile(fs billy.Filesystem, node *Node, destDir string, relDir string, opts ExportOptions) error {
	name, err := outputName(node.name, opts.RawNames)
	if err != nil {
		return err
	}

	outPath := fs.Join(destDir, relDir, name)
	if err := util.WriteFile(fs, outPath, node.data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	if opts.OnFileDone != nil {
		opts.OnFileDone(node.name, outPath, len(node.data))
	}

	return nil
}

// outputName returns the filesystem-safe output name for a node.
func outputName(name string, raw bool) (string, error) {
	if raw {
		return name, nil
	}

	sanitized, err := sanitizeNodeName(name)
	if err != nil {
		return "", fmt.Errorf("sanitize name %q: %w", name, err)
	}

	return sanitized, nil
}

// joinRel joins two relative path elements in slash form.
func joinRel(dir string, name string) string {
	if dir == "" {
		return name
	}

	return dir + "/" + name
}
