// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"fmt"
	"strings"
)

// Remove detaches nodes matching name from the subtree under start (root when
// nil) and returns how many nodes were removed.
//
// Exact mode (default): requires at least one node with that name anywhere in
// the tree (ErrNodeNotFound otherwise), then removes every directory or file
// child equal to name (case-insensitive) found while walking; matched
// directories are detached whole without descending into them. The walk
// continues into all other directories, so disjoint same-named matches across
// the tree are all removed in one call.
//
// Wildcard mode (opts.MatchAll): always descends and removes every file child
// whose name contains name (case-insensitive); directories are never removed
// by substring match.
func (t *Tree) Remove(name string, start *Node, opts RemoveOptions) (int, error) {
	if start == nil {
		start = t.root
	}

	if !opts.MatchAll && t.Find(name) == nil {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	removed := 0
	stack := []*Node{start}
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Children() copies, so detaching while walking stays safe.
		for _, child := range parent.Children() {
			if opts.MatchAll {
				if child.dir {
					stack = append(stack, child)
					continue
				}

				if nameContainsFold(child.name, name) && parent.Remove(child.name) {
					removed++
				}

				continue
			}

			if strings.EqualFold(child.name, name) {
				if parent.Remove(child.name) {
					removed++
				}

				continue
			}

			if child.dir {
				stack = append(stack, child)
			}
		}
	}

	return removed, nil
}
