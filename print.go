// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"sort"

	"github.com/disiqueira/gotree/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printWorkItem stores one pending directory with its rendered branch.
type printWorkItem struct {
	node   *Node
	branch gotree.Tree
}

// Render produces the indented tree view of the subtree under root.
// Children are ordered directories-first, then by name; directory names are
// bracket-wrapped and every display name is title-cased for presentation
// only. Read-only.
func Render(root *Node, label string) string {
	tree := gotree.New(label)
	if root == nil {
		return tree.Print()
	}

	caser := cases.Title(language.Und)

	stack := []printWorkItem{{node: root, branch: tree}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range sortedForDisplay(item.node.children) {
			display := caser.String(child.name)
			if !child.dir {
				item.branch.Add(display)
				continue
			}

			// Branch contents are attached when the child is popped; gotree
			// keeps sibling order from Add, so stack order stays irrelevant.
			sub := item.branch.Add("[" + display + "]")
			stack = append(stack, printWorkItem{node: child, branch: sub})
		}
	}

	return tree.Print()
}

// sortedForDisplay returns children ordered directories-first, then by name.
func sortedForDisplay(children []*Node) []*Node {
	out := make([]*Node, len(children))
	copy(out, children)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].dir != out[j].dir {
			return out[i].dir
		}

		return out[i].name < out[j].name
	})

	return out
}
