// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"fmt"
	"io"
	"strings"
)

// Entry - one ship as seen by Dump
type Entry struct {
	ID     int `json:"id"`
	Height int `json:"height"`
}

// Dump - identifiers and heights in ascending identifier order
//
// this never changes the tree, even for Splay
func (fleet *Fleet) Dump() []Entry {
	entries := make([]Entry, 0, fleet.count)
	return dump(fleet.root, entries)
}

func dump(p *Ship, entries []Entry) []Entry {
	if nil == p {
		return entries
	}
	entries = dump(p.left, entries)
	entries = append(entries, Entry{ID: p.id, Height: p.height})
	return dump(p.right, entries)
}

// String - fully parenthesised in-order rendering
//
// each non-empty sub-tree is shown as: (left id:height right)
func (fleet *Fleet) String() string {
	var b strings.Builder
	render(&b, fleet.root)
	return b.String()
}

func render(b *strings.Builder, p *Ship) {
	if nil == p {
		return
	}
	b.WriteByte('(')
	render(b, p.left)
	fmt.Fprintf(b, "%d:%d", p.id, p.height)
	render(b, p.right)
	b.WriteByte(')')
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (fleet *Fleet) Print(w io.Writer) int {
	return printTree(w, fleet.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Ship, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d h:%d %s/%s\n", p.id, p.height, p.shipType, p.state)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
