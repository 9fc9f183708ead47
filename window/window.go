// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     window.go
//
// =============================================================================

// Package window implements the binary split tree of viewports
// : geometry derivation, split/close/resize/equalize, focus
// traversal and viewport scrolling. Nodes live in an arena addressed by
// index, not by pointer, so a parent
// back-reference is a plain int and deleting a node is a freelist push
// rather than a graph rewrite.
package window

import (
	"errors"

	"github.com/Release-Candidate/go-modal-editor/buffer"
)

// Orientation is a Split node's split axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Rect is a node's on-screen geometry in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// ErrLastLeaf is returned by Close when asked to close the tree's only leaf.
var ErrLastLeaf = errors.New("window: cannot close the last leaf")

// ErrNotFound is returned when an index does not name a live node.
var ErrNotFound = errors.New("window: no such node")

const noParent = -1

type kind int

const (
	leafKind kind = iota
	splitKind
)

// node is a tagged union: the leaf fields are meaningful only when
// kind == leafKind, the split fields only when kind == splitKind.
type node struct {
	kind   kind
	parent int
	rect   Rect

	// leaf fields
	buf            *buffer.Buffer
	topLine        int
	leftCol        int
	cursor         int
	visualAnchor   *int
	incsearchMatch *[2]int

	// split fields
	orientation Orientation
	first       int
	second      int
	ratio       float64
}

// Tree is an arena of window nodes with exactly one focused leaf.
type Tree struct {
	nodes []node
	free  []int
	root  int
	focus int
}

// New creates a tree with a single leaf viewing buf, sized w×h.
func New(buf *buffer.Buffer, w, h int) *Tree {
	t := &Tree{}
	idx := t.alloc(node{kind: leafKind, parent: noParent, buf: buf, rect: Rect{0, 0, w, h}})
	t.root = idx
	t.focus = idx

	return t
}

func (t *Tree) alloc(n node) int {
	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[idx] = n

		return idx
	}

	t.nodes = append(t.nodes, n)

	return len(t.nodes) - 1
}

func (t *Tree) free_(idx int) {
	t.nodes[idx] = node{}
	t.free = append(t.free, idx)
}

func (t *Tree) live(idx int) bool {
	if idx < 0 || idx >= len(t.nodes) {
		return false
	}

	for _, f := range t.free {
		if f == idx {
			return false
		}
	}

	return true
}

// Focus returns the currently focused leaf's index.
func (t *Tree) Focus() int { return t.focus }

// Root returns the tree's root node index.
func (t *Tree) Root() int { return t.root }

// IsLeaf reports whether idx names a leaf.
func (t *Tree) IsLeaf(idx int) bool { return t.live(idx) && t.nodes[idx].kind == leafKind }

// Rect returns idx's current geometry.
func (t *Tree) Rect(idx int) Rect { return t.nodes[idx].rect }

// Buffer returns the buffer a leaf displays.
func (t *Tree) Buffer(idx int) *buffer.Buffer { return t.nodes[idx].buf }

// SetFocus moves focus to a leaf directly, used when closing windows or
// opening a new buffer in the current one.
func (t *Tree) SetFocus(idx int) {
	if t.IsLeaf(idx) {
		t.focus = idx
	}
}

// SetBuffer replaces the buffer a leaf displays and resets its viewport
// and cursor, used by :e to open a different file in the current window.
func (t *Tree) SetBuffer(idx int, buf *buffer.Buffer) {
	if !t.IsLeaf(idx) {
		return
	}

	n := &t.nodes[idx]
	n.buf = buf
	n.topLine = 0
	n.leftCol = 0
	n.cursor = 0
	n.visualAnchor = nil
	n.incsearchMatch = nil
}

// Cursor returns and sets a leaf's cursor position and scroll origin.
func (t *Tree) Cursor(idx int) int           { return t.nodes[idx].cursor }
func (t *Tree) SetCursor(idx int, pos int)   { t.nodes[idx].cursor = pos }
func (t *Tree) TopLine(idx int) int          { return t.nodes[idx].topLine }
func (t *Tree) LeftCol(idx int) int          { return t.nodes[idx].leftCol }

// VisualAnchor returns the leaf's visual-mode anchor, if one is set.
func (t *Tree) VisualAnchor(idx int) (int, bool) {
	a := t.nodes[idx].visualAnchor
	if a == nil {
		return 0, false
	}

	return *a, true
}

// SetVisualAnchor records the anchor cursor position on entering Visual
// mode; ClearVisualAnchor drops it on Escape or after the operator runs.
func (t *Tree) SetVisualAnchor(idx int, pos int) {
	p := pos
	t.nodes[idx].visualAnchor = &p
}

func (t *Tree) ClearVisualAnchor(idx int) { t.nodes[idx].visualAnchor = nil }

// Leaves appends, in left-to-right / top-to-bottom document order, every
// leaf index under idx.
func (t *Tree) Leaves(idx int) []int {
	n := &t.nodes[idx]
	if n.kind == leafKind {
		return []int{idx}
	}

	out := t.Leaves(n.first)

	return append(out, t.Leaves(n.second)...)
}

// Split replaces the leaf at idx with an internal node whose first child
// is the old leaf and whose second child is a fresh leaf sharing the same
// buffer.
func (t *Tree) Split(idx int, orientation Orientation) (int, error) {
	if !t.IsLeaf(idx) {
		return 0, ErrNotFound
	}

	old := t.nodes[idx]

	firstIdx := t.alloc(old)
	secondIdx := t.alloc(node{kind: leafKind, buf: old.buf, cursor: old.cursor})

	t.nodes[idx] = node{
		kind:        splitKind,
		parent:      old.parent,
		rect:        old.rect,
		orientation: orientation,
		first:       firstIdx,
		second:      secondIdx,
		ratio:       0.5,
	}
	t.nodes[firstIdx].parent = idx
	t.nodes[secondIdx].parent = idx

	t.recomputeGeometry(idx)
	t.focus = secondIdx

	return secondIdx, nil
}

// Close removes leaf idx; its sibling takes the parent's place in the
// grandparent. Returns the index of the leaf that should receive focus
// next (the sibling subtree's deepest first-child leaf).
func (t *Tree) Close(idx int) (int, error) {
	if !t.IsLeaf(idx) {
		return 0, ErrNotFound
	}

	parentIdx := t.nodes[idx].parent
	if parentIdx == noParent {
		return 0, ErrLastLeaf
	}

	parent := t.nodes[parentIdx]

	var siblingIdx int
	if parent.first == idx {
		siblingIdx = parent.second
	} else {
		siblingIdx = parent.first
	}

	grandparentIdx := parent.parent

	t.nodes[siblingIdx].parent = grandparentIdx

	if grandparentIdx == noParent {
		t.root = siblingIdx
		t.nodes[siblingIdx].rect = parent.rect
	} else {
		gp := &t.nodes[grandparentIdx]
		if gp.first == parentIdx {
			gp.first = siblingIdx
		} else {
			gp.second = siblingIdx
		}
	}

	t.free_(idx)
	t.free_(parentIdx)
	t.recomputeGeometry(t.root)

	next := t.firstLeaf(siblingIdx)
	t.focus = next

	return next, nil
}

func (t *Tree) firstLeaf(idx int) int {
	for t.nodes[idx].kind == splitKind {
		idx = t.nodes[idx].first
	}

	return idx
}

// Resize walks up from leaf idx adjusting the nearest ancestor whose
// orientation matches the requested delta so the leaf's side changes by
// roughly dw/dh cells, clamped to keep both children at least one cell.
func (t *Tree) Resize(idx int, dw, dh int) {
	if dw != 0 {
		t.resizeAxis(idx, Vertical, dw)
	}

	if dh != 0 {
		t.resizeAxis(idx, Horizontal, dh)
	}
}

func (t *Tree) resizeAxis(idx int, axis Orientation, delta int) {
	child := idx
	parent := t.nodes[idx].parent

	for parent != noParent {
		p := &t.nodes[parent]
		if p.orientation == axis {
			var size, childSize int
			if axis == Vertical {
				size = p.rect.W
			} else {
				size = p.rect.H
			}

			if p.first == child {
				childSize = int(p.ratio*float64(size)) + delta
			} else {
				childSize = size - int(p.ratio*float64(size)) - delta
			}

			if childSize < 1 {
				childSize = 1
			}

			if childSize > size-1 {
				childSize = size - 1
			}

			if p.first == child {
				p.ratio = float64(childSize) / float64(size)
			} else {
				p.ratio = 1 - float64(childSize)/float64(size)
			}

			t.recomputeGeometry(parent)

			return
		}

		child = parent
		parent = t.nodes[parent].parent
	}
}

// Equalize resets every split ratio along the given axis in the whole
// tree, from the root down, to 0.5.
func (t *Tree) Equalize(orientation Orientation) {
	t.equalizeNode(t.root, orientation)
}

func (t *Tree) equalizeNode(idx int, orientation Orientation) {
	n := &t.nodes[idx]
	if n.kind != splitKind {
		return
	}

	if n.orientation == orientation {
		n.ratio = 0.5
	}

	t.equalizeNode(n.first, orientation)
	t.equalizeNode(n.second, orientation)
	t.recomputeGeometry(t.root)
}

// recomputeGeometry recomputes rect for idx and every descendant from
// idx's own (already-current) rect.
func (t *Tree) recomputeGeometry(idx int) {
	n := &t.nodes[idx]
	if n.kind == leafKind {
		return
	}

	rect := n.rect

	var firstRect, secondRect Rect
	if n.orientation == Vertical {
		firstW := int(n.ratio * float64(rect.W))
		firstRect = Rect{rect.X, rect.Y, firstW, rect.H}
		secondRect = Rect{rect.X + firstW, rect.Y, rect.W - firstW, rect.H}
	} else {
		firstH := int(n.ratio * float64(rect.H))
		firstRect = Rect{rect.X, rect.Y, rect.W, firstH}
		secondRect = Rect{rect.X, rect.Y + firstH, rect.W, rect.H - firstH}
	}

	t.nodes[n.first].rect = firstRect
	t.nodes[n.second].rect = secondRect
	t.recomputeGeometry(n.first)
	t.recomputeGeometry(n.second)
}

// SetRootSize sets the root geometry after a terminal resize and
// recomputes the whole tree.
func (t *Tree) SetRootSize(w, h int) {
	t.nodes[t.root].rect = Rect{0, 0, w, h}
	t.recomputeGeometry(t.root)
}

// FocusLeft/Right/Up/Down implement traversal: walk up
// until an ancestor split on the relevant axis has the current subtree on
// the near side, then descend into the far side choosing the
// leftmost/first leaf. Returns false at tree boundaries, leaving focus
// unchanged.
func (t *Tree) FocusRight(idx int) (int, bool) { return t.focusDir(idx, Vertical, true) }
func (t *Tree) FocusLeft(idx int) (int, bool)  { return t.focusDir(idx, Vertical, false) }
func (t *Tree) FocusDown(idx int) (int, bool)  { return t.focusDir(idx, Horizontal, true) }
func (t *Tree) FocusUp(idx int) (int, bool)    { return t.focusDir(idx, Horizontal, false) }

func (t *Tree) focusDir(idx int, axis Orientation, forward bool) (int, bool) {
	child := idx
	parent := t.nodes[idx].parent

	for parent != noParent {
		p := &t.nodes[parent]
		if p.orientation == axis {
			isFirst := p.first == child
			if forward && isFirst {
				target := t.firstLeaf(p.second)
				t.focus = target

				return target, true
			}

			if !forward && !isFirst {
				target := t.firstLeaf(p.first)
				t.focus = target

				return target, true
			}
		}

		child = parent
		parent = t.nodes[parent].parent
	}

	return idx, false
}
