package catalog

import "iter"

// Tree is an unbalanced binary search tree keyed by normalized course
// number, ordered lexicographically. The zero value is an empty tree.
//
// There is no rebalancing: inserting already-sorted input degrades lookup
// and insert to linear depth. That is an accepted property for catalog-sized
// data, not a bug.
//
// Tree exclusively owns its nodes; records are copied in and out by value.
type Tree struct {
	root *node
	size int
}

type node struct {
	course Course
	left   *node
	right  *node
}

// InsertOrUpdate stores c under its course number. If the key already
// exists, the node keeps its position and only the title and prerequisite
// list are replaced, so the tree's shape never changes on re-insertion.
func (t *Tree) InsertOrUpdate(c Course) {
	slot := &t.root
	for *slot != nil {
		n := *slot
		switch {
		case c.Number < n.course.Number:
			slot = &n.left
		case c.Number > n.course.Number:
			slot = &n.right
		default:
			n.course.Title = c.Title
			n.course.Prerequisites = c.Prerequisites
			return
		}
	}
	*slot = &node{course: c}
	t.size++
}

// Find returns the course stored under number, if any. It never mutates the
// tree.
func (t *Tree) Find(number string) (Course, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case number == cur.course.Number:
			return cur.course, true
		case number < cur.course.Number:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return Course{}, false
}

// All returns an in-order iterator over every course, ascending by course
// number. The sequence is lazy and restartable: each range starts a fresh
// walk, and no iteration state is shared between calls.
func (t *Tree) All() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder(n *node, yield func(Course) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, yield) {
		return false
	}
	if !yield(n.course) {
		return false
	}
	return inOrder(n.right, yield)
}

// Clear discards all nodes and resets the size to zero.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// Len returns the number of distinct course numbers currently stored.
func (t *Tree) Len() int {
	return t.size
}
