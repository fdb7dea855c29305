// Package bintree implements an unbalanced binary search tree ordered by a
// caller-supplied comparator. There is no rebalancing, so lookups degrade to
// O(n) under skewed insertion order, and there is no duplicate detection:
// callers are responsible for guaranteeing key uniqueness before inserting.
// Every call against one tree must use the same comparator, otherwise the
// ordering of List is undefined.
package bintree

// CompareFunc reports the ordering of a relative to b: negative when a sorts
// before b, zero when the two are equal under the key, positive otherwise.
type CompareFunc[T any] func(a, b T) int

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree. The zero value is an empty tree.
type Tree[T any] struct {
	root *node[T]
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert places value into the tree, descending left when the comparator
// reports it smaller than the current node and right otherwise.
func (t *Tree[T]) Insert(value T, compare CompareFunc[T]) {
	n := &node[T]{value: value}
	if t.root == nil {
		t.root = n
		return
	}
	insertNode(t.root, n, compare)
}

func insertNode[T any](current, n *node[T], compare CompareFunc[T]) {
	if compare(n.value, current.value) < 0 {
		if current.left == nil {
			current.left = n
			return
		}
		insertNode(current.left, n, compare)
		return
	}
	if current.right == nil {
		current.right = n
		return
	}
	insertNode(current.right, n, compare)
}

// Search descends the tree looking for a value equal to probe under the
// comparator. It returns the stored value and true on an exact match, or the
// zero value and false when a nil child is reached.
func (t *Tree[T]) Search(probe T, compare CompareFunc[T]) (T, bool) {
	return searchNode(t.root, probe, compare)
}

func searchNode[T any](current *node[T], probe T, compare CompareFunc[T]) (T, bool) {
	if current == nil {
		var zero T
		return zero, false
	}
	switch c := compare(probe, current.value); {
	case c == 0:
		return current.value, true
	case c < 0:
		return searchNode(current.left, probe, compare)
	default:
		return searchNode(current.right, probe, compare)
	}
}

// List returns every stored value via in-order traversal, sorted by the
// comparator used at insertion time.
func (t *Tree[T]) List() []T {
	result := []T{}
	inOrder(t.root, &result)
	return result
}

func inOrder[T any](current *node[T], result *[]T) {
	if current == nil {
		return
	}
	inOrder(current.left, result)
	*result = append(*result, current.value)
	inOrder(current.right, result)
}
