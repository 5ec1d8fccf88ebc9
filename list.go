// An intrusive circular doubly-linked list.
//
// Unlike container/list, the linkage lives inside the element: a host record
// embeds a Node as one of its fields and can be linked, moved or removed in
// O(1) with zero allocation, starting from nothing but a pointer to the
// record itself. The list owns no memory; every node's storage belongs to
// its host record.
package ilist

// Node is the linkage for one element of an intrusive list. It is embedded
// as a field of a host record of type T. The same type anchors a list: a
// sentinel is a Node initialized with a nil host, and an empty list is a
// sentinel linked to itself.
//
// The zero value is not usable. Call Init first.
type Node[T any] struct {
	next *Node[T]
	prev *Node[T]
	host *T
}

// New returns an initialized sentinel ready to anchor a list.
func New[T any]() *Node[T] {
	h := new(Node[T])
	h.Init(nil)
	return h
}

// Init links n to itself and records the host record it is embedded in
// (nil for a sentinel). Init is always legal, including on a node whose
// links were poisoned by Remove, but re-initializing a node that is still
// linked corrupts the list it belongs to.
func (n *Node[T]) Init(host *T) {
	n.next = n
	n.prev = n
	n.host = host
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Host returns the record n is embedded in, nil for a sentinel.
func (n *Node[T]) Host() *T { return n.host }

// Empty returns true if the list anchored at h has no elements.
func (h *Node[T]) Empty() bool {
	return h.next == h
}

// Linked returns true if n is a member of a list. A node left stale by
// Replace still counts as linked until it is reinitialized.
func (n *Node[T]) Linked() bool {
	return n.next != nil && n.next != n
}

// Detached returns true if n is initialized and not a member of any list.
func (n *Node[T]) Detached() bool {
	return n.next == n
}

// Poisoned returns true if n was removed from a list and not reinitialized
// since. The zero value also reports true: an uninitialized node and a
// removed one are equally unusable.
func (n *Node[T]) Poisoned() bool {
	return n.next == nil && n.prev == nil
}

func (n *Node[T]) mustDetached() {
	if n.next == n {
		return
	}
	if n.next == nil {
		panic("ilist: node is uninitialized or was removed, call Init first")
	}
	panic("ilist: node is already linked")
}

func (n *Node[T]) mustLinked() {
	if n.next == nil {
		panic("ilist: node is uninitialized or was already removed")
	}
	if n.next == n {
		panic("ilist: node is not linked")
	}
}

// insert places n between two adjacent nodes of a cycle.
func insert[T any](n, prev, next *Node[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// PushFront inserts the detached node n as the first element of the list
// anchored at h.
func (h *Node[T]) PushFront(n *Node[T]) {
	n.mustDetached()
	insert(n, h, h.next)
}

// PushBack inserts the detached node n as the last element of the list
// anchored at h.
func (h *Node[T]) PushBack(n *Node[T]) {
	n.mustDetached()
	insert(n, h.prev, h)
}

// InsertAfter inserts the detached node n right after at, which must be a
// linked node or the sentinel.
func (at *Node[T]) InsertAfter(n *Node[T]) {
	n.mustDetached()
	insert(n, at, at.next)
}

// InsertBefore inserts the detached node n right before at, which must be a
// linked node or the sentinel.
func (at *Node[T]) InsertBefore(n *Node[T]) {
	n.mustDetached()
	insert(n, at.prev, at)
}

// Remove takes n out of its list and poisons both links to nil, so a
// traversal through the stale node faults immediately instead of walking
// into memory the list no longer owns. Removing the same node twice panics;
// reuse requires Init.
func (n *Node[T]) Remove() {
	n.mustLinked()
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// unlink detaches a linked node without poisoning, for moves that relink it
// immediately.
func (n *Node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Replace puts the detached node n in old's exact position. old's own links
// are left stale, still pointing at its former neighbors; call Init (or use
// ReplaceInit) before touching old again.
func (old *Node[T]) Replace(n *Node[T]) {
	old.mustLinked()
	n.mustDetached()
	n.next = old.next
	n.next.prev = n
	n.prev = old.prev
	n.prev.next = n
}

// ReplaceInit is Replace followed by relinking old to itself, leaving it
// detached and immediately reusable.
func (old *Node[T]) ReplaceInit(n *Node[T]) {
	old.Replace(n)
	old.next = old
	old.prev = old
}

// MoveToFront relinks the linked node n as the first element of the list
// anchored at h. n may come from a different list.
func (h *Node[T]) MoveToFront(n *Node[T]) {
	n.mustLinked()
	n.unlink()
	insert(n, h, h.next)
}

// MoveToBack relinks the linked node n as the last element of the list
// anchored at h. n may come from a different list.
func (h *Node[T]) MoveToBack(n *Node[T]) {
	n.mustLinked()
	n.unlink()
	insert(n, h.prev, h)
}

// SpliceBack moves every element of the list anchored at other to the end
// of the list anchored at h, leaving other empty.
func (h *Node[T]) SpliceBack(other *Node[T]) {
	if other.Empty() {
		return
	}
	first := other.next
	last := other.prev
	first.prev = h.prev
	h.prev.next = first
	last.next = h
	h.prev = last
	other.next = other
	other.prev = other
}

// Front returns the host of the first element, nil if the list is empty.
func (h *Node[T]) Front() *T {
	if h.next == h {
		return nil
	}
	return h.next.host
}

// Back returns the host of the last element, nil if the list is empty.
func (h *Node[T]) Back() *T {
	if h.prev == h {
		return nil
	}
	return h.prev.host
}

// Len counts the elements of the list anchored at h. The list stores no
// length, so this walks the whole cycle.
func (h *Node[T]) Len() int {
	count := 0
	for n := h.next; n != h; n = n.next {
		count++
	}
	return count
}
