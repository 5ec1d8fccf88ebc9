package ilist

import "iter"

// Nodes iterates the raw linkage nodes of the list anchored at h, front to
// back. The loop body must not remove the node it was handed: the next step
// is read from that node's live links after the body runs. Use SafeEntries
// when the body removes elements.
func (h *Node[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := h.next; n != h; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Entries iterates the host records of the list anchored at h, front to
// back. Same removal rules as Nodes.
func (h *Node[T]) Entries() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := h.next; n != h; n = n.next {
			if !yield(n.host) {
				return
			}
		}
	}
}

// SafeEntries iterates host records front to back, capturing the
// continuation pointer before handing out each record. The body may remove
// the record it was handed, or even free its memory; removing any other
// node during the same step is still unsafe.
func (h *Node[T]) SafeEntries() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		next := h.next
		for n := next; n != h; n = next {
			next = n.next
			if !yield(n.host) {
				return
			}
		}
	}
}

// ReverseEntries iterates host records back to front, removal-safe in the
// same way as SafeEntries.
func (h *Node[T]) ReverseEntries() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		prev := h.prev
		for n := prev; n != h; n = prev {
			prev = n.prev
			if !yield(n.host) {
				return
			}
		}
	}
}
