package ilist

import (
	"testing"

	"github.com/karlseguin/ilist/assert"
)

func Test_Nodes(t *testing.T) {
	h, a, b, c := buildList(1, 2, 3)

	hosts := make([]*task, 0, 3)
	for n := range h.Nodes() {
		hosts = append(hosts, n.Host())
	}
	assert.Equal(t, len(hosts), 3)
	assert.True(t, hosts[0] == a)
	assert.True(t, hosts[1] == b)
	assert.True(t, hosts[2] == c)
}

func Test_Nodes_Break(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	visited := 0
	for n := range h.Nodes() {
		visited++
		if n.Host().id == 2 {
			break
		}
	}
	assert.Equal(t, visited, 2)
}

func Test_Entries_Empty(t *testing.T) {
	h := New[task]()
	for range h.Entries() {
		t.Fatal("iterated an empty list")
	}
	for range h.SafeEntries() {
		t.Fatal("iterated an empty list")
	}
	for range h.ReverseEntries() {
		t.Fatal("iterated an empty list")
	}
}

func Test_Entries_Order(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	ids := make([]int, 0, 3)
	for tk := range h.Entries() {
		ids = append(ids, tk.id)
	}
	assert.List(t, ids, []int{1, 2, 3})
}

func Test_Entries_RemoveAhead(t *testing.T) {
	h, _, b, c := buildList(1, 2, 3)

	// removing a node ahead of the cursor is fine in the plain form
	ids := make([]int, 0, 2)
	for tk := range h.Entries() {
		if tk.id == 1 {
			c.node.Remove()
		}
		ids = append(ids, tk.id)
	}
	assert.List(t, ids, []int{1, 2})
	assert.True(t, b.node.Linked())
	assertList(t, h, 1, 2)
}

func Test_SafeEntries_RemoveEachVisited(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	ids := make([]int, 0, 3)
	for tk := range h.SafeEntries() {
		ids = append(ids, tk.id)
		tk.node.Remove()
	}
	assert.List(t, ids, []int{1, 2, 3})
	assert.True(t, h.Empty())
	assertList(t, h)
}

func Test_SafeEntries_Break(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	for tk := range h.SafeEntries() {
		tk.node.Remove()
		break
	}
	assertList(t, h, 2, 3)
}

func Test_ReverseEntries(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	ids := make([]int, 0, 3)
	for tk := range h.ReverseEntries() {
		ids = append(ids, tk.id)
	}
	assert.List(t, ids, []int{3, 2, 1})
}

func Test_ReverseEntries_RemoveEachVisited(t *testing.T) {
	h, _, _, _ := buildList(1, 2, 3)

	for tk := range h.ReverseEntries() {
		tk.node.Remove()
	}
	assert.True(t, h.Empty())
}
