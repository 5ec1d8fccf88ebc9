package main

import (
	"fmt"

	"github.com/karlseguin/ilist"
)

type job struct {
	name string
	node ilist.Node[job]
}

func main() {
	pending := ilist.New[job]()
	for _, name := range []string{"resize", "encode", "upload"} {
		j := &job{name: name}
		j.node.Init(j)
		pending.PushBack(&j.node)
	}

	// bump the last job to the front of the queue
	last := pending.Back()
	pending.MoveToFront(&last.node)

	for j := range pending.SafeEntries() {
		fmt.Println("running", j.name)
		j.node.Remove()
	}
	fmt.Println("empty:", pending.Empty())
}
