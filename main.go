package main

import (
	"fmt"

	"github.com/heathj/delegate/dom"
	"github.com/heathj/delegate/router"
)

func main() {
	list := dom.NewElement(nil, "ul")
	item := list.AppendChild(dom.NewElement(nil, "li"))

	r, err := router.New(list)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	r.Register(router.TagIs("li"), func(n *dom.Node, e *dom.Event) {
		fmt.Printf("%s %s at %d\n", e.Type(), n.NodeName, e.TimeStamp())
	})

	item.DispatchEvent(dom.NewEvent("click"))
}
