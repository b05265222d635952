package main

import (
	"fmt"

	"example.com/Union/events"
)

type level int8

func show(v events.Event, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%T", v)
}

func main() {
	fmt.Println(
		show(events.EventN(0)),
		show(events.EventN(int8(10))),
		show(events.EventN(uint32(11))),
		show(events.EventN(level(1))),
		show(events.EventN(-1)),
	)
}
