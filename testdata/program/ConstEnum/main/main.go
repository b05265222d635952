package main

import (
	"fmt"

	"example.com/ConstEnum/enums"
)

func show(v any, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

func main() {
	fmt.Println(show(enums.StatusN(1)), show(enums.StatusN(2)), show(enums.StatusN(10)), show(enums.StatusN(3)), show(enums.StatusN(0)))
	fmt.Println(show(enums.CodeN(1)), show(enums.CodeN(44)), show(enums.CodeN(45)), show(enums.CodeN(255)))
}
