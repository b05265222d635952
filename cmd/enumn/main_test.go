package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	message := "a.go:3:6: variant Circle with data is not supported\nno position"
	assert.Equal(t,
		"\033[1m\033[31ma.go:3:6:\033[0m variant Circle with data is not supported\nno position",
		colorize(message))
}
