package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

var successStyle = text.FgCyan

// styled applies a color when stdout is a terminal, plain text otherwise.
func styled(color text.Color, message string) string {
	if !stdoutIsTerminal() {
		return message
	}
	return color.Sprint(message)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
