package cli

import "github.com/fatih/color"

var (
	success = color.New(color.FgGreen)
	fail    = color.New(color.FgRed)
	heading = color.New(color.FgCyan)
)
