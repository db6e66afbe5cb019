package main

import (
	"github.com/pterm/pterm"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printfln("Looks like you've hit a bug in bintree: %v", r)
		}
	}()

	Execute()
}
