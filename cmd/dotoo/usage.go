package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/dotoo/internal/activity"
)

type UsageCmd struct{}

func (c *UsageCmd) Run(g *Globals) error {
	return printUsage(os.Stdout)
}

func printUsage(w io.Writer) error {
	fmt.Fprintln(w, "dotoo recommend <time-available> <how-far-ahead> <budget> <legs> <arms> [--day=<day>] [--month=<month>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "If how-far-ahead is today or tomorrow, day and month are worked out from the date and ignored if given.")
	fmt.Fprintln(w)
	for _, e := range activity.Enums() {
		fmt.Fprintln(w, e.Kind)
		for _, name := range e.Names {
			fmt.Fprintln(w, name)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
