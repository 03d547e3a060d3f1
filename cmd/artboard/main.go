/*
Command artboard edits artboard projects from the command line.

Projects are kept in a store, either a directory of JSON/YAML files or an
SQLite database (selected by a store path ending in .db or .sqlite):

	artboard new "Landing page"
	artboard add-artboard <project> Desktop --width 1440 --height 900
	artboard add <project> <artboard> section
	artboard style <project> <artboard> <element> "padding: 24px" --breakpoint mobile
	artboard export <project> <artboard> --format html > page.html

Configuration is read with viper from a file given by --config; see package
editor for the recognized keys.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.cmd")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
