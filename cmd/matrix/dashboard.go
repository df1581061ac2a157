package main

import (
	"fmt"
	"io"
	"strings"
)

// printDashboard lists every known entity, grouped by kind. This is the
// no-arguments view: a quick inventory of what the tokens can resolve to.
func printDashboard(w io.Writer, ds *datasets) {
	fmt.Fprintln(w, "MATRIX :: CONSOLE")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "UNIVERSOS")
	for _, u := range ds.Universes {
		printEntityRow(w, u.ID(), u.Name())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ESPAÇOS")
	for _, s := range ds.Spaces {
		printEntityRow(w, s.ID(), s.Name())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ATIVOS")
	for _, a := range ds.Assets {
		printEntityRow(w, a.ID(), a.FullName())
	}
	fmt.Fprintln(w)
}

// printEntityRow prints one aligned "id name" row, skipping records
// with neither.
func printEntityRow(w io.Writer, id, name string) {
	if id == "" && name == "" {
		return
	}
	fmt.Fprintln(w, strings.TrimRight(fmt.Sprintf("  %-6s %s", id, name), " "))
}
