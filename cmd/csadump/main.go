package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Arborescent/shogi-kifu/pkg/csa"
)

func main() {
	canonical := flag.Bool("canonical", false, "re-emit the record in canonical form instead of a summary")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: csadump [-canonical] <file.csa>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	rec, err := csa.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", path, err)
		os.Exit(1)
	}

	if *canonical {
		fmt.Print(rec)
		return
	}

	fmt.Printf("dialect: %s\n", rec.Version)
	if rec.BlackPlayer != "" {
		fmt.Printf("black: %s\n", rec.BlackPlayer)
	}
	if rec.WhitePlayer != "" {
		fmt.Printf("white: %s\n", rec.WhitePlayer)
	}
	if rec.Event != "" {
		fmt.Printf("event: %s\n", rec.Event)
	}
	if rec.Site != "" {
		fmt.Printf("site: %s\n", rec.Site)
	}
	if rec.StartTime != nil {
		fmt.Printf("start: %s\n", rec.StartTime)
	}
	if rec.EndTime != nil {
		fmt.Printf("end: %s\n", rec.EndTime)
	}
	if rec.TimeLimit != nil {
		fmt.Printf("time limit: %s\n", rec.TimeLimit)
	}

	moves := 0
	ending := ""
	for _, mv := range rec.Moves {
		if mv.Action.Kind == csa.ActionMove {
			moves++
		} else {
			ending = mv.Action.EventToken()
		}
	}
	fmt.Printf("moves: %d\n", moves)
	if ending != "" {
		fmt.Printf("ending: %s\n", ending)
	}
}
