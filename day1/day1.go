package main

import (
	_ "embed"
	"flag"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/calibration"
)

var flagMatcher = flag.String("matcher", "scan", "how spelled-out digits are found: scan or automaton")

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed day1.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// summer returns the fold for the selected -matcher. Each strategy has its own
// function so that their results are cached separately.
func summer() func(string) calibration.Totals {
	switch *flagMatcher {
	case "scan":
		return sumScan
	case "automaton":
		return sumAutomaton
	}
	aoc.Logger().Fatalf("unknown -matcher %q; want scan or automaton", *flagMatcher)
	return nil
}

func sumScan(text string) calibration.Totals {
	return sum(text, calibration.Scan)
}

func sumAutomaton(text string) calibration.Totals {
	return sum(text, calibration.Automaton())
}

// sum folds the whole document once; both parts read from the result.
func sum(text string, corrected calibration.Strategy) calibration.Totals {
	aoc.Logger().Debugw("summing calibration document", "matcher", *flagMatcher)
	return calibration.SumWith(text, func(line string) int {
		v := corrected(line)
		aoc.Logger().Debugw("record", "line", line, "corrected", v)
		return v
	})
}

/*
title=sum of calibration values
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.Parsed(s.Puzzle, summer()).Calibration
}

/*
title=sum of corrected values
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.Parsed(s.Puzzle, summer()).Corrected
}
