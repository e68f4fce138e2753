// Package calibration recovers trebuchet calibration values from the lines
// of an amended calibration document.
//
// Every line yields a two-digit value: its first digit followed by its last.
// DigitsOnly only looks at digit characters. DigitsAndWords also accepts the
// spelled-out digits "one" through "nine", which may share letters with their
// neighbors ("eightwo" holds both an eight and a two).
package calibration

import (
	"strings"

	"github.com/maisem/aoc2023"
)

// Token is a substring that stands for a single digit.
type Token struct {
	Text  string
	Value int
}

// Tokens are the substrings DigitsAndWords looks for. There is no "zero"
// word.
var Tokens = []Token{
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
	{"0", 0},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
	{"6", 6},
	{"7", 7},
	{"8", 8},
	{"9", 9},
}

// Strategy computes the calibration value of a single line.
type Strategy func(line string) int

// value combines the first and last digit of a line.
func value(first, last int) int {
	return 10*first + last
}

// DigitsOnly returns the calibration value of line using only its digit
// characters. A single digit is used for both places, and a line without
// digits is worth 0.
func DigitsOnly(line string) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if !aoc.IsDigit(line[i]) {
			continue
		}
		d := aoc.Digit(line[i])
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0
	}
	return value(first, last)
}

// DigitsAndWords returns the calibration value of line, counting both digit
// characters and spelled-out digits. A line without any is worth 0.
func DigitsAndWords(line string) int {
	first, last, ok := FirstLast(line)
	if !ok {
		return 0
	}
	return value(first.Value, last.Value)
}

// FirstLast returns the token that starts earliest in line and the token
// that starts latest. Occurrences may overlap. ok is false if line holds no
// token at all.
func FirstLast(line string) (first, last Match, ok bool) {
	first.Pos, last.Pos = len(line), -1
	for _, t := range Tokens {
		i := strings.Index(line, t.Text)
		if i == -1 {
			continue
		}
		if i < first.Pos {
			first = Match{Pos: i, Token: t}
		}
		// Present at i, so LastIndex is never -1 here.
		if j := strings.LastIndex(line, t.Text); j > last.Pos {
			last = Match{Pos: j, Token: t}
		}
	}
	return first, last, last.Pos != -1
}

// Scan is DigitsAndWords as a Strategy.
var Scan Strategy = DigitsAndWords
