package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
title=sum of calibration values
want=142

1abc2
treb7uchet
*/`,
			want: sample{
				title: "sum of calibration values",
				want:  "142",
				input: `1abc2
treb7uchet
`,
			},
		},
		{
			comment: `// want=281`,
			want: sample{
				want: "281",
			},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if !ok {
			t.Errorf("parseSample(%q) found no sample", tt.comment)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(sample{})); diff != "" {
			t.Errorf("parseSample(%q) mismatch (-want +got):\n%s", tt.comment, diff)
		}
	}
}

func TestParseSampleNone(t *testing.T) {
	if got, ok := parseSample("// D1p1 solves part one."); ok {
		t.Errorf("parseSample found %+v in a plain comment", got)
	}
}

const solverSrc = `package main

/*
title=first
want=3

a
b
*/
func (s solver) D1p1() any { return nil }

// want=4
func (s solver) D1p2() any { return nil }

func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solverSrc))
	want := map[string]sample{
		"D1p1": {title: "first", want: "3", input: "a\nb\n"},
		"D1p2": {want: "4", input: "a\nb\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p2() any { return 2 }
func (s testSolver) D2p1() any { return 1 }
func (s testSolver) D10p1() any { return 10 }
func (s testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days; want 2", len(days))
	}
	var parts []string
	for _, ps := range days[2].parts {
		parts = append(parts, ps.Name)
	}
	if diff := cmp.Diff([]string{"D2p1", "D2p2"}, parts); diff != "" {
		t.Errorf("day 2 parts mismatch (-want +got):\n%s", diff)
	}
	if got := days[10].parts[0].fn(); got != 10 {
		t.Errorf("D10p1() = %v; want 10", got)
	}
}

func TestAnswer(t *testing.T) {
	ps := partSolver{Part: "1", Name: "D1p1"}
	if got, want := answer(ps, "sum of calibration values", 142), "The sum of calibration values is 142"; got != want {
		t.Errorf("answer = %q; want %q", got, want)
	}
	if got, want := answer(ps, "", 142), "part 1: 142"; got != want {
		t.Errorf("answer = %q; want %q", got, want)
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input")
	if err := os.WriteFile(path, []byte("1abc2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPuzzle(path)
	if err := p.LoadInput(); err != nil {
		t.Fatal(err)
	}
	if got := string(p.Input()); got != "1abc2\n" {
		t.Errorf("Input() = %q", got)
	}

	missing := NewPuzzle(filepath.Join(dir, "nope"))
	if err := missing.LoadInput(); !os.IsNotExist(err) {
		t.Errorf("LoadInput on missing file = %v; want not-exist error", err)
	}
}

func TestSampleInput(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {want: "1", input: "x\n\ny\n"}},
	}
	if got := string(p.Input()); got != "x\n\ny\n" {
		t.Errorf("Input() in sample mode = %q", got)
	}
	p.SampleMode = false
	p.inputPath = filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(p.inputPath, []byte("real\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := string(p.Input()); got != "real\n" {
		t.Errorf("Input() outside sample mode = %q", got)
	}
}

func TestParsed(t *testing.T) {
	parsed.Purge()
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "parsed-once\n"}},
	}
	calls := 0
	count := func(s string) int {
		calls++
		return len(s)
	}
	for i := 0; i < 3; i++ {
		if got := Parsed(p, count); got != len("parsed-once\n") {
			t.Fatalf("Parsed = %d", got)
		}
	}
	if calls != 1 {
		t.Errorf("parse ran %d times; want 1", calls)
	}

	p.samples["D1p1"] = sample{input: "different\n"}
	if got := Parsed(p, count); got != len("different\n") || calls != 2 {
		t.Errorf("Parsed on new input = %d after %d calls; want %d after 2", got, calls, len("different\n"))
	}
}

func parseLen(s string) int   { return len(s) }
func parseLines(s string) int { return len(Records(s)) }

func TestParsedKeysByFunction(t *testing.T) {
	parsed.Purge()
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "a\nb\nc\n"}},
	}
	if got := Parsed(p, parseLen); got != 6 {
		t.Errorf("Parsed(parseLen) = %d; want 6", got)
	}
	if got := Parsed(p, parseLines); got != 3 {
		t.Errorf("Parsed(parseLines) = %d; want 3", got)
	}
	if got := Parsed(p, parseLen); got != 6 {
		t.Errorf("Parsed(parseLen) after parseLines = %d; want 6", got)
	}
}
