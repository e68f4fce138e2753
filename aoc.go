// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/exp/maps"
)

type sample struct {
	title string
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*(?:title=([^\n]*)\n\s*)?want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			title: strings.TrimSpace(m[1]),
			want:  strings.TrimSpace(m[2]),
			input: m[3],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		logger().Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	// inputPath is where the real input is read from.
	inputPath string
	input     []byte

	solver  partSolver
	samples map[string]sample
}

// NewPuzzle returns a Puzzle that reads its real input from path.
// It is mostly useful for driving solvers from tests.
func NewPuzzle(path string) *Puzzle {
	return &Puzzle{inputPath: path}
}

// LoadInput reads the real input from disk. It is a no-op once the input has
// been loaded.
func (p *Puzzle) LoadInput() error {
	if p.input != nil {
		return nil
	}
	b, err := os.ReadFile(p.inputPath)
	if err != nil {
		return err
	}
	logger().Debugw("loaded input", "path", p.inputPath, "size", humanize.Bytes(uint64(len(b))))
	p.input = b
	return nil
}

// Input returns the input for the part being solved: the part's sample in
// sample mode, otherwise the contents of the input file.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if err := p.LoadInput(); err != nil {
		logger().Fatalf("Failed to open input file, reason: %v", err)
	}
	return p.input
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		logger().Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		logger().Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			logger().Fatalf("%s has signature %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagCheck      bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagInput, "input", "input", "path of the puzzle input")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run the embedded samples")
	flag.BoolVar(&flagCheck, "check", false, "verify the embedded samples before the real input")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

var (
	pass = color.New(color.FgGreen)
	fail = color.New(color.FgRed)
)

// answer formats a part's result the way it is reported on stdout.
func answer(ps partSolver, title string, got any) string {
	if title == "" {
		return fmt.Sprintf("part %s: %v", ps.Part, got)
	}
	return fmt.Sprintf("The %s is %v", title, got)
}

// checkSamples runs every selected part against its embedded sample. It
// reports whether all of them produced the wanted answer.
func checkSamples(p *Puzzle, day day) bool {
	p.SampleMode = true
	defer func() { p.SampleMode = false }()
	ok := true
	for _, ps := range day.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		t0 := time.Now()
		got := ps.fn()
		sample := p.Sample()
		if fmt.Sprint(got) != sample.want {
			fail.Printf("part %s sample: %v ❌; want %v\n", ps.Part, got, sample.want)
			ok = false
			continue
		}
		pass.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
	return ok
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:      year,
		day:       day,
		samples:   samples,
		inputPath: flagInput,
	}
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))

	if flagOnlySample || flagCheck {
		if !checkSamples(&p, day) {
			os.Exit(1)
		}
		if flagOnlySample {
			return
		}
	}

	// Prime the input so an unreadable file fails before any output.
	if err := p.LoadInput(); err != nil {
		logger().Fatalf("Failed to open input file, reason: %v", err)
	}
	t0 := time.Now()
	for _, ps := range day.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		got := ps.fn()
		fmt.Println(answer(ps, samples[ps.Name].title, got))
	}
	fmt.Printf("In %v milliseconds.\n", float64(time.Since(t0).Microseconds())/1000)
}

func Run(year int, src []byte, slvr any) {
	initFlags()
	samples := extractSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			logger().Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for i, day := range dayNums {
		if i > 0 {
			fmt.Println()
		}
		runDay(slvr, year, days[day], samples)
	}
}
