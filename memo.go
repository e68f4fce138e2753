package aoc

import (
	"reflect"

	lru "github.com/hashicorp/golang-lru"
	"tailscale.com/util/deephash"
)

// parsedCacheSize bounds the number of inputs whose parse results are kept.
// A day only ever sees its real input plus one sample per part.
const parsedCacheSize = 16

type parsedKey struct {
	input deephash.Sum
	parse uintptr
}

var (
	hashInput = deephash.HasherForType[string]()
	parsed    = MustGet(lru.New(parsedCacheSize))
)

// Parsed returns parse applied to the puzzle's current input. Results are
// cached by input contents and parse function, so parts of the same day that
// share a parse only pay for it once.
//
// parse should be a top-level function. Functions are told apart by their
// code pointer, which closures created from the same literal share even when
// they capture different values.
func Parsed[T any](p *Puzzle, parse func(string) T) T {
	input := string(p.Input())
	k := parsedKey{
		input: hashInput(&input),
		parse: reflect.ValueOf(parse).Pointer(),
	}
	if v, ok := parsed.Get(k); ok {
		return v.(T)
	}
	v := parse(input)
	parsed.Add(k, v)
	return v
}
