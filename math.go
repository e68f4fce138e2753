package aoc

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the digit value of the character c, given as a byte or a
// rune.
func Digit[T constraints.Integer](c T) int {
	if c < '0' || c > '9' {
		logger().Fatalf("not a digit: %q", rune(c))
	}
	return int(c - '0')
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
