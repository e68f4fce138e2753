package calibration

import (
	"sync"

	"github.com/maisem/aoc2023"
)

// Match is an occurrence of a token in a line. Pos is the byte offset where
// the occurrence starts.
type Match struct {
	Pos int
	Token
}

type state struct {
	next map[byte]int
	fail int
	// out holds the indexes of every token that ends at this state, including
	// the ones reached through fail.
	out []int
}

// Matcher finds all occurrences of a fixed set of tokens in a single pass
// over a line, using the Aho-Corasick automaton.
//
// The zero value is not usable; create one with NewMatcher.
type Matcher struct {
	tokens []Token
	states []state
}

// NewMatcher builds a Matcher for tokens. Tokens must be non-empty.
func NewMatcher(tokens []Token) *Matcher {
	m := &Matcher{
		tokens: tokens,
		states: []state{{next: map[byte]int{}}},
	}
	for i, t := range tokens {
		m.enter(i, t.Text)
	}
	m.link()
	return m
}

// enter adds the path for text to the trie.
func (m *Matcher) enter(tok int, text string) {
	s := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		n, ok := m.states[s].next[c]
		if !ok {
			n = len(m.states)
			m.states = append(m.states, state{next: map[byte]int{}})
			m.states[s].next[c] = n
		}
		s = n
	}
	m.states[s].out = append(m.states[s].out, tok)
}

// link sets the failure transitions, breadth first so that a state's fail
// target is always finished before the state itself.
func (m *Matcher) link() {
	q := aoc.NewQueue[int]()
	for _, s := range m.states[0].next {
		q.Push(s)
	}
	q.While(func(r int) bool {
		for c, s := range m.states[r].next {
			q.Push(s)
			if r == 0 {
				continue
			}
			f := m.states[r].fail
			for {
				if n, ok := m.states[f].next[c]; ok {
					m.states[s].fail = n
					break
				}
				if f == 0 {
					break
				}
				f = m.states[f].fail
			}
			m.states[s].out = append(m.states[s].out, m.states[m.states[s].fail].out...)
		}
		return true
	})
}

func (m *Matcher) step(s int, c byte) int {
	for {
		if n, ok := m.states[s].next[c]; ok {
			return n
		}
		if s == 0 {
			return 0
		}
		s = m.states[s].fail
	}
}

// Matches returns every occurrence of every token in line, overlapping ones
// included, ordered by where they end.
func (m *Matcher) Matches(line string) []Match {
	var out []Match
	s := 0
	for i := 0; i < len(line); i++ {
		s = m.step(s, line[i])
		for _, tok := range m.states[s].out {
			t := m.tokens[tok]
			out = append(out, Match{Pos: i + 1 - len(t.Text), Token: t})
		}
	}
	return out
}

// FirstLast returns the match that starts earliest in line and the one that
// starts latest. ok is false if nothing matched.
func (m *Matcher) FirstLast(line string) (first, last Match, ok bool) {
	matches := m.Matches(line)
	if len(matches) == 0 {
		return first, last, false
	}
	first, last = matches[0], matches[0]
	for _, mt := range matches[1:] {
		if mt.Pos < first.Pos {
			first = mt
		}
		if mt.Pos > last.Pos {
			last = mt
		}
	}
	return first, last, true
}

// Value returns the calibration value of line. It agrees with DigitsAndWords
// when m was built from Tokens.
func (m *Matcher) Value(line string) int {
	first, last, ok := m.FirstLast(line)
	if !ok {
		return 0
	}
	return value(first.Value, last.Value)
}

var tokenMatcher = sync.OnceValue(func() *Matcher {
	return NewMatcher(Tokens)
})

// Automaton returns a Strategy equivalent to Scan that finds tokens with a
// Matcher instead of repeated substring searches.
func Automaton() Strategy {
	return tokenMatcher().Value
}
