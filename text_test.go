package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecords(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "", want: nil},
		{text: "\n\n", want: nil},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\n\nb\n", want: []string{"a", "b"}},
		{text: "a\n \t\nb\n   \n", want: []string{"a", "b"}},
		{text: "  a1 \r\nb2\r\n", want: []string{"  a1 \r", "b2\r"}},
		{text: "\uFEFF\na\n \uFEFF \n", want: []string{"a"}},
		{text: "\uFEFFone2\n", want: []string{"\uFEFFone2"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Records(tt.text)); diff != "" {
			t.Errorf("Records(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}
