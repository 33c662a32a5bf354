package ws

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "\n\n", want: nil},
		{in: "  a  \n b\n", want: []string{"a", "b"}},
		{in: "a\r\n\r\nb", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestBlocks(t *testing.T) {
	in := `
a
b


c
`
	want := [][]string{{"a", "b"}, {"c"}}
	if diff := cmp.Diff(want, Blocks(in)); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestCut(t *testing.T) {
	before, after, ok := Cut("Game 12 :  3 blue ", ":")
	if !ok || before != "Game 12" || after != "3 blue" {
		t.Errorf("Cut = %q, %q, %v", before, after, ok)
	}
	if _, _, ok := Cut("no separator", ":"); ok {
		t.Error("Cut found a separator that is not there")
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("  79 14\t55   13 ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{79, 14, 55, 13}, got); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}
	if _, err := Ints("1 x 3"); err == nil {
		t.Error("Ints accepted a non-numeric field")
	}
}
