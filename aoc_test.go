package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
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

after-a-blank-line
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

after-a-blank-line
`,
			},
		},
		{
			comment: `// want=42`,
			want:    sample{want: "42"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %+v, want %+v", got, tt.want)
		}
	}
	if _, ok := parseSample("// just a comment"); ok {
		t.Error("parseSample found a sample in a plain comment")
	}
}

const fakeSource = `package main

/*
want=6

1 2 3
*/
func (s fake) D1p1() any { return nil }

// want=7
func (s fake) D1p2() any { return nil }

// helper is not a solver.
func helper() {}

/*
want=5

5
*/
func (s fake) D2p1() any { return nil }
`

type fake struct {
	*Puzzle
	wrong bool
}

func (f fake) D1p1() any { return Sum(Fields(f.Text())...) }
func (f fake) D1p2() any {
	if f.wrong {
		return 0
	}
	return 1 + Sum(Fields(f.Text())...)
}
func (f fake) D2p1() any { return Int(f.Text()) }

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(fakeSource))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "6", input: "1 2 3\n"},
		"D1p2": {want: "7", input: "1 2 3\n"},
		"D2p1": {want: "5", input: "5\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&fake{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 || len(days[1].parts) != 2 || len(days[2].parts) != 1 {
		t.Fatalf("extractMethods = %+v", days)
	}
	if days[1].parts[0].Name != "D1p1" || days[1].parts[1].Name != "D1p2" {
		t.Errorf("day 1 parts out of order: %+v", days[1].parts)
	}
	if _, err := extractMethods(fake{}); err == nil {
		t.Error("extractMethods accepted a non-pointer")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "aoc.yaml")
	writeFile(t, cfgPath, "inputs: "+filepath.Join(dir, "in")+"\nanswers:\n  2000:\n    1:\n      \"1\": 10\n")
	writeFile(t, filepath.Join(dir, "in", "2000", "1.input"), "1 2 3 4\n")
	writeFile(t, filepath.Join(dir, "in", "2000", "2.input"), "8\n")

	run := func(f *fake, args ...string) error {
		cmd := Command(2000, []byte(fakeSource), f)
		cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		return cmd.Execute()
	}

	if err := run(&fake{}); err != nil {
		t.Errorf("all days: %v", err)
	}
	if err := run(&fake{}, "--day", "2", "--skip-sample"); err != nil {
		t.Errorf("day 2: %v", err)
	}
	if err := run(&fake{}, "--day", "3"); err == nil || !strings.Contains(err.Error(), "no day 3") {
		t.Errorf("missing day: got %v", err)
	}
	if err := run(&fake{wrong: true}, "--day", "1", "--part", "2", "--sample"); err == nil {
		t.Error("wrong sample answer was not reported")
	}
	// Part 1 of day 1 has a recorded answer of 10 and the input sums to 10.
	if err := run(&fake{}, "--day", "1", "--part", "1"); err != nil {
		t.Errorf("known answer: %v", err)
	}
	writeFile(t, cfgPath, "inputs: "+filepath.Join(dir, "in")+"\nanswers:\n  2000:\n    1:\n      \"1\": 11\n")
	if err := run(&fake{}, "--day", "1", "--part", "1", "--skip-sample"); err == nil {
		t.Error("mismatch with a known answer was not reported")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Inputs != "inputs" || cfg.Answers != nil {
		t.Errorf("default config = %+v", cfg)
	}

	path := filepath.Join(dir, "aoc.yaml")
	writeFile(t, path, `answers:
  2023:
    5:
      "1": "836040384"
      "2": 10834440
`)
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Inputs != "inputs" {
		t.Errorf("Inputs = %q, want default", cfg.Inputs)
	}
	if v, ok := cfg.Answer(2023, 5, "2"); !ok || v != "10834440" {
		t.Errorf("Answer(2023, 5, 2) = %q, %v", v, ok)
	}
	if _, ok := cfg.Answer(2023, 6, "1"); ok {
		t.Error("Answer found an unrecorded day")
	}

	writeFile(t, path, "answers: [1, 2\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted bad yaml")
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	sq := Parallel(in, func(v int) int { return v * v })
	if diff := cmp.Diff([]int{1, 4, 9, 16, 25}, sq); diff != "" {
		t.Errorf("Parallel mismatch (-want +got):\n%s", diff)
	}
	prod := ParallelMapFold(in, func(v int) int { return v + 1 }, func(acc, v int) int { return acc * v }, 1)
	if prod != 720 {
		t.Errorf("ParallelMapFold = %d, want 720", prod)
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{2, 3}, 6},
		{[]int{4, 6}, 12},
		{[]int{7}, 7},
		{[]int{6, 10, 15}, 30},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	hi, lo := SolveQuad(1, -30, 200)
	if hi != 20 || lo != 10 {
		t.Errorf("SolveQuad(1, -30, 200) = %v, %v; want 20, 10", hi, lo)
	}
}

func TestGrid(t *testing.T) {
	g := ByteGrid([]string{"ab", "cd", ""})
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Errorf("Size = %v", got)
	}
	if v, ok := g.AtOk(Pt{1, 1}); !ok || v != 'd' {
		t.Errorf("AtOk(1,1) = %q, %v", v, ok)
	}
	if _, ok := g.AtOk(Pt{2, 0}); ok {
		t.Error("AtOk outside the grid")
	}
	if _, ok := g.AtOk(Pt{0, -1}); ok {
		t.Error("AtOk above the grid")
	}

	same := ByteGrid([]string{"ab", "cd"})
	if g.Hash() != same.Hash() {
		t.Error("equal grids hash differently")
	}
	same.Set(Pt{0, 0}, 'z')
	if g.Hash() == same.Hash() {
		t.Error("different grids hash the same")
	}

	n := 0
	Pt{0, 0}.ForNeighbors(func(Pt) bool { n++; return true })
	if n != 8 {
		t.Errorf("ForNeighbors visited %d points, want 8", n)
	}
}
