// Package aoc is a small harness for running Advent of Code solutions against
// their samples and real inputs, plus helpers shared by the solutions.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the sample of every method in src whose doc comment
// has a want= line. A sample without input reuses the previous one's.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is one day's puzzle as seen by a solver. Solvers embed *Puzzle and
// read their input through it.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     *Config
	log     *zap.SugaredLogger
	solver  partSolver
	samples map[string]sample
	input   []byte
}

// InputPath is where the real input for the puzzle is read from.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.cfg.Inputs, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// Input returns the sample input in sample mode, the real input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		b, err := os.ReadFile(p.InputPath())
		if err != nil {
			p.log.Fatalw("reading puzzle input", "path", p.InputPath(), "error", err)
		}
		p.input = b
	}
	return p.input
}

// Text is Input as a string.
func (p *Puzzle) Text() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		p.log.Fatalw("scanning input", "error", err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) { out = append(out, line) })
	return out
}

// Debugf logs at debug level while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		p.log.Fatalw("no sample found", "func", p.solver.Name)
	}
	return s
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

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects methods named D{day}p{part} from x, which must be
// a pointer to a struct. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
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
	return days, nil
}

type runOptions struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	config     string
}

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type runner struct {
	year    int
	slvr    any
	days    map[int]day
	samples map[string]sample
	cfg     *Config
	log     *zap.SugaredLogger
	opts    runOptions
}

// runDay runs every selected part of d. It reports false if a sample or a
// known answer did not match.
func (r *runner) runDay(d day) bool {
	p := &Puzzle{
		year:    r.year,
		day:     d,
		cfg:     r.cfg,
		log:     r.log.With("year", r.year, "day", d.day),
		samples: r.samples,
	}
	fmt.Println("Running day", d.day)
	reflect.ValueOf(r.slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	ok := true
	for _, ps := range d.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so reading it is not timed.
				p.Input()
			}
			t0 := time.Now()
			got := fmt.Sprint(ps.fn())
			took := time.Since(t0).Round(time.Microsecond)
			p.log.Debugw("solved", "part", ps.Part, "sample", sm, "took", took)
			if sm {
				want := p.Sample().want
				if got != want {
					fmt.Printf("part %s sample: %v %s; want %v\n", ps.Part, got, failStyle.Render("✗"), want)
					return false
				}
				fmt.Printf("part %s sample: %v %s (%v)\n", ps.Part, got, passStyle.Render("✓"), took)
				continue
			}
			mark := ""
			if want, known := r.cfg.Answer(r.year, d.day, ps.Part); known {
				if got == want {
					mark = " " + passStyle.Render("✓")
				} else {
					mark = fmt.Sprintf(" %s; want %v", failStyle.Render("✗"), want)
					ok = false
				}
			}
			fmt.Printf("part %s: %v%s (took %v)\n", ps.Part, got, mark, took)
		}
	}
	return ok
}

func (r *runner) run() error {
	if r.opts.day != -1 {
		d, ok := r.days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		if !r.runDay(d) {
			return fmt.Errorf("day %d: wrong answer", d.day)
		}
		return nil
	}

	dayNums := maps.Keys(r.days)
	slices.Sort(dayNums)
	var failed []int
	for _, n := range dayNums {
		if !r.runDay(r.days[n]) {
			failed = append(failed, n)
		}
		fmt.Println()
	}
	if len(failed) > 0 {
		return fmt.Errorf("wrong answers on days %v", failed)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Command returns the command that runs slvr's solutions for year. src is
// the solver's source file, from which samples are read.
func Command(year int, src []byte, slvr any) *cobra.Command {
	r := &runner{year: year, slvr: slvr}
	var logger *zap.Logger
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Run Advent of Code %d solutions against samples and inputs", year),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(r.opts.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			r.log = logger.Sugar()
			if r.cfg, err = LoadConfig(r.opts.config); err != nil {
				return err
			}
			if r.samples, err = extractSamples(src); err != nil {
				return err
			}
			r.days, err = extractMethods(slvr)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run()
		},
	}
	f := cmd.Flags()
	f.IntVar(&r.opts.day, "day", -1, "day to run; all days if unset")
	f.StringVar(&r.opts.part, "part", "", "part to run")
	f.BoolVar(&r.opts.onlySample, "sample", false, "only run samples")
	f.BoolVar(&r.opts.skipSample, "skip-sample", false, "skip samples")
	f.BoolVar(&r.opts.debug, "debug", false, "debug logging")
	f.StringVar(&r.opts.config, "config", "aoc.yaml", "config file")
	return cmd
}

// Run runs slvr's solutions for year as a command line program.
func Run(year int, src []byte, slvr any) {
	if err := Command(year, src, slvr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
