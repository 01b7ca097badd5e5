package drill

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/bugdrill/fib"
	"github.com/katalvlaran/bugdrill/numseq"
	"github.com/katalvlaran/bugdrill/textscan"
)

// floatTolerance is the absolute tolerance for floating-point cases.
const floatTolerance = 1e-9

// Result records the outcome of a single verification case.
// Got and Want are already rendered for display.
type Result struct {
	Name   string
	Got    string
	Want   string
	Passed bool
}

// Line renders the report row for this result.
func (r Result) Line() string {
	if r.Passed {
		return fmt.Sprintf("PASS  %s: %s == %s", r.Name, r.Got, r.Want)
	}

	return fmt.Sprintf("FAIL  %s: %s != %s", r.Name, r.Got, r.Want)
}

// Summary aggregates the outcomes of one full harness run.
type Summary struct {
	Results []Result
	Failed  int
}

// AllPassed reports whether every case in the run passed.
func (s Summary) AllPassed() bool { return s.Failed == 0 }

// Run evaluates the built-in case table in order, writes one line per
// case plus an aggregate summary to w, and returns the Summary.
// A failing case never stops the run: every case is always evaluated.
func Run(w io.Writer) Summary {
	s := Summary{Results: evaluate()}
	for _, r := range s.Results {
		if !r.Passed {
			s.Failed++
		}
		fmt.Fprintln(w, r.Line())
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
	if s.AllPassed() {
		fmt.Fprintf(w, "all passed (%d/%d)\n", len(s.Results), len(s.Results))
	} else {
		fmt.Fprintf(w, "some failed (%d/%d passed)\n", len(s.Results)-s.Failed, len(s.Results))
	}

	return s
}

// evaluate runs the fixed case table: the documented sample scenarios
// first, each followed by its empty-input or normalization boundary.
func evaluate() []Result {
	return []Result{
		checkFloat("average([1 2 3 4 5])", numseq.Average([]float64{1, 2, 3, 4, 5}), 3),
		checkFloat("average([])", numseq.Average(nil), 0),
		checkMax("max([1 5 3 9 2])", []float64{1, 5, 3, 9, 2}, 9),
		checkNoMax("max([])", nil),
		checkBool(`palindrome("radar")`, textscan.IsPalindrome("radar"), true),
		checkBool(`palindrome("Never odd or even")`, textscan.IsPalindrome("Never odd or even"), true),
		checkInt(`vowels("hello world")`, textscan.CountVowels("hello world"), 3),
		checkInt("fib(6)", fib.Fib(6), 8),
		checkInt("fib(10)", fib.Fib(10), 55),
	}
}

// formatFloat renders a float64 with the shortest exact representation.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// checkFloat compares within floatTolerance.
func checkFloat(name string, got, want float64) Result {
	return Result{
		Name:   name,
		Got:    formatFloat(got),
		Want:   formatFloat(want),
		Passed: math.Abs(got-want) <= floatTolerance,
	}
}

// checkInt compares exactly.
func checkInt(name string, got, want int) Result {
	return Result{Name: name, Got: strconv.Itoa(got), Want: strconv.Itoa(want), Passed: got == want}
}

// checkBool compares exactly.
func checkBool(name string, got, want bool) Result {
	return Result{Name: name, Got: strconv.FormatBool(got), Want: strconv.FormatBool(want), Passed: got == want}
}

// checkMax expects a present value within floatTolerance of want.
func checkMax(name string, values []float64, want float64) Result {
	got, ok := numseq.Max(values)
	if !ok {
		return Result{Name: name, Got: "none", Want: formatFloat(want)}
	}

	return checkFloat(name, got, want)
}

// checkNoMax expects the comma-ok "no value" signal, rendered "none".
func checkNoMax(name string, values []float64) Result {
	got, ok := numseq.Max(values)
	r := Result{Name: name, Got: "none", Want: "none", Passed: !ok}
	if ok {
		r.Got = formatFloat(got)
	}

	return r
}
