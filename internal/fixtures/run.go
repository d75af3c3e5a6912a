package fixtures

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/dnc/editdist"
	"github.com/katalvlaran/dnc/expr"
)

// Kind tells which engine produced a Result.
type Kind string

const (
	KindExpression Kind = "expr"
	KindAlignment  Kind = "align"
)

// Result is the outcome of replaying one fixture.
type Result struct {
	Kind  Kind
	Input string
	Got   string
	Want  string
	OK    bool
}

// Report collects the results of Run in fixture order.
type Report struct {
	Results []Result
}

// Failed counts results that did not match their expectation.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK {
			n++
		}
	}

	return n
}

// Run replays every fixture of s. Expressions come first, then alignments.
func Run(s Set) Report {
	rep := Report{Results: make([]Result, 0, len(s.Expressions)+len(s.Alignments))}
	for _, e := range s.Expressions {
		rep.Results = append(rep.Results, runExpression(e))
	}
	for _, a := range s.Alignments {
		rep.Results = append(rep.Results, runAlignment(a))
	}

	return rep
}

// runExpression evaluates one expression fixture.
func runExpression(e Expression) Result {
	res := Result{Kind: KindExpression, Input: e.Text}
	opts, err := e.Options()
	if err != nil {
		res.Got = err.Error()

		return res
	}

	val, err := expr.EvaluateWith(e.Text, opts)
	if err != nil {
		res.Got = err.Error()
	} else {
		res.Got = formatFloat(val)
	}

	if e.Error != "" {
		res.Want = "error " + e.Error
		res.OK = err != nil && errors.Is(err, errorNames[e.Error])

		return res
	}
	if e.Want == nil {
		res.Want = "(no expectation)"

		return res
	}
	res.Want = formatFloat(*e.Want)
	res.OK = err == nil && val == *e.Want

	return res
}

// runAlignment aligns x and y and replays the script.
func runAlignment(a Alignment) Result {
	x, y := editdist.Runes(a.X), editdist.Runes(a.Y)
	d, s := editdist.Align(x, y)

	res := Result{
		Kind:  KindAlignment,
		Input: strconv.Quote(a.X) + " → " + strconv.Quote(a.Y),
		Got:   strconv.Itoa(d) + " " + s.String(),
		Want:  strconv.Itoa(a.Distance),
	}
	res.OK = d == a.Distance
	if a.Script != "" {
		res.Want += " " + a.Script
		res.OK = res.OK && s.String() == a.Script
	}

	out, err := editdist.Apply(x, y, s)
	if err != nil {
		res.Got += " (" + err.Error() + ")"
		res.OK = false
	} else if string(out) != a.Y {
		res.OK = false
	}

	return res
}

// formatFloat renders values the way %g does.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
