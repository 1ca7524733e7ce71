package approx

import (
	"fmt"
	"log/slog"

	"github.com/govalues/mpg"
	"github.com/hashicorp/go-multierror"
	shopspring "github.com/shopspring/decimal"
)

// Result is the outcome of a single backend.
type Result struct {
	Backend   string `json:"backend" msgpack:"backend"`
	Value     string `json:"value" msgpack:"value"`
	Deviation string `json:"deviation" msgpack:"deviation"` // |Value - Report.Result|
}

// Report compares the fixed-width result with the results of the backends.
type Report struct {
	Input     string   `json:"input" msgpack:"input"`
	Precision int      `json:"precision" msgpack:"precision"`
	Result    string   `json:"result" msgpack:"result"`
	Results   []Result `json:"results" msgpack:"results"`
}

// MaxDeviation returns the largest deviation among the results, or "0"
// if there are no results.
func (r Report) MaxDeviation() string {
	m := shopspring.Zero
	for _, res := range r.Results {
		d, err := shopspring.NewFromString(res.Deviation)
		if err != nil {
			continue
		}
		if d.GreaterThan(m) {
			m = d
		}
	}
	return m.String()
}

// Checker runs the same conversion through mpg and a set of backends.
// The zero value uses all [Backends] and [slog.Default].
type Checker struct {
	Backends []Backend
	Logger   *slog.Logger
}

func (c Checker) backends() []Backend {
	if len(c.Backends) == 0 {
		return Backends()
	}
	return c.Backends
}

func (c Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Compare converts value with prec digits after the decimal point and
// compares the result with every backend.
// A failing backend does not stop the comparison: its error is collected
// and returned together with the partial report.
// Compare returns an error without a report if mpg itself fails.
func (c Checker) Compare(value string, prec int) (Report, error) {
	log := c.logger()
	want, err := mpg.Convert(value, prec)
	if err != nil {
		return Report{}, fmt.Errorf("comparing %q: %w", value, err)
	}
	exp, err := shopspring.NewFromString(want)
	if err != nil {
		return Report{}, fmt.Errorf("comparing %q: %w", value, err)
	}
	rep := Report{Input: value, Precision: prec, Result: want}

	var errs *multierror.Error
	for _, b := range c.backends() {
		got, err := b.Convert(value, prec)
		if err != nil {
			log.Warn("backend failed", "backend", b.Name(), "input", value, "error", err)
			errs = multierror.Append(errs, err)
			continue
		}
		act, err := shopspring.NewFromString(got)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("parsing %v result %q: %w", b.Name(), got, err))
			continue
		}
		dev := act.Sub(exp).Abs()
		log.Debug("backend result", "backend", b.Name(), "input", value, "value", got, "deviation", dev.String())
		rep.Results = append(rep.Results, Result{Backend: b.Name(), Value: got, Deviation: dev.String()})
	}
	return rep, errs.ErrorOrNil()
}
