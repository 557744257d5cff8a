// One *rand.Rand seeded with Profile.Seed builds the soup and then draws
// every operation, so equal profiles give equal runs.

package stress

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/cmap/builder"
	"github.com/katalvlaran/cmap/core"
	"github.com/katalvlaran/cmap/sew"
)

// maxAttempts bounds the random draws of one step before it counts as rejected.
const maxAttempts = 16

// Report summarises a run. Merges, Splits and Reclaimed are keyed by attribute dimension.
type Report struct {
	Profile     Profile       `json:"profile"`
	Steps       int           `json:"steps"`
	Sews        int           `json:"sews"`
	Unsews      int           `json:"unsews"`
	Rejected    int           `json:"rejected"`
	Checks      int           `json:"checks"`
	Merges      map[int]int   `json:"merges"`
	Splits      map[int]int   `json:"splits"`
	Reclaimed   map[int]int   `json:"reclaimed"`
	Darts       int           `json:"darts"`
	Cells       []int         `json:"cells"`
	Fingerprint string        `json:"fingerprint"`
	Elapsed     time.Duration `json:"elapsed"`
}

// runner holds the state of one run.
type runner struct {
	p      Profile
	m      *core.Map
	rng    *rand.Rand
	rep    *Report
	logger *slog.Logger
}

// Run builds a RandomSoup of p.Darts darts and performs p.Steps random sew or
// unsew attempts on it, validating the map every p.CheckEvery steps and once
// at the end. Orphaned attributes are reclaimed at every check.
//
// Errors:
//   - ErrInvalidProfile for a bad profile.
//   - ctx.Err() wrapped when the context is done between two steps.
//   - core.ErrInvalidMap wrapped when a check fails.
//   - sew and attrib errors from a failed operation.
//
// The Report is returned with whatever was done so far, even on error.
func Run(ctx context.Context, p Profile, logger *slog.Logger) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := time.Now()
	rep := &Report{
		Profile:   p,
		Merges:    map[int]int{},
		Splits:    map[int]int{},
		Reclaimed: map[int]int{},
	}
	r := &runner{p: p, rng: rand.New(rand.NewSource(p.Seed)), rep: rep, logger: logger}

	dims := p.attributeDims()
	mopts := []core.MapOption{core.WithDimension(p.Dimension), core.WithLogger(logger), core.WithChecks()}
	for _, i := range dims {
		mopts = append(mopts, core.WithAttribute(i, r.kind(i)))
	}
	m, err := builder.BuildMap(mopts,
		[]builder.BuilderOption{builder.WithRand(r.rng), builder.WithCellAttributes(dims...)},
		builder.RandomSoup(p.Darts))
	if err != nil {
		return nil, fmt.Errorf("stress: build soup: %w", err)
	}
	r.m = m
	logger.Info("stress: start", "seed", p.Seed, "dim", p.Dimension, "darts", m.DartCount(), "steps", p.Steps)

	for step := 0; step < p.Steps; step++ {
		if err = ctx.Err(); err != nil {
			return r.finish(start), fmt.Errorf("stress: step %d: %w", step, err)
		}
		if err = r.step(); err != nil {
			return r.finish(start), fmt.Errorf("stress: step %d: %w", step, err)
		}
		rep.Steps++
		if p.CheckEvery > 0 && rep.Steps%p.CheckEvery == 0 {
			if err = r.check(); err != nil {
				return r.finish(start), fmt.Errorf("stress: step %d: %w", step, err)
			}
		}
	}
	if err = r.check(); err != nil {
		return r.finish(start), fmt.Errorf("stress: final check: %w", err)
	}

	r.finish(start)
	logger.Info("stress: done", "sews", rep.Sews, "unsews", rep.Unsews, "rejected", rep.Rejected,
		"fingerprint", rep.Fingerprint)
	return rep, nil
}

// kind counts merges and splits of dimension i and sums int payloads on merge.
func (r *runner) kind(i int) core.AttributeKind {
	return core.AttributeKind{
		Name: fmt.Sprintf("stress-%d", i),
		OnMerge: func(m *core.Map, dim int, survivor, absorbed core.Attr) {
			r.rep.Merges[dim]++
			s, _ := m.AttributeValue(dim, survivor).(int)
			a, _ := m.AttributeValue(dim, absorbed).(int)
			_ = m.SetAttributeValue(dim, survivor, s+a)
		},
		OnSplit: func(_ *core.Map, dim int, _, _ core.Attr) {
			r.rep.Splits[dim]++
		},
	}
}

// step tries one sew or one unsew.
func (r *runner) step() error {
	if r.rng.Float64() < r.p.SewRatio {
		return r.trySew()
	}
	return r.tryUnsew()
}

// randomDart draws a dart uniformly.
func (r *runner) randomDart() core.Dart {
	return core.Dart(r.rng.Intn(r.m.DartCount()))
}

func (r *runner) trySew() error {
	for k := 0; k < maxAttempts; k++ {
		i := r.rng.Intn(r.p.Dimension + 1)
		d1, d2 := r.randomDart(), r.randomDart()
		if !sew.Sewable(r.m, i, d1, d2) {
			continue
		}
		if err := sew.Sew(r.m, i, d1, d2); err != nil {
			return err
		}
		r.rep.Sews++
		r.logger.Debug("stress: sew", "dim", i, "d1", d1, "d2", d2)
		return nil
	}
	r.rep.Rejected++
	return nil
}

func (r *runner) tryUnsew() error {
	for k := 0; k < maxAttempts; k++ {
		i := r.rng.Intn(r.p.Dimension + 1)
		d := r.randomDart()
		if r.m.IsFree(d, i) {
			continue
		}
		if err := sew.Unsew(r.m, i, d); err != nil {
			return err
		}
		r.rep.Unsews++
		r.logger.Debug("stress: unsew", "dim", i, "dart", d)
		return nil
	}
	r.rep.Rejected++
	return nil
}

// check validates the map and reclaims orphans.
func (r *runner) check() error {
	r.rep.Checks++
	if err := core.Validate(r.m); err != nil {
		return err
	}
	for _, i := range r.m.EnabledDimensions() {
		r.rep.Reclaimed[i] += r.m.ReclaimOrphans(i)
	}
	return nil
}

// finish fills the map-derived fields of the report.
func (r *runner) finish(start time.Time) *Report {
	r.rep.Elapsed = time.Since(start)
	if r.m == nil {
		return r.rep
	}
	r.rep.Darts = r.m.DartCount()
	r.rep.Cells = r.rep.Cells[:0]
	for i := 0; i <= r.m.Dimension()+1; i++ {
		n, err := r.m.CellCount(i)
		if err != nil {
			break
		}
		r.rep.Cells = append(r.rep.Cells, n)
	}
	fp := core.Fingerprint(r.m)
	r.rep.Fingerprint = hex.EncodeToString(fp[:])
	return r.rep
}
