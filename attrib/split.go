// Package attrib: split detection over the darts touched by an unsew.

package attrib

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// DetectSplits finds every i-attribute that now spans several disconnected
// i-cells after the beta_j links of the modified darts were removed, and gives
// each extra component its own copy.
//
// Seeds, in order:
//   - generic: modified darts, then secondary darts;
//   - vertex/beta_j≥2: each dart followed by its other extremity;
//   - vertex/beta_0 and vertex/beta_1: modified darts, then the other
//     extremities of the secondary darts (WithSecondary is required).
//
// For each seed carrying an attribute a and not yet visited:
//   - a not seen in this pass: a is re-rooted on the seed and its i-cell is
//     marked visited. The first component discovered keeps a.
//   - a already seen: the seed's i-cell is a separate piece. A copy of a is
//     written over it (marking it visited) and OnSplit(a, copy) runs.
//
// Cleanup negates the scratch mark and marks again the cells of the seeds,
// which leaves it set on every dart so it can be released; the caller mark
// (WithCallerMark) is cleared on every listed dart. With core.WithChecks the
// full coverage of the scratch mark is verified.
//
// Errors: ErrNilMap, ErrMissingSecondary, ErrOptionViolation, core dart and
// dimension sentinels, core.ErrNoFreeMark.
// Complexity: O(sum of visited cells).
func DetectSplits(m *core.Map, i, j int, modified []core.Dart, opts ...SplitOption) (SplitReport, error) {
	if err := checkOperands("DetectSplits", m, i, j); err != nil {
		return SplitReport{}, err
	}
	cfg, err := resolveSplitConfig(m, modified, opts)
	if err != nil {
		return SplitReport{}, err
	}
	return detectSplits(m, i, j, modified, cfg)
}

// DetectSplitsAll runs DetectSplits for every enabled attribute dimension and
// returns the reports in ascending dimension order. Vertex attributes without
// a secondary list after a beta_0/beta_1 unsew are reported as
// ErrMissingSecondary.
func DetectSplitsAll(m *core.Map, j int, modified []core.Dart, opts ...SplitOption) ([]SplitReport, error) {
	if err := checkOperands("DetectSplitsAll", m, 0, j); err != nil {
		return nil, err
	}
	cfg, err := resolveSplitConfig(m, modified, opts)
	if err != nil {
		return nil, err
	}
	reports := make([]SplitReport, 0, len(m.EnabledDimensions()))
	for _, i := range m.EnabledDimensions() {
		r, err := detectSplits(m, i, j, modified, cfg)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// resolveSplitConfig applies opts and validates the dart lists and caller mark.
func resolveSplitConfig(m *core.Map, modified []core.Dart, opts []SplitOption) (splitConfig, error) {
	cfg := defaultSplitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if cfg.callerMark >= 0 && !m.IsReserved(cfg.callerMark) {
		return cfg, fmt.Errorf("%w: caller mark %d is not reserved", ErrOptionViolation, cfg.callerMark)
	}
	if err := checkDarts("DetectSplits", m, modified); err != nil {
		return cfg, err
	}
	if err := checkDarts("DetectSplits", m, cfg.secondary); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// splitPass is the state of one DetectSplits run for dimension i.
type splitPass struct {
	m      *core.Map
	i, j   int
	mark   int
	seen   map[core.Attr]struct{}
	report SplitReport
}

func detectSplits(m *core.Map, i, j int, modified []core.Dart, cfg splitConfig) (SplitReport, error) {
	c := Classify(m, i, j)
	report := SplitReport{Dim: i, Excluded: j, Case: c}
	if c.IsNoop() {
		return report, nil
	}
	if (c == CaseVertexBeta0 || c == CaseVertexBeta1) && !cfg.hasSecondary {
		return report, fmt.Errorf("DetectSplits(%d,%d): %w", i, j, ErrMissingSecondary)
	}
	seeds := splitSeeds(m, c, modified, cfg.secondary)

	err := m.WithMark(func(mark int) error {
		p := &splitPass{m: m, i: i, j: j, mark: mark, seen: make(map[core.Attr]struct{}), report: report}
		for _, d := range seeds {
			p.visit(d)
		}

		m.NegateMark(mark)
		if cfg.callerMark >= 0 {
			for _, d := range modified {
				m.Unmark(d, cfg.callerMark)
			}
			for _, d := range cfg.secondary {
				m.Unmark(d, cfg.callerMark)
			}
		}
		for _, d := range seeds {
			if d != core.NullDart && !m.IsMarked(d, mark) {
				m.MarkCell(d, i, mark, nil)
			}
		}
		if m.ChecksEnabled() && !m.IsWholeMapMarked(mark) {
			panic(fmt.Errorf("%w: DetectSplits(%d,%d) left %d of %d darts unmarked",
				core.ErrInvariant, i, j, m.DartCount()-m.MarkedCount(mark), m.DartCount()))
		}
		report = p.report
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("DetectSplits(%d,%d): %w", i, j, err)
	}
	return report, nil
}

// splitSeeds lists the darts visited by a pass, in visiting order.
func splitSeeds(m *core.Map, c Case, modified, secondary []core.Dart) []core.Dart {
	seeds := make([]core.Dart, 0, 2*(len(modified)+len(secondary)))
	switch c {
	case CaseVertexHigh:
		for _, list := range [][]core.Dart{modified, secondary} {
			for _, d := range list {
				seeds = append(seeds, d, m.OtherExtremity(d))
			}
		}
	case CaseVertexBeta0, CaseVertexBeta1:
		seeds = append(seeds, modified...)
		for _, d := range secondary {
			seeds = append(seeds, m.OtherExtremity(d))
		}
	default:
		seeds = append(seeds, modified...)
		seeds = append(seeds, secondary...)
	}
	return seeds
}

// visit processes one seed.
func (p *splitPass) visit(d core.Dart) {
	m, i := p.m, p.i
	if d == core.NullDart {
		return
	}
	a := m.Attribute(d, i)
	if a == core.NullAttr || m.IsMarked(d, p.mark) {
		return
	}

	if _, ok := p.seen[a]; !ok {
		p.seen[a] = struct{}{}
		m.SetAttributeDart(i, a, d)
		m.MarkCell(d, i, p.mark, nil)
		return
	}

	created, err := m.CopyAttribute(i, a)
	if err != nil {
		// d holds a, so a is live unless the arena is corrupted.
		panic(fmt.Errorf("%w: DetectSplits(%d,%d): %v", core.ErrInvariant, i, p.j, err))
	}
	m.MarkCell(d, i, p.mark, func(x core.Dart) {
		m.SetDartAttribute(x, i, created)
	})
	m.SetAttributeDart(i, created, d)
	callSplit(m, i, p.j, a, created)
	p.report.Created = append(p.report.Created, created)
	p.report.Origin = append(p.report.Origin, a)
}
