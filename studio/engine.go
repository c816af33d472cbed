// SPDX-License-Identifier: MIT
// Package: rosette/studio
//
// engine.go — Engine: validation, memoised rendering, blending and
// coincidence queries.
//
// Contract:
//   • Identical requests give identical results.
//   • An Engine is safe for concurrent use; the memo is internally locked.
//   • Cached renderings are shared: callers must not mutate them.

package studio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/rosette/coincidence"
	"github.com/katalvlaran/rosette/curve"
	"github.com/katalvlaran/rosette/polyline"
	"github.com/katalvlaran/rosette/resample"
	"github.com/katalvlaran/rosette/sequencer"
)

// degenerateEps is the collapse tolerance for rendered polylines.
const degenerateEps = 1e-9

// Engine serves render, blend and coincidence requests.
type Engine struct {
	cfg    config
	logger l.Wrapper
	memo   *cache.Cache // nil when memoisation is disabled
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := newConfig(opts...)
	e := &Engine{
		cfg:    cfg,
		logger: cfg.logger.WithFields(l.StringField(l.ClsKey, "engine")),
	}
	if cfg.cacheTTL > 0 {
		e.memo = cache.New(cfg.cacheTTL, 2*cfg.cacheTTL)
	}

	return e
}

// Render builds the rosette described by req.
func (e *Engine) Render(req RenderRequest) (*Rendering, error) {
	if req.N <= 0 {
		return nil, fmt.Errorf("Render: n=%d: %w", req.N, ErrBadModulus)
	}
	c, err := curve.New(req.Curve)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("curve record rejected")
		return nil, fmt.Errorf("Render: %w", err)
	}
	s, err := sequencer.New(req.Sequencer)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("sequencer record rejected")
		return nil, fmt.Errorf("Render: %w", err)
	}

	key := renderKey(c, s, req)
	if e.memo != nil {
		if v, ok := e.memo.Get(key); ok {
			e.logger.WithFields(l.StringField("key", key)).Debug("render cache hit")
			return v.(*Rendering), nil
		}
	}

	r := e.render(c, s, req)
	e.logger.WithFields(
		l.StringField("curve", r.CurveSignature),
		l.StringField("sequencer", r.SequencerSignature),
		l.IntField("n", req.N),
		l.IntField("segments", r.Segments()),
	).Debug("rendered")
	if e.memo != nil {
		e.memo.Set(key, r, cache.DefaultExpiration)
	}

	return r, nil
}

func (e *Engine) render(c curve.Curve, s sequencer.Sequencer, req RenderRequest) *Rendering {
	r := &Rendering{
		CurveSignature:     c.Signature(),
		SequencerSignature: s.Signature(),
		Period:             c.ClosurePeriod(),
		Closed:             true,
		Degenerate:         true,
	}

	starts := []int{req.Offset}
	if req.Cosets {
		if cs := s.Cosets(req.N); cs != nil {
			starts = cs
		}
	}
	for _, st := range starts {
		p, walk := polyline.BuildWithIndices(c, s, req.N, st)
		if len(p) == 0 {
			continue
		}
		r.Polylines = append(r.Polylines, p)
		r.Walks = append(r.Walks, walk)
		r.Closed = r.Closed && sequencer.Closed(walk)
		r.Degenerate = r.Degenerate && polyline.IsDegenerate(p, degenerateEps)
	}
	if len(r.Walks) == 0 {
		r.Closed = false
	}
	if !r.Closed && len(r.Walks) > 0 {
		e.logger.WithFields(l.StringField("sequencer", r.SequencerSignature), l.IntField("n", req.N)).
			Debug("walk truncated before closing")
	}

	if e.cfg.special {
		if a, ok := c.(curve.Analyzer); ok {
			sp := a.SpecialPoints()
			r.Special = &sp
		}
	}

	return r
}

func renderKey(c curve.Curve, s sequencer.Sequencer, req RenderRequest) string {
	var b strings.Builder
	b.WriteString(c.Signature())
	b.WriteByte('|')
	b.WriteString(s.Signature())
	b.WriteString("|n=")
	b.WriteString(strconv.Itoa(req.N))
	b.WriteString("|o=")
	b.WriteString(strconv.Itoa(req.Offset))
	if req.Cosets {
		b.WriteString("|cosets")
	}

	return b.String()
}

// Blend renders both sides and interpolates between their first polylines.
func (e *Engine) Blend(req BlendRequest) (*Blending, error) {
	ra, err := e.Render(req.A)
	if err != nil {
		return nil, fmt.Errorf("Blend: a: %w", err)
	}
	rb, err := e.Render(req.B)
	if err != nil {
		return nil, fmt.Errorf("Blend: b: %w", err)
	}
	conn, err := resample.NewConnector(req.Connector)
	if err != nil {
		return nil, fmt.Errorf("Blend: %w", err)
	}

	threshold := e.cfg.threshold
	if req.Threshold != nil {
		if *req.Threshold < 0 {
			return nil, fmt.Errorf("Blend: threshold %d: %w", *req.Threshold, resample.ErrBadThreshold)
		}
		threshold = *req.Threshold
	}
	opts := []resample.Option{resample.WithThreshold(threshold), resample.WithConnector(conn)}
	if req.Samples > 0 {
		opts = append(opts, resample.WithConnectorSamples(req.Samples))
	}

	pa, pb := first(ra), first(rb)
	res, err := resample.Interpolate(pa, pb, req.Weight, opts...)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.IntField("a", len(pa)), l.IntField("b", len(pb))).
			Error("interpolate failed")
		return nil, fmt.Errorf("Blend: %w", err)
	}
	e.logger.WithFields(l.StringField("mode", res.Mode.String()), l.IntField("segments", res.Segments)).
		Debug("blended")

	return &Blending{Result: res, SegmentsA: pa.Segments(), SegmentsB: pb.Segments()}, nil
}

func first(r *Rendering) polyline.Polyline {
	if len(r.Polylines) == 0 {
		return nil
	}

	return r.Polylines[0]
}

// Coincide answers a coincidence query.
func (e *Engine) Coincide(q CoincidenceQuery) (CoincidenceAnswer, error) {
	if err := validateQuery(q); err != nil {
		e.logger.WithFields(l.ErrorField(err), l.StringField("mode", string(q.Mode))).Error("query rejected")
		return CoincidenceAnswer{}, fmt.Errorf("Coincide: %w", err)
	}
	solver, err := coincidence.NewSolver(q.N,
		coincidence.WithOffsets(q.OffsetA, q.OffsetB), coincidence.WithLimit(q.Limit))
	if err != nil {
		return CoincidenceAnswer{}, fmt.Errorf("Coincide: %w", err)
	}

	ans := CoincidenceAnswer{Mode: q.Mode}
	switch q.Mode {
	case QueryCount:
		ans.Count = solver.Count(q.Generator, q.Partner)
	case QueryIndices:
		ans.Indices = solver.Indices(q.Generator, q.Partner)
		ans.Count = len(ans.Indices)
	case QueryAny:
		ans.Candidates = annotate(solver, q.Generator, solver.Any(q.Generator))
	case QueryExact:
		ans.Candidates = annotate(solver, q.Generator, solver.Exact(q.Generator, q.Count))
	case QueryRange:
		ans.Candidates = solver.Range(q.Generator, q.Min, q.Max)
	case QueryForIndices:
		ans.Candidates = annotate(solver, q.Generator, solver.ForIndices(q.Generator, q.Indices))
	}
	if ans.Candidates != nil {
		ans.Count = len(ans.Candidates)
	}
	e.logger.WithFields(l.StringField("mode", string(q.Mode)), l.IntField("n", q.N), l.IntField("count", ans.Count)).
		Debug("query answered")

	return ans, nil
}

func annotate(s *coincidence.Solver, g int, gens []int) []coincidence.Candidate {
	if len(gens) == 0 {
		return nil
	}
	out := make([]coincidence.Candidate, len(gens))
	for i, gp := range gens {
		out[i] = coincidence.Candidate{Generator: gp, Count: s.Count(g, gp)}
	}

	return out
}

func validateQuery(q CoincidenceQuery) error {
	if q.N <= 0 {
		return fmt.Errorf("n=%d: %w", q.N, ErrBadModulus)
	}
	if q.Limit < 0 {
		return fmt.Errorf("limit %d: %w", q.Limit, ErrBadQuery)
	}
	switch q.Mode {
	case QueryCount, QueryIndices, QueryAny:
		return nil
	case QueryExact:
		if q.Count <= 0 {
			return fmt.Errorf("exact count %d: %w", q.Count, ErrBadQuery)
		}
	case QueryRange:
		if q.Min > q.Max {
			return fmt.Errorf("range [%d, %d]: %w", q.Min, q.Max, ErrBadQuery)
		}
	case QueryForIndices:
		if len(q.Indices) == 0 {
			return fmt.Errorf("no indices: %w", ErrBadQuery)
		}
	default:
		return fmt.Errorf("mode %q: %w", q.Mode, ErrBadQuery)
	}

	return nil
}
