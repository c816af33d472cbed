// Package studio is the single entry point a front end talks to. It turns
// flat parameter records into rosettes, blends and coincidence answers.
//
// 🚀 Operations
//   - Render    curve record × sequencer record × n → polylines and walks
//   - Blend     two renders → one interpolated polyline and its Mode
//   - Coincide  additive sequence query → indices or partner generators
//
// ✨ Behaviour
//
//	Requests are validated up front: a modulus n ≤ 0 is ErrBadModulus, a
//	malformed coincidence query ErrBadQuery, unknown variant tags surface
//	the curve or sequencer sentinels. Everything past validation is total:
//	degenerate geometry comes back flagged, never as an error.
//
//	Renders are memoised by curve signature, sequencer signature, n and
//	offset in an expiring in-memory cache, so dragging a blend weight does
//	not resample the curves on every frame.
//
// ⚙️ Options
//   - WithLogger(l.Wrapper)   structured logging (default: no-op)
//   - WithCacheTTL(d)         memo lifetime (default 5m; 0 disables)
//   - WithThreshold(n)        LCM bound forwarded to resample
//   - WithSpecialPoints()     attach zeros/double points/peaks to renders
package studio
