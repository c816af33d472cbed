// Package rosette is a toolkit for chordal rosettes: polylines obtained by
// walking a parametric curve at the angles picked by an integer sequence
// over a cyclic group Z_n, then joining the visited points with chords.
//
// 🚀 What is a rosette?
//
//	Pick a curve with closure period T and a modulus n. Index k of Z_n maps
//	to the curve point at θ = k·T/n. A sequencer walks Z_n (for instance
//	0, 7, 14, … mod n) and every consecutive pair of visited indices is
//	joined by a chord. Stepping 2 around a circle of 5 points draws a
//	pentagram; stepping 7 around a 5/3 rose with n = 120 draws lace.
//
// ✨ Packages
//
//	modular/      — gcd, lcm, extended Euclid, inverses, divisors, generators
//	geom/         — Point and Vec2
//	params/       — flat parameter records, schemas and variant registries
//	curve/        — rose, blended rose, circle, epitrochoid, Lissajous,
//	                polygon, superformula, Farris wheels; closure periods and
//	                special points
//	sequencer/    — additive, alternating, four-step, multiplicative walks
//	                and their coset decomposition
//	polyline/     — curve × sequencer → polylines
//	coincidence/  — where two additive walks meet, and inverse searches for
//	                partner generators
//	resample/     — exact/approximate resampling, blending, chord connectors
//	studio/       — validated, memoised façade over everything above
//	scene/        — YAML scene files
//	cmd/rosette/  — command line front end
//
// Quick example:
//
//	e := studio.NewEngine()
//	r, _ := e.Render(studio.RenderRequest{
//		Curve:     params.Record{"type": "rose", "n": 5, "d": 3},
//		Sequencer: params.Record{"type": "additive", "step": 7},
//		N:         120,
//	})
//	fmt.Println(r.Segments(), r.Closed) // 120 true
//
//	go install github.com/katalvlaran/rosette/cmd/rosette@latest
package rosette
