// Package polyline joins a curve and a sequencer into the chord polyline of
// a rosette.
//
// For a curve with closure period T, index k of Z_n maps to the point
// c.Point(k·T/n). A sequencer walk over Z_n then lists which points are
// joined, in order.
//
// A curve with period 0 or a modulus n ≤ 0 yields an empty polyline; it is
// never an error. IsDegenerate tells callers when a non-empty polyline
// collapses to a single location (for instance a rose of zero amplitude).
package polyline
