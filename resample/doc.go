// Package resample brings two polylines to a common vertex count and blends
// them.
//
// 🚀 Pipeline
//
//	Match        equalise segment counts (exact or approximate)
//	Blend        per-vertex linear interpolation by a weight in [0, 1]
//	Deform       replace every straight chord by a connector curve
//	Interpolate  the three steps above in one call
//
// ✨ Exact versus approximate
//
//	Two polylines with a and b segments are matched exactly by subdividing
//	both to lcm(a, b) segments; every original vertex survives. For coprime
//	counts the LCM explodes, so a threshold bounds it: when the LCM exceeds
//	the threshold, or the threshold is 0, both sides are sampled by
//	fractional index to a fixed count instead (at most DefaultCeiling).
//	The chosen Mode is part of every result and is never hidden.
//
// ⚙️ Options
//   - WithThreshold(n)          LCM bound; 0 forces approximate matching
//   - WithConnector(c)          chord shape used by Interpolate
//   - WithConnectorSamples(k)   sub-segments per chord when deforming
//
// All functions are pure. Malformed input is reported with the sentinels in
// errors.go; option constructors panic on meaningless values.
package resample
