// Package scene reads and writes YAML scene files and runs them against a
// studio.Engine.
//
// A scene groups any number of render, blend and query requests:
//
//	name: petals
//	render:
//	  - curve: {type: rose, n: 5, d: 3}
//	    sequencer: {type: additive, step: 7}
//	    n: 120
//	blend:
//	  - a: {curve: {type: circle}, sequencer: {type: additive, step: 1}, n: 12}
//	    b: {curve: {type: rose, n: 3}, sequencer: {type: additive, step: 5}, n: 7}
//	    weight: 0.5
//	    connector: {type: arc, bulge: 0.3}
//	query:
//	  - {mode: indices, n: 360, generator: 29, partner: 47}
//
// Curve, sequencer and connector blocks are flat parameter records keyed by
// "type". Unknown top-level keys are rejected.
package scene
