// Package modulation provides low-frequency modulators indexed by absolute
// sample position.
//
// Triangle produces the frequency offset of a triangular FM sweep. It keeps no
// running phase: the offset for a sample depends only on its global index, so
// generators can resume at any index without replaying earlier samples.
package modulation
