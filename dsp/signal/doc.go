// Package signal generates quantized frequency-modulated test signals.
//
// FMGenerator is a phase accumulator: each call to Generate continues exactly
// where the previous call stopped, so a long signal can be produced in several
// "generate more" steps without discontinuities. A generator is owned by one
// caller and must not be used from multiple goroutines.
package signal
