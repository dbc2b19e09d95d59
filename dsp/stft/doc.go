// Package stft computes short-time Fourier transform spectrograms.
//
// Compute slices the input into overlapping frames of Config.Size samples,
// zero-pads the last partial frame, applies the configured window, transforms
// each frame and keeps the Size/2 positive-frequency bins. The result is
// oriented for image rendering: row 0 holds the highest frequency bin and the
// last row holds DC. ComputeOriented skips that flip.
//
// Compute is a pure function and may be called concurrently.
package stft
