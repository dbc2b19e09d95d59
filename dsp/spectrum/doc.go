// Package spectrum converts complex spectrum bins into real-valued views.
//
// The package does not compute transforms itself. It operates on bins
// produced by the stft package (or any other FFT backend) and derives
// magnitude, power and phase, either per frame or for a whole spectrogram.
package spectrum
