package core

// EnsureLen returns buf resliced to n when its capacity allows, otherwise a
// fresh zeroed slice of length n. Reused contents are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}

// FillFrame copies the head of src into dst and zeroes the remainder of dst,
// so a frame taken from the end of a signal is zero-padded. It returns the
// number of samples taken from src.
func FillFrame(dst, src []float64) int {
	n := copy(dst, src)
	clear(dst[n:])

	return n
}
