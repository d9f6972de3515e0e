package report

// MovingAverage smooths x with a trailing window of w samples and returns a
// series of the same length. The first w-1 points, which have no full
// window, repeat the first full-window average.
func MovingAverage(x []float64, w int) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	if w <= 1 {
		copy(out, x)
		return out
	}
	if w > len(x) {
		w = len(x)
	}

	var sum float64
	for i := 0; i < w; i++ {
		sum += x[i]
	}
	first := sum / float64(w)
	for i := 0; i < w; i++ {
		out[i] = first
	}
	for i := w; i < len(x); i++ {
		sum += x[i] - x[i-w]
		out[i] = sum / float64(w)
	}
	return out
}
