package domain

// scriptedRand replays fixed draw sequences, cycling when exhausted. Tests
// use it to pin down the otherwise random parts of pricing.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}
