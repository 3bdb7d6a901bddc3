package simplex

import "sync"

// pooledFloatSize mirrors the teacher's pool.go threshold: buffers at or
// below this length come from the shared pool, larger ones are allocated
// directly and never returned to it (not worth the contention for a
// once-per-solve array).
const pooledFloatSize = 4096

var floatPool = sync.Pool{
	New: func() interface{} {
		return make([]float64, pooledFloatSize)
	},
}

// getFloats returns a []float64 of length l, its contents always zeroed —
// every call site in this package uses it for scratch that must start
// clean (FTRAN input, BTRAN unit vectors, phase-1 cost vectors).
func getFloats(l int) []float64 {
	if l > pooledFloatSize {
		return make([]float64, l)
	}
	w := floatPool.Get().([]float64)
	w = useFloats(w, l)
	for i := range w {
		w[i] = 0
	}
	return w
}

// putFloats returns w to the pool. Callers must not retain references to
// w's backing array afterward.
func putFloats(w []float64) {
	if cap(w) > pooledFloatSize {
		return
	}
	floatPool.Put(w[:cap(w)])
}

// useFloats resizes w to length l, reusing its backing array when it has
// enough capacity and growing it otherwise — the same grow-or-reuse shape
// as the teacher's useFloats helper in vector.go.
func useFloats(w []float64, l int) []float64 {
	if cap(w) >= l {
		return w[:l]
	}
	return make([]float64, l)
}
