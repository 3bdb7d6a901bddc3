package numeric

// SortInts sorts idx ascending using introsort: quicksort with a
// median-of-three pivot and a recursion-depth bound of 2*floor(log2 n),
// falling back to heapsort when the bound is exhausted, and insertion sort
// for small (n < 16) partitions. Not stable. O(n log n) worst case, unlike
// plain quicksort's O(n^2).
func SortInts(idx []int32) {
	introsort(idx, nil, depthLimit(len(idx)))
}

// SortIntsValues sorts idx ascending while co-permuting val in lockstep,
// used to bring a CSC column's (row, value) pairs into ascending row order
// when a matrix is built from triplets in arbitrary order.
func SortIntsValues(idx []int32, val []float64) {
	if len(idx) != len(val) {
		panic("numeric: idx/val length mismatch")
	}
	introsort(idx, val, depthLimit(len(idx)))
}

const insertionThreshold = 16

func depthLimit(n int) int {
	limit := 0
	for n > 1 {
		n >>= 1
		limit++
	}
	return 2 * limit
}

func introsort(idx []int32, val []float64, depth int) {
	for len(idx) >= insertionThreshold {
		if depth == 0 {
			heapsort(idx, val)
			return
		}
		depth--
		p := medianOfThreePivot(idx)
		mid := partition(idx, val, p)
		if mid < len(idx)-mid {
			introsort(idx[:mid], sliceVal(val, 0, mid), depth)
			idx, val = idx[mid:], sliceVal(val, mid, len(idx))
		} else {
			introsort(idx[mid:], sliceVal(val, mid, len(idx)), depth)
			idx, val = idx[:mid], sliceVal(val, 0, mid)
		}
	}
	insertionSort(idx, val)
}

func sliceVal(val []float64, lo, hi int) []float64 {
	if val == nil {
		return nil
	}
	return val[lo:hi]
}

// medianOfThreePivot returns the value of the median of idx[0], idx[mid],
// idx[last], used as the partition pivot.
func medianOfThreePivot(idx []int32) int32 {
	n := len(idx)
	a, b, c := idx[0], idx[n/2], idx[n-1]
	switch {
	case a > b:
		a, b = b, a
	}
	switch {
	case b > c:
		b, c = c, b
	}
	switch {
	case a > b:
		b = a
	}
	return b
}

func partition(idx []int32, val []float64, pivot int32) int {
	lo, hi := 0, len(idx)-1
	for lo <= hi {
		for idx[lo] < pivot {
			lo++
		}
		for idx[hi] > pivot {
			hi--
		}
		if lo <= hi {
			swap(idx, val, lo, hi)
			lo++
			hi--
		}
	}
	return lo
}

func insertionSort(idx []int32, val []float64) {
	for i := 1; i < len(idx); i++ {
		key := idx[i]
		var keyVal float64
		if val != nil {
			keyVal = val[i]
		}
		j := i - 1
		for j >= 0 && idx[j] > key {
			idx[j+1] = idx[j]
			if val != nil {
				val[j+1] = val[j]
			}
			j--
		}
		idx[j+1] = key
		if val != nil {
			val[j+1] = keyVal
		}
	}
}

func heapsort(idx []int32, val []float64) {
	n := len(idx)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(idx, val, i, n)
	}
	for i := n - 1; i > 0; i-- {
		swap(idx, val, 0, i)
		siftDown(idx, val, 0, i)
	}
}

func siftDown(idx []int32, val []float64, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && idx[child] < idx[child+1] {
			child++
		}
		if idx[root] >= idx[child] {
			return
		}
		swap(idx, val, root, child)
		root = child
	}
}

func swap(idx []int32, val []float64, i, j int) {
	idx[i], idx[j] = idx[j], idx[i]
	if val != nil {
		val[i], val[j] = val[j], val[i]
	}
}
