package sparse

// CSR is the row-major adjunct of a CSC matrix, built lazily on first row
// access. It exists purely to serve row-wise constraint queries; the
// matrix's canonical storage remains CSC.
type CSR struct {
	nrows, ncols int
	RowPtr       []int64
	ColIdx       []int32
	RowValues    []float64
}

// Dims reports the dimensions of the row view (same as the owning CSC).
func (r *CSR) Dims() (int, int) { return r.nrows, r.ncols }

// At scans row i for column j.
func (r *CSR) At(i, j int) float64 {
	if uint(i) >= uint(r.nrows) {
		panic(ErrRowAccess)
	}
	if uint(j) >= uint(r.ncols) {
		panic(ErrColAccess)
	}
	for k := r.RowPtr[i]; k < r.RowPtr[i+1]; k++ {
		if int(r.ColIdx[k]) == j {
			return r.RowValues[k]
		}
	}
	return 0
}

// Row returns the (colIdx, values) slices for row i without copying.
func (r *CSR) Row(i int) (colIdx []int32, values []float64) {
	if uint(i) >= uint(r.nrows) {
		panic(ErrRowAccess)
	}
	lo, hi := r.RowPtr[i], r.RowPtr[i+1]
	return r.ColIdx[lo:hi], r.RowValues[lo:hi]
}

// RowView returns the lazily-built CSR adjunct of c, building it on first
// call via a prepare/build/finalize pipeline:
//
//  1. Prepare: allocate RowPtr[m+1] (zero-filled), ColIdx[nnz], RowValues[nnz].
//  2. Build: two-pass transpose. Pass A counts entries per row via
//     RowPtr[row+1]++, then a cumulative-sum pass converts counts to starting
//     offsets (RowPtr[m] == nnz). Pass B walks columns in reverse, and the
//     non-zeros within each column in reverse, writing each (col, value)
//     into the slot immediately before the current row cursor and
//     pre-decrementing it. Reverse iteration yields ascending column
//     indices within each row without a separate sort pass.
//  3. Finalize: mark the row view ready.
//
// RowView is idempotent: a second call with the row view already built and
// the CSC unmutated since is a no-op that returns the cached adjunct.
func (c *CSC) RowView() *CSR {
	if c.rowReady && c.csr != nil {
		return c.csr
	}

	nnz := len(c.Values)
	rowPtr := make([]int64, c.nrows+1)
	colIdx := make([]int32, nnz)
	rowValues := make([]float64, nnz)

	// Pass A: count entries per row.
	for _, row := range c.RowIdx {
		rowPtr[row+1]++
	}
	// Cumulative sum: counts -> starting offsets.
	for i := 0; i < c.nrows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	cursor := make([]int64, c.nrows)
	copy(cursor, rowPtr[1:])

	// Pass B: reverse column order, reverse within-column order.
	for j := c.ncols - 1; j >= 0; j-- {
		lo, hi := c.ColPtr[j], c.ColPtr[j+1]
		for k := hi - 1; k >= lo; k-- {
			row := c.RowIdx[k]
			cursor[row]--
			pos := cursor[row]
			colIdx[pos] = int32(j)
			rowValues[pos] = c.Values[k]
		}
	}

	c.csr = &CSR{nrows: c.nrows, ncols: c.ncols, RowPtr: rowPtr, ColIdx: colIdx, RowValues: rowValues}
	c.rowReady = true
	return c.csr
}
