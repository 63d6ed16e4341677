package catalog

// Row is a fixed-length ordered sequence of Datums. Length is fixed at
// construction; indexing is by ordinal.
type Row struct {
	datums []Datum
}

// NewEmptyRow builds a zero-length Row.
func NewEmptyRow() Row { return Row{datums: nil} }

// NewRowOfLen builds a Row of length n, every slot initialized to Null.
func NewRowOfLen(n int) Row {
	d := make([]Datum, n)
	for i := range d {
		d[i] = NullDatum
	}
	return Row{datums: d}
}

// NewRow builds a Row from the given Datums, taking ownership of the slice
// (callers must not mutate it afterwards).
func NewRow(datums ...Datum) Row {
	return Row{datums: datums}
}

// Clone deep-copies r; the result shares no backing array with r.
func (r Row) Clone() Row {
	d := make([]Datum, len(r.datums))
	copy(d, r.datums)
	return Row{datums: d}
}

// Len returns the row's fixed arity.
func (r Row) Len() int { return len(r.datums) }

// At returns the Datum at ordinal i.
func (r Row) At(i int) Datum { return r.datums[i] }

// PtrAt returns a pointer into the row's backing storage at ordinal i, used
// by the evaluator to alias a ColExpr's slot onto the row's Datum with no
// copy (spec.md §4.3).
func (r Row) PtrAt(i int) *Datum { return &r.datums[i] }

// Set overwrites the Datum at ordinal i.
func (r Row) Set(i int, d Datum) { r.datums[i] = d }

// IsZero reports whether r is the unset (nil-backed) Row, used as the
// null-row EOF sentinel threaded through the physical executor's callback
// protocol (spec.md §4.5).
func (r Row) IsZero() bool { return r.datums == nil }

// Equals implements positional elementwise Row equality.
func (r Row) Equals(o Row) bool {
	if len(r.datums) != len(o.datums) {
		return false
	}
	for i := range r.datums {
		if !r.datums[i].Equals(o.datums[i]) {
			return false
		}
	}
	return true
}
