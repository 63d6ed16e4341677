package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowOfLenIsNull(t *testing.T) {
	r := NewRowOfLen(3)
	require.Equal(t, 3, r.Len())
	for i := 0; i < 3; i++ {
		require.True(t, r.At(i).IsNull())
	}
}

func TestRowCloneIsDeep(t *testing.T) {
	r := NewRow(NewInt32(1), NewString("x"))
	clone := r.Clone()
	require.True(t, r.Equals(clone))

	clone.Set(0, NewInt32(99))
	require.False(t, r.Equals(clone))
	require.Equal(t, int32(1), r.At(0).Int32())
}

func TestRowEquals(t *testing.T) {
	a := NewRow(NewInt32(1), NewInt32(2))
	b := NewRow(NewInt32(1), NewInt32(2))
	c := NewRow(NewInt32(1), NewInt32(3))
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestRowPtrAtAliasesBackingArray(t *testing.T) {
	r := NewRow(NewInt32(1), NewInt32(2))
	p := r.PtrAt(1)
	r.Set(1, NewInt32(42))
	require.Equal(t, int32(42), p.Int32())
}
