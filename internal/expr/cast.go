package expr

import (
	"github.com/spf13/cast"

	"github.com/andb/andb/internal/catalog"
)

// castToFloat64 widens an Int32 Datum to float64 for the mixed Int32/Double
// dispatch entries. Uses spf13/cast rather than a hand-rolled
// float64(d.Int32()) switch so the same helper generalizes if the dispatch
// table grows more mixed-numeric entries (Int64/Double, etc.) — see
// SPEC_FULL.md §B.
func castToFloat64(d catalog.Datum) (float64, error) {
	switch d.Type() {
	case catalog.TypeInt32:
		return cast.ToFloat64E(d.Int32())
	case catalog.TypeInt64:
		return cast.ToFloat64E(d.Int64())
	case catalog.TypeDouble:
		return d.Double(), nil
	default:
		return cast.ToFloat64E(d.ToString())
	}
}
