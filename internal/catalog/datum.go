// Package catalog implements the core data model: tagged Datums, fixed-arity
// Rows, typed schema (ColumnDef/TableDef), row storage (Distribution), and
// the process-wide SysTable catalog used for name resolution.
//
// Grounded on the teacher's sql/row_test.go and sql/core_test.go (sql.Row,
// sql.NewRow, sql.Schema shape) and on original_source's
// server/experimental/src/common/catalog.{h,cpp} for the Datum/TableDef
// field layout those tests don't show directly.
package catalog

import (
	"fmt"
	"strconv"
)

// DataType tags a Datum's alternative. The numeric value is part of the
// contract in spec.md §3.1 (it is the dispatch key's type half, and the
// ordering must not change).
type DataType uint8

const (
	TypeNull DataType = iota
	TypeBool
	TypeInt32
	TypeInt64
	TypeString
	TypeDouble
	TypeUserType
)

func (t DataType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeString:
		return "String"
	case TypeDouble:
		return "Double"
	case TypeUserType:
		return "UserType"
	default:
		return "Unknown"
	}
}

// Datum is a tagged sum of exactly the alternatives in DataType. The zero
// value is a Null datum.
type Datum struct {
	tag DataType
	b   bool
	i32 int32
	i64 int64
	s   string
	d   float64
	u   interface{}
}

// NullDatum is the distinct "no value" marker.
var NullDatum = Datum{tag: TypeNull}

func NewBool(v bool) Datum    { return Datum{tag: TypeBool, b: v} }
func NewInt32(v int32) Datum  { return Datum{tag: TypeInt32, i32: v} }
func NewInt64(v int64) Datum  { return Datum{tag: TypeInt64, i64: v} }
func NewString(v string) Datum { return Datum{tag: TypeString, s: v} }
func NewDouble(v float64) Datum { return Datum{tag: TypeDouble, d: v} }
func NewUserType(v interface{}) Datum { return Datum{tag: TypeUserType, u: v} }

func (d Datum) Type() DataType { return d.tag }
func (d Datum) IsNull() bool   { return d.tag == TypeNull }

func (d Datum) Bool() bool             { return d.b }
func (d Datum) Int32() int32           { return d.i32 }
func (d Datum) Int64() int64           { return d.i64 }
func (d Datum) Str() string            { return d.s }
func (d Datum) Double() float64        { return d.d }
func (d Datum) UserValue() interface{} { return d.u }

// rawValue returns the alternative's value as an interface{}. Null carries
// no payload, so it always returns nil. Nothing in the module calls it:
// Equals compares the per-tag fields directly.
func (d Datum) rawValue() interface{} {
	switch d.tag {
	case TypeBool:
		return d.b
	case TypeInt32:
		return d.i32
	case TypeInt64:
		return d.i64
	case TypeString:
		return d.s
	case TypeDouble:
		return d.d
	case TypeUserType:
		return d.u
	default:
		return nil
	}
}

// Equals implements Datum equality: (tag, value) pairwise.
func (d Datum) Equals(o Datum) bool {
	if d.tag != o.tag {
		return false
	}
	switch d.tag {
	case TypeNull:
		return true
	case TypeBool:
		return d.b == o.b
	case TypeInt32:
		return d.i32 == o.i32
	case TypeInt64:
		return d.i64 == o.i64
	case TypeString:
		return d.s == o.s
	case TypeDouble:
		return d.d == o.d
	case TypeUserType:
		return d.u == o.u
	default:
		return false
	}
}

// String implements fmt.Stringer by delegating to ToString.
func (d Datum) String() string { return d.ToString() }

// ToString renders the Datum per spec.md §3.1: "<null>" for Null, "true"/
// "false" for Bool, base-10 without separators for numerics.
func (d Datum) ToString() string {
	switch d.tag {
	case TypeNull:
		return "<null>"
	case TypeBool:
		if d.b {
			return "true"
		}
		return "false"
	case TypeInt32:
		return strconv.FormatInt(int64(d.i32), 10)
	case TypeInt64:
		return strconv.FormatInt(d.i64, 10)
	case TypeString:
		return d.s
	case TypeDouble:
		return strconv.FormatFloat(d.d, 'g', -1, 64)
	case TypeUserType:
		return "<opaque>"
	default:
		return fmt.Sprintf("<unknown:%d>", d.tag)
	}
}
