package siew

import "strconv"

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	ValNil ValueKind = iota
	ValBool
	ValNumber
	ValObj
)

// Value is a tagged runtime value, copied freely between the stack and the
// constant pool. Only the payload selected by the kind is meaningful. The
// obj variant is a non-owning reference: every object is owned by the heap
// list of the VM that allocated it.
type Value struct {
	kind ValueKind
	b    bool
	num  float64
	obj  Obj
}

// NilVal returns the nil value. It is also the zero Value.
func NilVal() Value { return Value{} }

// BoolVal wraps a boolean.
func BoolVal(b bool) Value { return Value{kind: ValBool, b: b} }

// NumberVal wraps a number.
func NumberVal(num float64) Value { return Value{kind: ValNumber, num: num} }

// ObjVal wraps a heap object reference.
func ObjVal(obj Obj) Value { return Value{kind: ValObj, obj: obj} }

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool    { return v.kind == ValNil }
func (v Value) IsBool() bool   { return v.kind == ValBool }
func (v Value) IsNumber() bool { return v.kind == ValNumber }
func (v Value) IsObj() bool    { return v.kind == ValObj }

// IsString reports whether v references a string object.
func (v Value) IsString() bool {
	if v.kind != ValObj {
		return false
	}
	_, ok := v.obj.(*ObjString)
	return ok
}

// AsBool returns the boolean payload; only valid when IsBool.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the number payload; only valid when IsNumber.
func (v Value) AsNumber() float64 { return v.num }

// AsObj returns the object payload; only valid when IsObj.
func (v Value) AsObj() Obj { return v.obj }

// AsString returns the string object payload; only valid when IsString.
func (v Value) AsString() *ObjString { return v.obj.(*ObjString) }

// isFalsey maps a value to its conditional meaning: nil and false are
// falsey, everything else (zero and the empty string included) is truthy.
func (v Value) isFalsey() bool {
	return v.kind == ValNil || (v.kind == ValBool && !v.b)
}

// valuesEqual compares per kind. Numbers compare by IEEE-754 ==, so NaN is
// not equal to itself. Objects compare by identity, which is textual
// equality for strings because all strings are interned.
func valuesEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ValNil:
		return true
	case ValBool:
		return a.b == b.b
	case ValNumber:
		return a.num == b.num
	case ValObj:
		return a.obj == b.obj
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case ValNil:
		return "nil"
	case ValBool:
		return strconv.FormatBool(v.b)
	case ValNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValObj:
		if s, ok := v.obj.(*ObjString); ok {
			return s.chars
		}
	}
	return "<invalid value>"
}
