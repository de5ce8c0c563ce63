package unitcheck

import (
	"cmp"
	"reflect"
)

// order compares a against b, returning a negative, zero or positive
// result and whether the two values were orderable at all. Integer
// kinds order against integer kinds, unsigned against unsigned, floats
// against floats and strings against strings; any other combination is
// not orderable.
func order(a, b any) (int, bool) {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0, false
	}
	switch {
	case isIntKind(av.Kind()) && isIntKind(bv.Kind()):
		return cmp.Compare(av.Int(), bv.Int()), true
	case isUintKind(av.Kind()) && isUintKind(bv.Kind()):
		return cmp.Compare(av.Uint(), bv.Uint()), true
	case isFloatKind(av.Kind()) && isFloatKind(bv.Kind()):
		return cmp.Compare(av.Float(), bv.Float()), true
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return cmp.Compare(av.String(), bv.String()), true
	}
	return 0, false
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
