package common

import "reflect"

// Identical reports whether a and b are the same value for change detection.
// Comparable values are compared with ==. Maps, slices, funcs, channels and
// pointers are compared by reference, so a container mutated in place is not
// considered changed; watch its members instead.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if va.Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}
