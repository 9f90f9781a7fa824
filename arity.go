package curry

import "reflect"

// InvalidArityError reports that a function cannot be curried because
// it declares no parameters other than, possibly, a trailing variadic
// one. It is returned by New and Flexible before any step is built.
type InvalidArityError struct {
	// Func is the type of the rejected function.
	Func reflect.Type
}

func (e *InvalidArityError) Error() string {
	return "func must have at least one argument that is not a rest parameter."
}

// arityOf returns the number of arguments a chain must accumulate for
// a function of type t: every declared parameter except a trailing
// variadic one.
func arityOf(t reflect.Type) int {
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	return n
}

// paramType returns the type expected at argument position i,
// resolving positions at or beyond a variadic parameter to its
// element type.
func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
