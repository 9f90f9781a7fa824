/*
Package curry turns an n-ary function into a chain of smaller calls,
each supplying part of the argument list, with the wrapped function
invoked automatically once every required argument has been seen.

The required argument count is read from the function's type: every
declared parameter counts except a trailing variadic one. Wrapping a
function with no countable parameters fails with [InvalidArityError].

A chain starts with [New] (one argument per step) or [Flexible] (one or
more arguments per step). Each Call returns a new step value; the step
it was called on is untouched, so a partial application can be reused
as the base for several independent completions:

	add := func(a, b, c int) int { return a + b + c }

	s, err := curry.New(add)
	if err != nil {
		...
	}
	base := s.Call(1).Call(2)
	fmt.Println(base.Call(3).Out()[0]) // 6
	fmt.Println(base.Call(9).Out()[0]) // 12

The step that consumes the last required argument invokes the function
and carries its return values; Done reports that state and Out retrieves
the results. Calling an incomplete step's Run invokes the function
early, with the missing trailing arguments set to the zero value of
their parameter type:

	pick := func(a, b, c any) []any { return []any{a, b, c} }

	s, _ = curry.New(pick)
	fmt.Println(s.Call(1).Run()[0]) // [1 <nil> <nil>]

The flexible variant accepts any positive number of arguments per step,
so a four-argument function can be completed in one, two or four calls:

	f, _ := curry.Flexible(add4)
	f.Call(1, 2).Call(3, 4).Out()
	f.Call(1, 2, 3, 4).Out()

The engine performs no argument checking beyond the construction-time
arity test: supplying a value of the wrong type, or more arguments than
a flexible step has room for, is the caller's contract to keep.
*/
package curry
