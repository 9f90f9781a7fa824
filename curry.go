package curry

import (
	"fmt"
	"reflect"
)

// chain is the accumulation core shared by both step variants. A chain
// is never mutated after construction: extend allocates a fresh
// argument slice, so older steps keep seeing their own snapshot.
type chain struct {
	fn    reflect.Value
	arity int
	args  []reflect.Value

	// out holds the wrapped function's return values once the chain
	// has accumulated arity arguments and invoked it.
	out  []any
	done bool
}

func newChain(fn any, name string) (*chain, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Sprintf("curry: %s called with %T, want a function", name, fn))
	}
	arity := arityOf(v.Type())
	if arity == 0 {
		return nil, &InvalidArityError{Func: v.Type()}
	}
	return &chain{fn: v, arity: arity}, nil
}

// extend returns a new chain holding the previous arguments followed
// by vals. When the new length reaches the required arity, the wrapped
// function is invoked with exactly the first arity values and the
// returned chain carries its results.
func (c *chain) extend(vals []any) *chain {
	args := make([]reflect.Value, len(c.args), len(c.args)+len(vals))
	copy(args, c.args)
	for _, v := range vals {
		args = append(args, argValue(c.fn.Type(), len(args), v))
	}
	next := &chain{fn: c.fn, arity: c.arity, args: args}
	if len(args) >= c.arity {
		next.out = next.invoke(args[:c.arity])
		next.done = true
	}
	return next
}

// run invokes the wrapped function now, padding the accumulated
// arguments on the right with zero values up to the required arity.
// The chain itself is left as it is.
func (c *chain) run() []any {
	args := make([]reflect.Value, c.arity)
	copy(args, c.args)
	for i := len(c.args); i < c.arity; i++ {
		args[i] = reflect.Zero(c.fn.Type().In(i))
	}
	return c.invoke(args)
}

func (c *chain) invoke(args []reflect.Value) []any {
	res := c.fn.Call(args)
	out := make([]any, len(res))
	for i, r := range res {
		out[i] = r.Interface()
	}
	return out
}

// argValue converts a supplied argument to the reflect.Value expected
// at parameter position i. A nil argument stands for an absent value
// and becomes the zero value of the parameter type.
func argValue(t reflect.Type, i int, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(paramType(t, i))
	}
	return reflect.ValueOf(v)
}

// Step is a strict step builder: every Call supplies exactly one
// argument. The zero Step is not valid; use New.
type Step struct {
	c *chain
}

// New wraps fn in a strict curry chain. The returned step accumulates
// one argument per Call until the function's required argument count
// is reached, at which point the function is invoked and the final
// step carries its results.
//
// New fails with [InvalidArityError] when fn declares no parameters
// other than a trailing variadic one. It panics if fn is not a
// function.
func New(fn any) (*Step, error) {
	c, err := newChain(fn, "New")
	if err != nil {
		return nil, err
	}
	return &Step{c: c}, nil
}

// Call returns a new step holding the previous arguments followed by
// arg. If arg completes the argument list, the wrapped function is
// invoked and the returned step is terminal: Done reports true, Out
// holds the results, and further Call or Run panics.
//
// The receiver is not modified and remains usable, so several
// independent continuations may be built from the same step.
func (s *Step) Call(arg any) *Step {
	if s.c.done {
		panic("curry: Call on a completed step")
	}
	return &Step{c: s.c.extend([]any{arg})}
}

// Run invokes the wrapped function immediately, passing the
// accumulated arguments padded on the right with zero values for the
// parameters not yet supplied, and returns the function's results.
// The step is unaffected and may continue to be extended with Call.
//
// Run panics on a completed step.
func (s *Step) Run() []any {
	if s.c.done {
		panic("curry: Run on a completed step")
	}
	return s.c.run()
}

// Done reports whether the wrapped function has been invoked by the
// step chain, making this step terminal.
func (s *Step) Done() bool { return s.c.done }

// Out returns the wrapped function's return values in order. It panics
// if the step is not complete.
func (s *Step) Out() []any {
	if !s.c.done {
		panic("curry: Out on an incomplete step")
	}
	return s.c.out
}

// Arity returns the number of arguments the chain accumulates before
// invoking the wrapped function.
func (s *Step) Arity() int { return s.c.arity }

// Len returns the number of arguments accumulated so far.
func (s *Step) Len() int { return len(s.c.args) }

// FlexStep is a flexible step builder: every Call supplies one or more
// arguments, so a chain may be completed in fewer, larger steps. The
// zero FlexStep is not valid; use Flexible.
type FlexStep struct {
	c *chain
}

// Flexible wraps fn in a flexible curry chain. It behaves like New
// except that each Call on the returned step may supply any positive
// number of arguments; the function is invoked on the Call whose
// arguments bring the accumulated total up to the required count.
//
// Supplying more arguments than the remaining positions is a contract
// violation: the invocation consumes exactly the first required-count
// values and the excess is not checked.
func Flexible(fn any) (*FlexStep, error) {
	c, err := newChain(fn, "Flexible")
	if err != nil {
		return nil, err
	}
	return &FlexStep{c: c}, nil
}

// Call returns a new step holding the previous arguments followed by
// args. If args complete the argument list, the wrapped function is
// invoked and the returned step is terminal: Done reports true, Out
// holds the results, and further Call or Run panics.
//
// The receiver is not modified and remains usable, so several
// independent continuations may be built from the same step.
func (s *FlexStep) Call(args ...any) *FlexStep {
	if s.c.done {
		panic("curry: Call on a completed step")
	}
	return &FlexStep{c: s.c.extend(args)}
}

// Run invokes the wrapped function immediately, passing the
// accumulated arguments padded on the right with zero values for the
// parameters not yet supplied, and returns the function's results.
// The step is unaffected and may continue to be extended with Call.
//
// Run panics on a completed step.
func (s *FlexStep) Run() []any {
	if s.c.done {
		panic("curry: Run on a completed step")
	}
	return s.c.run()
}

// Done reports whether the wrapped function has been invoked by the
// step chain, making this step terminal.
func (s *FlexStep) Done() bool { return s.c.done }

// Out returns the wrapped function's return values in order. It panics
// if the step is not complete.
func (s *FlexStep) Out() []any {
	if !s.c.done {
		panic("curry: Out on an incomplete step")
	}
	return s.c.out
}

// Arity returns the number of arguments the chain accumulates before
// invoking the wrapped function.
func (s *FlexStep) Arity() int { return s.c.arity }

// Len returns the number of arguments accumulated so far.
func (s *FlexStep) Len() int { return len(s.c.args) }
