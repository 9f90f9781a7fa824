// Package curryfn provides compile-time-arity counterparts to the
// reflection-based curry package: conversions between multi-argument
// functions and chains of single-argument functions, and partial
// application of the leading argument, for functions of two to six
// parameters.
//
// Because the argument count is part of the function's type, no
// runtime arity inspection happens and no error surface exists.
package curryfn

// Curry2 converts f into a chain of single-argument calls:
// Curry2(f)(a1)(a2) == f(a1, a2).
func Curry2[A1, A2, R any](f func(A1, A2) R) func(A1) func(A2) R {
	return func(a1 A1) func(A2) R {
		return func(a2 A2) R {
			return f(a1, a2)
		}
	}
}

// Curry3 converts f into a chain of single-argument calls.
func Curry3[A1, A2, A3, R any](f func(A1, A2, A3) R) func(A1) func(A2) func(A3) R {
	return func(a1 A1) func(A2) func(A3) R {
		return func(a2 A2) func(A3) R {
			return func(a3 A3) R {
				return f(a1, a2, a3)
			}
		}
	}
}

// Curry4 converts f into a chain of single-argument calls.
func Curry4[A1, A2, A3, A4, R any](f func(A1, A2, A3, A4) R) func(A1) func(A2) func(A3) func(A4) R {
	return func(a1 A1) func(A2) func(A3) func(A4) R {
		return func(a2 A2) func(A3) func(A4) R {
			return func(a3 A3) func(A4) R {
				return func(a4 A4) R {
					return f(a1, a2, a3, a4)
				}
			}
		}
	}
}

// Curry5 converts f into a chain of single-argument calls.
func Curry5[A1, A2, A3, A4, A5, R any](f func(A1, A2, A3, A4, A5) R) func(A1) func(A2) func(A3) func(A4) func(A5) R {
	return func(a1 A1) func(A2) func(A3) func(A4) func(A5) R {
		return func(a2 A2) func(A3) func(A4) func(A5) R {
			return func(a3 A3) func(A4) func(A5) R {
				return func(a4 A4) func(A5) R {
					return func(a5 A5) R {
						return f(a1, a2, a3, a4, a5)
					}
				}
			}
		}
	}
}

// Curry6 converts f into a chain of single-argument calls.
func Curry6[A1, A2, A3, A4, A5, A6, R any](f func(A1, A2, A3, A4, A5, A6) R) func(A1) func(A2) func(A3) func(A4) func(A5) func(A6) R {
	return func(a1 A1) func(A2) func(A3) func(A4) func(A5) func(A6) R {
		return func(a2 A2) func(A3) func(A4) func(A5) func(A6) R {
			return func(a3 A3) func(A4) func(A5) func(A6) R {
				return func(a4 A4) func(A5) func(A6) R {
					return func(a5 A5) func(A6) R {
						return func(a6 A6) R {
							return f(a1, a2, a3, a4, a5, a6)
						}
					}
				}
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2:
// Uncurry2(Curry2(f))(a1, a2) == f(a1, a2).
func Uncurry2[A1, A2, R any](f func(A1) func(A2) R) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return f(a1)(a2)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A1, A2, A3, R any](f func(A1) func(A2) func(A3) R) func(A1, A2, A3) R {
	return func(a1 A1, a2 A2, a3 A3) R {
		return f(a1)(a2)(a3)
	}
}

// Uncurry4 is the inverse of Curry4.
func Uncurry4[A1, A2, A3, A4, R any](f func(A1) func(A2) func(A3) func(A4) R) func(A1, A2, A3, A4) R {
	return func(a1 A1, a2 A2, a3 A3, a4 A4) R {
		return f(a1)(a2)(a3)(a4)
	}
}

// Uncurry5 is the inverse of Curry5.
func Uncurry5[A1, A2, A3, A4, A5, R any](f func(A1) func(A2) func(A3) func(A4) func(A5) R) func(A1, A2, A3, A4, A5) R {
	return func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
		return f(a1)(a2)(a3)(a4)(a5)
	}
}

// Uncurry6 is the inverse of Curry6.
func Uncurry6[A1, A2, A3, A4, A5, A6, R any](f func(A1) func(A2) func(A3) func(A4) func(A5) func(A6) R) func(A1, A2, A3, A4, A5, A6) R {
	return func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) R {
		return f(a1)(a2)(a3)(a4)(a5)(a6)
	}
}

// Apply2 fixes the first argument of f:
// Apply2(f, a1)(a2) == f(a1, a2).
func Apply2[A1, A2, R any](f func(A1, A2) R, a1 A1) func(A2) R {
	return func(a2 A2) R {
		return f(a1, a2)
	}
}

// Apply3 fixes the first argument of f.
func Apply3[A1, A2, A3, R any](f func(A1, A2, A3) R, a1 A1) func(A2, A3) R {
	return func(a2 A2, a3 A3) R {
		return f(a1, a2, a3)
	}
}

// Apply4 fixes the first argument of f.
func Apply4[A1, A2, A3, A4, R any](f func(A1, A2, A3, A4) R, a1 A1) func(A2, A3, A4) R {
	return func(a2 A2, a3 A3, a4 A4) R {
		return f(a1, a2, a3, a4)
	}
}

// Apply5 fixes the first argument of f.
func Apply5[A1, A2, A3, A4, A5, R any](f func(A1, A2, A3, A4, A5) R, a1 A1) func(A2, A3, A4, A5) R {
	return func(a2 A2, a3 A3, a4 A4, a5 A5) R {
		return f(a1, a2, a3, a4, a5)
	}
}

// Apply6 fixes the first argument of f.
func Apply6[A1, A2, A3, A4, A5, A6, R any](f func(A1, A2, A3, A4, A5, A6) R, a1 A1) func(A2, A3, A4, A5, A6) R {
	return func(a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) R {
		return f(a1, a2, a3, a4, a5, a6)
	}
}
