package linalg

import "errors"

// ErrDivisionByZero is the panic value raised by Vec3.Div, the scalar Div
// and Normalize when the divisor would be zero. The Checked variants
// return it instead of panicking.
var ErrDivisionByZero = errors.New("linalg: division by zero")

// checkDivide converts an ErrDivisionByZero panic from the trusted
// operators into an error return. Any other panic is re-raised.
func checkDivide(err *error) {
	v := recover()
	if v == nil {
		return
	}
	e, ok := v.(error)
	if !ok || !errors.Is(e, ErrDivisionByZero) {
		panic(v)
	}
	*err = e
}

// DivChecked is the fallible form of Vec3.Div: a divisor with a zero
// component returns ErrDivisionByZero instead of panicking. On success
// the result is identical to Div's.
func (v Vec3) DivChecked(o Vec3) (res Vec3, err error) {
	defer checkDivide(&err)
	return v.Div(o), nil
}

// DivChecked is the fallible form of the scalar Div.
func DivChecked[S Scalar](v Vec3, s S) (res Vec3, err error) {
	defer checkDivide(&err)
	return Div(v, s), nil
}

// NormalizeChecked is the fallible form of Normalize; the zero vector
// returns ErrDivisionByZero instead of panicking.
func NormalizeChecked(v Vec3) (res Vec3, err error) {
	defer checkDivide(&err)
	return Normalize(v), nil
}

// Must unwraps a Checked result, restoring the panicking contract of the
// trusted operators:
//
//	n := linalg.Must(linalg.NormalizeChecked(v))
func Must(v Vec3, err error) Vec3 {
	if err != nil {
		panic(err)
	}
	return v
}
