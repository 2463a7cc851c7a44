package wideint

// Add sets z to x + y and returns z. z must be distinct from x and y.
func (z *Uint) Add(x, y *Uint) *Uint {
	return z.addOrSub(x, y, true)
}

// Sub sets z to the difference of x and y and returns z. z must be distinct
// from x and y.
//
// Uint carries no sign: the larger operand is always used as the minuend, so
// x < y is a caller error that yields y - x rather than a negative value.
func (z *Uint) Sub(x, y *Uint) *Uint {
	return z.addOrSub(x, y, false)
}

// IncrementBy adds x to z in place and returns z.
func (z *Uint) IncrementBy(x *Uint) *Uint {
	var acc Uint
	acc.addOrSub(z, x, true)
	z.adopt(&acc)
	return z
}

// DecrementBy subtracts x from z in place and returns z. x must not be
// larger than z; see Sub.
func (z *Uint) DecrementBy(x *Uint) *Uint {
	var acc Uint
	acc.addOrSub(z, x, false)
	z.adopt(&acc)
	return z
}

func (z *Uint) addOrSub(x, y *Uint, add bool) *Uint {
	z.mustNotAlias(x, y)

	cmp := x.Cmp(y)
	if cmp < 0 {
		x, y = y, x
	}
	if cmp == 0 && (!add || x.IsZero()) {
		return z.SetUint32(0)
	}

	xn, yn := x.len(), y.len()
	if !add {
		subVV(z.words[:xn], x.words[:xn], y.words[:yn])
		z.n = xn
		z.trim()
		return z
	}

	c := addVV(z.words[:xn], x.words[:xn], y.words[:yn])
	z.n = xn
	if c != 0 {
		z.setLen(xn+1, false)
		z.words[xn] = c
	}
	return z
}
