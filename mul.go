package wideint

// MulAddUint32 sets z to z*factor + addend in place and returns z. Each limb
// product is accumulated in 64 bits, so no factor can overflow the carry.
func (z *Uint) MulAddUint32(factor, addend uint32) *Uint {
	n := z.len()
	c := mulAddVWW(z.words[:n], z.words[:n], factor, addend)
	z.n = n
	if c != 0 {
		z.setLen(n+1, false)
		z.words[n] = c
	}
	z.trim()
	return z
}

// MulUint32 multiplies z by factor in place and returns z.
func (z *Uint) MulUint32(factor uint32) *Uint {
	return z.MulAddUint32(factor, 0)
}

// Mul sets z to the product x*y and returns z. z must be distinct from x and
// y.
//
// The operand with fewer limbs drives the outer loop and its zero limbs are
// skipped, so a short factor costs a handful of carry chains over the long
// one.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.mustNotAlias(x, y)

	if x.len() < y.len() {
		x, y = y, x
	}
	xn, yn := x.len(), y.len()

	// The product of an m-limb and an n-limb value has at least m+n-1 limbs.
	n := xn + yn
	if n-1 > MaxLimbs {
		panicCapacity(n - 1)
	}

	var acc [MaxLimbs + 1]uint32
	for i := 0; i < yn; i++ {
		f := y.words[i]
		if f == 0 {
			continue
		}
		acc[i+xn] = addMulVVW(acc[i:i+xn], x.words[:xn], f)
	}

	for n > 1 && acc[n-1] == 0 {
		n--
	}
	if n > MaxLimbs {
		panicCapacity(n)
	}
	copy(z.words[:n], acc[:n])
	z.n = n
	return z
}

// MulFloat64 multiplies z in place by the exact integer value of f and
// returns z. See SetFloat64 for the accepted range of f.
func (z *Uint) MulFloat64(f float64) *Uint {
	var factor, acc Uint
	factor.SetFloat64(f)
	acc.Mul(z, &factor)
	z.adopt(&acc)
	return z
}
