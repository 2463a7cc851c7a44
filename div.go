package wideint

const divZeroMsg = "wideint: division by zero"

// divBaseCase handles x <= y, which both dividers share. It reports whether
// z and r have been set.
func (z *Uint) divBaseCase(x, y, r *Uint) bool {
	switch x.Cmp(y) {
	case -1:
		r.Set(x)
		z.SetUint32(0)
		return true
	case 0:
		r.SetUint32(0)
		z.SetUint32(1)
		return true
	}
	return false
}

// QuickQuoRem sets z to the quotient x/y and r to the remainder x%y, and
// returns (z, r). z and r must be distinct from each other and from x and y.
//
// QuickQuoRem finds a single quotient digit by estimating it from the top
// limbs and correcting the estimate, so it is only exact when both operands
// fit in one limb or when the quotient is at most 9, such as when x < 10*y in
// a decimal digit extraction loop. Use QuoRem for larger quotients.
//
// If y == 0, a division-by-zero run-time panic occurs.
func (z *Uint) QuickQuoRem(x, y, r *Uint) (*Uint, *Uint) {
	z.mustNotAlias(x, y, r)
	r.mustNotAlias(x, y)
	if y.IsZero() {
		panic(divZeroMsg)
	}
	if z.divBaseCase(x, y, r) {
		return z, r
	}

	r.Set(x)
	xn, yn := r.len(), y.len()
	xt, yt := r.words[xn-1], y.words[yn-1]

	q := uint64(xt / yt)
	if (q == 0 || q > 10) && xn > 1 {
		// The top limbs alone are unreliable; bring in the next dividend limb.
		top := uint64(xt)<<LimbBits | uint64(r.words[xn-2])
		q = top / uint64(yt)
		if q > 9 {
			q = 9
		}
	}

	if q > 0 {
		var trial Uint
		trial.Set(y)
		trial.MulUint32(uint32(q))
		for q > 0 && trial.Cmp(r) > 0 {
			trial.DecrementBy(y)
			q--
		}
		r.DecrementBy(&trial)
	}

	if r.Cmp(y) >= 0 {
		log.Tracef("quick divide: estimate %d corrected upwards", q)
		r.DecrementBy(y)
		q++
	}

	z.SetUint64(q)
	return z, r
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y using a
// Newton-Raphson reciprocal of y, and returns (z, r). z and r must be
// distinct from each other and from x and y.
//
// Unlike QuickQuoRem, the quotient may be of any size; the intermediate
// products need roughly twice the bit length of x, so x must stay under
// about MaxBits/2 bits.
//
// If y == 0, a division-by-zero run-time panic occurs.
func (z *Uint) QuoRem(x, y, r *Uint) (*Uint, *Uint) {
	z.mustNotAlias(x, y, r)
	r.mustNotAlias(x, y)
	if y.IsZero() {
		panic(divZeroMsg)
	}
	if z.divBaseCase(x, y, r) {
		return z, r
	}

	u, e := reciprocal(y, x.Log2()-y.Log2())

	var t Uint
	t.Mul(x, &u)
	z.Rsh(&t, e)
	t.Mul(y, z)
	r.Sub(x, &t)

	// u/2**e never exceeds 1/y, so z can only fall short. Dividing what is
	// left by the same reciprocal closes the gap.
	var dq Uint
	for r.Cmp(y) >= 0 {
		t.Mul(r, &u)
		dq.Rsh(&t, e)
		if dq.IsZero() {
			dq.SetUint32(1)
		}
		log.Debugf("reciprocal divide: remainder refined by %s", &dq)
		z.IncrementBy(&dq)
		t.Mul(y, &dq)
		r.DecrementBy(&t)
	}
	return z, r
}

// reciprocal returns u and e such that u/2**e approximates 1/d from below to
// more than quoBits+31 bits.
//
// Each Newton step u <- u*2**(e+1) - d*u*u doubles both the precision and the
// scale e; u is then cut back to a few guard bits over the precision reached
// (or the target, whichever is lower), which keeps the working size
// proportional to the precision rather than to the scale.
func reciprocal(d *Uint, quoBits int) (u Uint, e uint) {
	e = uint(d.Log2() + 1)
	target := 31 + quoBits

	var ush, usq, t Uint
	u.SetUint32(1)

	for prec := 1; prec <= target; {
		ush.Lsh(&u, e+1)
		usq.Mul(d, &u)
		t.Mul(&usq, &u)
		u.Sub(&ush, &t)

		e *= 2
		prec *= 2
		keep := prec
		if keep > target {
			keep = target
		}
		if excess := u.Log2() - (4 + keep); excess > 0 {
			u.RshBy(uint(excess))
			e -= uint(excess)
		}
		log.Tracef("reciprocal: %d of %d bits, scale 2**-%d", prec, target, e)
	}
	return u, e
}

// DivBy replaces z with the quotient z/y, estimated with QuickQuoRem, and
// returns the remainder. The same domain restrictions as QuickQuoRem apply.
func (z *Uint) DivBy(y *Uint) (rem Uint) {
	var q Uint
	q.QuickQuoRem(z, y, &rem)
	z.adopt(&q)
	return rem
}
