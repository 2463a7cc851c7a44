package wideint

// Lsh sets z to x << s and returns z. z and x must be distinct.
//
// The shift is split into whole limbs, inserted as zeros at the bottom, and
// a sub-limb shift whose overflow may add one limb at the top.
func (z *Uint) Lsh(x *Uint, s uint) *Uint {
	z.mustNotAlias(x)
	if x.IsZero() {
		return z.SetUint32(0)
	}

	xn := x.len()
	ws := s >> limbShift
	if ws > MaxLimbs {
		panicCapacity(MaxLimbs + 1)
	}
	nw := int(ws)
	n := xn + nw
	if n > MaxLimbs {
		panicCapacity(n)
	}

	for i := 0; i < nw; i++ {
		z.words[i] = 0
	}

	s &= limbMask
	if s == 0 {
		copy(z.words[nw:n], x.words[:xn])
		z.n = n
		return z
	}

	c := shlVU(z.words[nw:n], x.words[:xn], s)
	z.n = n
	if c != 0 {
		z.setLen(n+1, false)
		z.words[n] = c
	}
	return z
}

// Rsh sets z to x >> s and returns z. z and x must be distinct. Shifting out
// every significant limb yields 0.
func (z *Uint) Rsh(x *Uint, s uint) *Uint {
	z.mustNotAlias(x)

	xn := x.len()
	ws := s >> limbShift
	if ws >= uint(xn) {
		return z.SetUint32(0)
	}
	nw := int(ws)
	n := xn - nw
	src := x.words[nw:xn]

	s &= limbMask
	if s == 0 {
		copy(z.words[:n], src)
	} else {
		shrVU(z.words[:n], src, s)
	}
	z.n = n
	z.trim()
	return z
}

// LshBy shifts z left by s bits in place.
func (z *Uint) LshBy(s uint) *Uint {
	var acc Uint
	acc.Lsh(z, s)
	z.adopt(&acc)
	return z
}

// RshBy shifts z right by s bits in place.
func (z *Uint) RshBy(s uint) *Uint {
	var acc Uint
	acc.Rsh(z, s)
	z.adopt(&acc)
	return z
}
