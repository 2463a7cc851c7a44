package wideint

import "math/bits"

// Elementary operations on limbs, used by the vector loops in add.go, mul.go
// and shift.go.

// z1<<32 + z0 = x*y + c
func mulAddWWW(x, y, c uint32) (z1, z0 uint32) {
	p := uint64(x)*uint64(y) + uint64(c)
	return uint32(p >> LimbBits), uint32(p)
}

// mulAddVWW sets z to x*y + r and returns the carry out of the top limb.
func mulAddVWW(z, x []uint32, y, r uint32) (c uint32) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW adds x*y to z and returns the carry out of the top limb.
func addMulVVW(z, x []uint32, y uint32) (c uint32) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc uint32
		z[i], cc = bits.Add32(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// addVV sets z to x+y over the length of y, then propagates the carry
// through the remainder of x. len(x) must be >= len(y).
func addVV(z, x, y []uint32) (c uint32) {
	i := 0
	for ; i < len(y); i++ {
		z[i], c = bits.Add32(x[i], y[i], c)
	}
	for ; i < len(x); i++ {
		z[i], c = bits.Add32(x[i], 0, c)
	}
	return c
}

// subVV is the borrowing counterpart of addVV. x must be >= y.
func subVV(z, x, y []uint32) (b uint32) {
	i := 0
	for ; i < len(y); i++ {
		z[i], b = bits.Sub32(x[i], y[i], b)
	}
	for ; i < len(x); i++ {
		z[i], b = bits.Sub32(x[i], 0, b)
	}
	return b
}

// shlVU sets z to x<<s for 0 < s < 32 and returns the bits shifted out of
// the top limb.
func shlVU(z, x []uint32, s uint) (c uint32) {
	ŝ := LimbBits - s
	for i := 0; i < len(z) && i < len(x); i++ {
		w := x[i]
		z[i] = w<<s | c
		c = w >> ŝ
	}
	return c
}

// shrVU sets z to x>>s for 0 < s < 32. Bits from x[len(z)] are carried in if
// x is longer than z.
func shrVU(z, x []uint32, s uint) {
	ŝ := LimbBits - s
	n := len(z)
	for i := 0; i < n; i++ {
		w := x[i] >> s
		if i+1 < len(x) {
			w |= x[i+1] << ŝ
		}
		z[i] = w
	}
}
