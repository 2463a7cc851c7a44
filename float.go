package wideint

import (
	"math"
)

// decompose splits a finite, non-zero f into a 53-bit integer mantissa, with
// the implicit leading bit set, and the shift that scales it back to |f|:
//
//	|f| == mant * 2**shift
//
// The exponent field is read directly. Subnormals are first scaled by 2**64
// so they present a normal exponent, which is then corrected by -64.
func decompose(f float64) (mant uint64, shift int) {
	bits := math.Float64bits(f)
	exp := int(bits>>mantBits) & expMask
	if exp == 0 {
		bits = math.Float64bits(f * subnormalScale)
		exp = int(bits>>mantBits)&expMask - 64
	}

	// frexp-style exponent, for a fraction in [0.5, 1):
	exp -= expBias - 1

	mant = bits&fracMask | 1<<mantBits
	return mant, exp - (mantBits + 1)
}

// SetFloat64 sets z to the exact integer value of f and returns z. Any
// fractional part of f is discarded by the final right shift.
//
// f must be finite; NaN and infinities give undefined results. The sign of f
// is ignored.
func (z *Uint) SetFloat64(f float64) *Uint {
	if f == 0 {
		return z.SetUint32(0)
	}

	mant, shift := decompose(f)
	z.words[0] = uint32(mant)
	z.words[1] = uint32(mant >> LimbBits)
	z.n = 2
	z.trim()

	if shift < 0 {
		z.RshBy(uint(-shift))
	} else {
		z.LshBy(uint(shift))
	}
	return z
}

// Float64 returns the float64 nearest to z, rounding half to even. Values
// beyond the float64 range return +Inf.
func (z *Uint) Float64() float64 {
	if z.len() == 1 {
		return float64(z.words[0])
	}

	blen := z.BitLen()
	if blen <= mantBits+1 {
		return float64(z.Uint64())
	}

	shift := blen - (mantBits + 1)
	mant := z.bitsAt(shift) & (1<<(mantBits+1) - 1)

	// shift-1 is the round bit; everything beneath it is sticky.
	if z.Bit(shift-1) == 1 && (mant&1 == 1 || z.anyBitBelow(shift-1)) {
		mant++ // may carry into bit 53, which is still exact
	}
	return math.Ldexp(float64(mant), shift)
}

// bitsAt returns the 64 bits of z starting at bit pos.
func (z *Uint) bitsAt(pos int) uint64 {
	w := pos >> limbShift
	s := uint(pos & limbMask)
	v := uint64(z.Limb(w)) | uint64(z.Limb(w+1))<<LimbBits
	if s == 0 {
		return v
	}
	return v>>s | uint64(z.Limb(w+2))<<(64-s)
}

// anyBitBelow reports whether any bit of z under bit pos is set.
func (z *Uint) anyBitBelow(pos int) bool {
	w := pos >> limbShift
	for i := 0; i < w; i++ {
		if z.words[i] != 0 {
			return true
		}
	}
	s := uint(pos & limbMask)
	return s != 0 && z.words[w]&(1<<s-1) != 0
}
