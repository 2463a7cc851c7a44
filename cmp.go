package wideint

import "math/bits"

// Cmp compares z and x and returns:
//
//	-1 if z <  x
//	 0 if z == x
//	+1 if z >  x
//
// A longer significant length always wins; equal lengths are decided by the
// first differing limb from the top.
func (z *Uint) Cmp(x *Uint) int {
	zn, xn := z.len(), x.len()
	if zn > xn {
		return 1
	} else if zn < xn {
		return -1
	}
	for i := zn - 1; i >= 0; i-- {
		if z.words[i] != x.words[i] {
			if z.words[i] < x.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (z *Uint) Equal(x *Uint) bool            { return z.Cmp(x) == 0 }
func (z *Uint) GreaterThan(x *Uint) bool      { return z.Cmp(x) > 0 }
func (z *Uint) GreaterOrEqualTo(x *Uint) bool { return z.Cmp(x) >= 0 }
func (z *Uint) LessThan(x *Uint) bool         { return z.Cmp(x) < 0 }
func (z *Uint) LessOrEqualTo(x *Uint) bool    { return z.Cmp(x) <= 0 }

// Log2 returns floor(log2(z)), the index of the highest set bit. Log2 of 0
// is -1.
func (z *Uint) Log2() int {
	n := z.len()
	return (n-1)*LimbBits + bits.Len32(z.words[n-1]) - 1
}

// BitLen returns the length of z in bits. BitLen of 0 is 0.
func (z *Uint) BitLen() int {
	return z.Log2() + 1
}

// Bit returns the value of the i'th bit of z.
func (z *Uint) Bit(i int) uint {
	w := i >> limbShift
	if i < 0 || w >= z.len() {
		return 0
	}
	return uint(z.words[w]>>(uint(i)&limbMask)) & 1
}
