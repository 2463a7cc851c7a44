package wideint

import (
	"fmt"
	"math/big"
)

// SetBigInt sets z to v. If v is negative or needs more than MaxLimbs limbs,
// z is left at 0 or truncated to the low MaxBits bits respectively, and
// accurate is false.
func (z *Uint) SetBigInt(v *big.Int) (out *Uint, accurate bool) {
	if v.Sign() < 0 {
		return z.SetUint32(0), false
	}

	words := v.Bits()
	n := 0
	for _, w := range words {
		if n >= MaxLimbs {
			break
		}
		switch intSize {
		case 64:
			z.words[n] = uint32(w)
			if n+1 < MaxLimbs {
				z.words[n+1] = uint32(uint64(w) >> LimbBits)
			}
			n += 2
		case 32:
			z.words[n] = uint32(w)
			n++
		default:
			panic("wideint: unsupported bit size")
		}
	}
	if n > MaxLimbs {
		n = MaxLimbs
	}
	if n == 0 {
		return z.SetUint32(0), true
	}
	z.n = n
	z.trim()
	return z, v.BitLen() <= MaxBits
}

// IntoBigInt sets b to the value of z.
func (z *Uint) IntoBigInt(b *big.Int) {
	n := z.len()
	switch intSize {
	case 64:
		ws := make([]big.Word, (n+1)/2)
		for i := 0; i < n; i++ {
			ws[i/2] |= big.Word(z.words[i]) << (uint(i%2) * LimbBits)
		}
		b.SetBits(ws)

	case 32:
		ws := make([]big.Word, n)
		for i := 0; i < n; i++ {
			ws[i] = big.Word(z.words[i])
		}
		b.SetBits(ws)

	default:
		panic("wideint: unsupported bit size")
	}
}

func (z *Uint) AsBigInt() *big.Int {
	var v big.Int
	z.IntoBigInt(&v)
	return &v
}

func (z *Uint) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(z.AsBigInt())
}

// String renders z in base 10 through math/big. It is meant for debugging
// and tests; digit generation on top of Uint belongs to the caller.
func (z *Uint) String() string {
	if z.len() == 1 {
		return fmt.Sprint(z.words[0])
	}
	return z.AsBigInt().String()
}

func (z *Uint) Format(s fmt.State, c rune) {
	z.AsBigInt().Format(s, c)
}
