package wideint

type RandSource interface {
	Uint64() uint64
}

// RandUint generates a random Uint of exactly limbs significant limbs (or 0
// if limbs < 1) from an external source.
func RandUint(source RandSource, limbs int) (out Uint) {
	if limbs < 1 {
		return out
	}
	if limbs > MaxLimbs {
		panicCapacity(limbs)
	}
	for i := 0; i < limbs; i += 2 {
		v := source.Uint64()
		out.words[i] = uint32(v)
		if i+1 < limbs {
			out.words[i+1] = uint32(v >> LimbBits)
		}
	}
	if out.words[limbs-1] == 0 {
		out.words[limbs-1] = 1
	}
	out.n = limbs
	return out
}

// Larger returns whichever of a and b holds the larger value.
func Larger(a, b *Uint) *Uint {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

// Smaller returns whichever of a and b holds the smaller value.
func Smaller(a, b *Uint) *Uint {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
