package wideint

// Uint is an unsigned integer of up to MaxBits bits, stored as MaxLimbs
// 32-bit limbs, least significant first. Only the first Len() limbs are
// significant; the top significant limb is never zero unless the value itself
// is zero.
//
// The zero value is ready to use and holds 0.
//
// Operations that take a result receiver and operands require the receiver
// to be distinct from the operands where documented, and panic with
// ErrAliasedBuffers otherwise. The in-place variants (IncrementBy, LshBy, ...)
// build their result in a separate accumulator and are safe to call with the
// receiver as the argument.
type Uint struct {
	words [MaxLimbs]uint32
	n     int
}

// New allocates and returns a new Uint set to v.
func New(v uint32) *Uint {
	return new(Uint).SetUint32(v)
}

// NewFromFloat64 allocates and returns a new Uint holding the exact integer
// value of f. See SetFloat64.
func NewFromFloat64(f float64) *Uint {
	return new(Uint).SetFloat64(f)
}

// len returns the number of significant limbs, treating an unset value as 0.
func (z *Uint) len() int {
	if z.n == 0 {
		return 1
	}
	return z.n
}

// Len returns the number of significant limbs in z. It is always >= 1.
func (z *Uint) Len() int { return z.len() }

// Limb returns the i'th limb of z, least significant first. Limbs at or
// above Len() are reported as 0.
func (z *Uint) Limb(i int) uint32 {
	if i < 0 || i >= z.len() {
		return 0
	}
	return z.words[i]
}

// Limbs returns a copy of the significant limbs of z, least significant
// first.
func (z *Uint) Limbs() []uint32 {
	out := make([]uint32, z.len())
	copy(out, z.words[:len(out)])
	return out
}

func (z *Uint) IsZero() bool {
	return z.len() == 1 && z.words[0] == 0
}

// setLen changes the number of significant limbs. When growing and zeroFill
// is set, the newly exposed limbs are cleared.
func (z *Uint) setLen(n int, zeroFill bool) {
	if n > MaxLimbs {
		panicCapacity(n)
	}
	old := z.len()
	if zeroFill && n > old {
		for i := old; i < n; i++ {
			z.words[i] = 0
		}
	}
	z.n = n
}

// trim drops zero limbs from the top of z, keeping at least one.
func (z *Uint) trim() {
	n := z.len()
	for n > 1 && z.words[n-1] == 0 {
		n--
	}
	z.n = n
}

// adopt takes over the significant limbs of acc, a scratch accumulator
// private to the caller.
func (z *Uint) adopt(acc *Uint) {
	n := acc.len()
	copy(z.words[:n], acc.words[:n])
	z.n = n
}

// SetUint32 sets z to v and returns z.
func (z *Uint) SetUint32(v uint32) *Uint {
	z.words[0] = v
	z.n = 1
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Uint) SetUint64(v uint64) *Uint {
	z.words[0] = uint32(v)
	z.words[1] = uint32(v >> LimbBits)
	z.n = 2
	z.trim()
	return z
}

// Set copies x into z and returns z. z and x must be distinct.
func (z *Uint) Set(x *Uint) *Uint {
	z.mustNotAlias(x)
	z.adopt(x)
	return z
}

// SetLimbs sets z to the amount limbs of x starting at limb offset, so that
// x.Limb(offset) becomes the least significant limb of z. Limbs past the
// significant length of x are taken as zero. z and x must be distinct.
func (z *Uint) SetLimbs(x *Uint, offset, amount int) *Uint {
	z.mustNotAlias(x)
	if amount > MaxLimbs {
		panicCapacity(amount)
	}
	if amount <= 0 || offset < 0 {
		return z.SetUint32(0)
	}
	xn := x.len()
	for i := 0; i < amount; i++ {
		if j := offset + i; j < xn {
			z.words[i] = x.words[j]
		} else {
			z.words[i] = 0
		}
	}
	z.n = amount
	z.trim()
	return z
}

// SetBits sets z to the value of the little-endian limbs in ws and returns z.
// Leading zero limbs in ws are ignored.
func (z *Uint) SetBits(ws []uint32) *Uint {
	n := len(ws)
	for n > 0 && ws[n-1] == 0 {
		n--
	}
	if n == 0 {
		return z.SetUint32(0)
	}
	if n > MaxLimbs {
		panicCapacity(n)
	}
	copy(z.words[:n], ws[:n])
	z.n = n
	return z
}

// Uint64 returns the low 64 bits of z.
func (z *Uint) Uint64() uint64 {
	v := uint64(z.words[0])
	if z.len() > 1 {
		v |= uint64(z.words[1]) << LimbBits
	}
	return v
}

// IsUint64 reports whether z can be represented as a uint64.
func (z *Uint) IsUint64() bool {
	return z.len() <= 2
}
