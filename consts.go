package wideint

const (
	// MaxLimbs is the fixed capacity of a Uint, in limbs.
	MaxLimbs = 128

	// LimbBits is the width of a single limb.
	LimbBits = 32

	// MaxBits is the largest bit length a Uint can hold.
	MaxBits = MaxLimbs * LimbBits

	limbShift = 5 // log2(LimbBits)
	limbMask  = LimbBits - 1

	// IEEE-754 binary64 layout.
	mantBits = 52
	expBits  = 11
	expMask  = 1<<expBits - 1
	expBias  = 1023
	fracMask = 1<<mantBits - 1

	// 2**64, used to lift subnormals into the normal range before their
	// exponent field is read.
	subnormalScale = float64(1 << 64)
)

const intSize = 32 << (^uint(0) >> 63)
