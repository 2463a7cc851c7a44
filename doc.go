/*
Package wideint provides Uint, a fixed-capacity unsigned integer of up to
4096 bits (128 limbs of 32 bits), for exact conversion between float64 and
integers and for the word-level arithmetic that correctly-rounded
binary/decimal conversion is built on.

Every finite float64 is an integer times a power of two, so a Uint can hold
the exact value of any float64 integer part, and scaled values of any
fraction:

	var v wideint.Uint
	v.SetFloat64(1e21)
	fmt.Println(v.Float64() == 1e21)
	// Output: true

Uint follows the math/big convention of result receivers. Operations whose
receiver is filled from its operands require them to be distinct, and panic
with ErrAliasedBuffers otherwise:

	z.Add(x, y)          // z = x + y
	z.Mul(x, y)          // z = x * y
	z.Lsh(x, 3)          // z = x << 3
	q.QuickQuoRem(x, y, r) // q = x / y, r = x % y, for single-digit quotients
	q.QuoRem(x, y, r)      // the same, for quotients of any size

The in-place variants mutate their receiver through a private accumulator:

	z.IncrementBy(x)
	z.DecrementBy(x)
	z.MulAddUint32(10, digit)
	z.LshBy(3)
	z.RshBy(3)
	rem := z.DivBy(y)

Uint has no sign. Subtracting a larger value from a smaller one, dividing by
zero, and exceeding MaxLimbs are defects in the calling algorithm: the first
yields the absolute difference, the others panic. Capacity panics wrap
ErrCapacityExceeded.

The package does no logging by default. Division tracing can be enabled with
UseLogger.
*/
package wideint
