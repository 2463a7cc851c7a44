package wideint

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
)

type fuzzOp string

// This is the equivalent of passing -wideint.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-wideint.fuzzop=add -wideint.fuzzop=sub', or
// you can use the short form '-wideint.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd         fuzzOp = "add"
	fuzzAsFloat64   fuzzOp = "asfloat64"
	fuzzBit         fuzzOp = "bit"
	fuzzBitLen      fuzzOp = "bitlen"
	fuzzCmp         fuzzOp = "cmp"
	fuzzDivBy       fuzzOp = "divby"
	fuzzFromFloat64 fuzzOp = "fromfloat64"
	fuzzLsh         fuzzOp = "lsh"
	fuzzMul         fuzzOp = "mul"
	fuzzMulAdd      fuzzOp = "muladd"
	fuzzQuickQuoRem fuzzOp = "quickquorem"
	fuzzQuoRem      fuzzOp = "quorem"
	fuzzRsh         fuzzOp = "rsh"
	fuzzSetLimbs    fuzzOp = "setlimbs"
	fuzzSub         fuzzOp = "sub"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAsFloat64,
	fuzzBit,
	fuzzBitLen,
	fuzzCmp,
	fuzzDivBy,
	fuzzFromFloat64,
	fuzzLsh,
	fuzzMul,
	fuzzMulAdd,
	fuzzQuickQuoRem,
	fuzzQuoRem,
	fuzzRsh,
	fuzzSetLimbs,
	fuzzSub,
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	r.operands = r.operands[:0]
}

// BigUint returns a random value of up to maxBits bits and records it as an
// operand for failure reports.
func (r *rando) BigUint(maxBits int) *big.Int {
	v := randomBigUint(r.rng, maxBits)
	r.operands = append(r.operands, v)
	return v
}

// Float64 returns a finite, non-negative float64 with uniformly random bits.
func (r *rando) Float64() float64 {
	for {
		f := math.Float64frombits(r.rng.Uint64() &^ (1 << 63))
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -wideint.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG}
	var fuzzer = &fuzzUint{source: source}
	var failures = make([]int, len(runFuzzOps))

	for opIdx, op := range runFuzzOps {
		for i := 0; i < fuzzIterations; i++ {
			source.Clear()

			var err error
			switch op {
			// NEWOP: add a branch here in alphabetical order if a new op is added.
			case fuzzAdd:
				err = fuzzer.Add()
			case fuzzAsFloat64:
				err = fuzzer.AsFloat64()
			case fuzzBit:
				err = fuzzer.Bit()
			case fuzzBitLen:
				err = fuzzer.BitLen()
			case fuzzCmp:
				err = fuzzer.Cmp()
			case fuzzDivBy:
				err = fuzzer.DivBy()
			case fuzzFromFloat64:
				err = fuzzer.FromFloat64()
			case fuzzLsh:
				err = fuzzer.Lsh()
			case fuzzMul:
				err = fuzzer.Mul()
			case fuzzMulAdd:
				err = fuzzer.MulAdd()
			case fuzzQuickQuoRem:
				err = fuzzer.QuickQuoRem()
			case fuzzQuoRem:
				err = fuzzer.QuoRem()
			case fuzzRsh:
				err = fuzzer.Rsh()
			case fuzzSetLimbs:
				err = fuzzer.SetLimbs()
			case fuzzSub:
				err = fuzzer.Sub()
			default:
				panic(fmt.Errorf("unsupported op %q", op))
			}

			if err != nil {
				failures[opIdx]++
				t.Logf("%s: %s\n", op, err)
				for n, o := range source.Operands() {
					t.Logf("  operand %d: %s", n+1, o)
				}
			}
		}
	}

	for opIdx, cnt := range failures {
		if cnt > 0 {
			t.Errorf("op %s: %d/%d failed", runFuzzOps[opIdx], cnt, fuzzIterations)
		}
	}
}

func checkEqualUint(result *Uint, expected *big.Int) error {
	if result.AsBigInt().Cmp(expected) != 0 {
		return fmt.Errorf("uint(%s) != big(%s)", result, expected)
	}
	if result.Len() > 1 && result.Limb(result.Len()-1) == 0 {
		return fmt.Errorf("uint(%s) has zero top limb at length %d", result, result.Len())
	}
	return nil
}

func checkEqualInt(result int, expected int) error {
	if result != expected {
		return fmt.Errorf("%d != %d", result, expected)
	}
	return nil
}

type fuzzUint struct {
	source *rando
}

func (f fuzzUint) Add() error {
	b1, b2 := f.source.BigUint(MaxBits-1), f.source.BigUint(MaxBits-1)
	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	var rn Uint
	rn.Add(u1, u2)
	rb := new(big.Int).Add(b1, b2)
	return checkEqualUint(&rn, rb)
}

func (f fuzzUint) Sub() error {
	b1, b2 := f.source.BigUint(MaxBits), f.source.BigUint(MaxBits)
	if b1.Cmp(b2) < 0 {
		b1, b2 = b2, b1
	}
	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	var rn Uint
	rn.Sub(u1, u2)
	rb := new(big.Int).Sub(b1, b2)
	return checkEqualUint(&rn, rb)
}

func (f fuzzUint) Mul() error {
	b1, b2 := f.source.BigUint(MaxBits/2), f.source.BigUint(MaxBits/2)
	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	var rn Uint
	rn.Mul(u1, u2)
	rb := new(big.Int).Mul(b1, b2)
	return checkEqualUint(&rn, rb)
}

func (f fuzzUint) MulAdd() error {
	b1 := f.source.BigUint(MaxBits - LimbBits)
	factor, addend := f.source.rng.Uint32(), f.source.rng.Uint32()
	rn := accUintFromBigInt(b1)
	rn.MulAddUint32(factor, addend)
	rb := new(big.Int).Mul(b1, new(big.Int).SetUint64(uint64(factor)))
	rb.Add(rb, new(big.Int).SetUint64(uint64(addend)))
	return checkEqualUint(rn, rb)
}

func (f fuzzUint) Cmp() error {
	b1 := f.source.BigUint(MaxBits)
	b2 := b1
	if f.source.rng.Intn(4) != 0 {
		b2 = f.source.BigUint(MaxBits)
	}
	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	if err := checkEqualInt(u1.Cmp(u2), b1.Cmp(b2)); err != nil {
		return err
	}
	return checkEqualInt(u2.Cmp(u1), b2.Cmp(b1))
}

func (f fuzzUint) Bit() error {
	b1 := f.source.BigUint(MaxBits)
	u1 := accUintFromBigInt(b1)
	for i := 0; i < MaxBits+LimbBits; i++ {
		if err := checkEqualInt(int(u1.Bit(i)), int(b1.Bit(i))); err != nil {
			return fmt.Errorf("bit %d: %v", i, err)
		}
	}
	return nil
}

func (f fuzzUint) BitLen() error {
	b1 := f.source.BigUint(MaxBits)
	u1 := accUintFromBigInt(b1)
	if err := checkEqualInt(u1.BitLen(), b1.BitLen()); err != nil {
		return err
	}
	return checkEqualInt(u1.Log2(), b1.BitLen()-1)
}

func (f fuzzUint) Lsh() error {
	b1 := f.source.BigUint(MaxBits / 2)
	by := uint(f.source.rng.Intn(MaxBits / 2))
	u1 := accUintFromBigInt(b1)
	var rn Uint
	rn.Lsh(u1, by)
	rb := new(big.Int).Lsh(b1, by)
	if err := checkEqualUint(&rn, rb); err != nil {
		return fmt.Errorf("lsh by %d: %v", by, err)
	}
	// Shifting back must restore the operand.
	rn.RshBy(by)
	return checkEqualUint(&rn, b1)
}

func (f fuzzUint) Rsh() error {
	b1 := f.source.BigUint(MaxBits)
	by := uint(f.source.rng.Intn(MaxBits + 2*LimbBits))
	u1 := accUintFromBigInt(b1)
	var rn Uint
	rn.Rsh(u1, by)
	rb := new(big.Int).Rsh(b1, by)
	if err := checkEqualUint(&rn, rb); err != nil {
		return fmt.Errorf("rsh by %d: %v", by, err)
	}
	return nil
}

func (f fuzzUint) SetLimbs() error {
	b1 := f.source.BigUint(MaxBits)
	u1 := accUintFromBigInt(b1)
	offset := f.source.rng.Intn(MaxLimbs + 4)
	amount := f.source.rng.Intn(MaxLimbs + 1)
	var rn Uint
	rn.SetLimbs(u1, offset, amount)

	// The window is (b1 >> offset*32) mod 2**(amount*32).
	rb := new(big.Int).Rsh(b1, uint(offset*LimbBits))
	mask := new(big.Int).Lsh(big1, uint(amount*LimbBits))
	mask.Sub(mask, big1)
	rb.And(rb, mask)
	if err := checkEqualUint(&rn, rb); err != nil {
		return fmt.Errorf("setlimbs offset %d amount %d: %v", offset, amount, err)
	}
	return nil
}

func (f fuzzUint) QuickQuoRem() error {
	var b1, b2 *big.Int
	if f.source.rng.Intn(2) == 0 {
		// Both within a limb, any quotient:
		b1, b2 = f.source.BigUint(LimbBits), f.source.BigUint(LimbBits)
	} else {
		// Any width, quotient of at most one decimal digit:
		b2 = f.source.BigUint(MaxBits - 8)
		rem := new(big.Int)
		if b2.Sign() > 0 {
			rem.Rand(f.source.rng, b2)
		}
		b1 = new(big.Int).Mul(b2, big.NewInt(int64(f.source.rng.Intn(10))))
		b1.Add(b1, rem)
		f.source.operands = append(f.source.operands, b1)
	}
	if b2.Sign() == 0 {
		b2.SetInt64(1)
	}

	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	var q, r Uint
	q.QuickQuoRem(u1, u2, &r)

	bq, br := new(big.Int).QuoRem(b1, b2, new(big.Int))
	if err := checkEqualUint(&q, bq); err != nil {
		return fmt.Errorf("quotient: %v", err)
	}
	if err := checkEqualUint(&r, br); err != nil {
		return fmt.Errorf("remainder: %v", err)
	}
	return nil
}

func (f fuzzUint) DivBy() error {
	b2 := f.source.BigUint(LimbBits)
	if b2.Sign() == 0 {
		b2.SetInt64(1)
	}
	b1 := new(big.Int).Mul(b2, big.NewInt(int64(f.source.rng.Intn(10))))
	b1.Add(b1, f.source.BigUint(b2.BitLen()-1))

	rn := accUintFromBigInt(b1)
	rem := rn.DivBy(accUintFromBigInt(b2))

	bq, br := new(big.Int).QuoRem(b1, b2, new(big.Int))
	if err := checkEqualUint(rn, bq); err != nil {
		return fmt.Errorf("quotient: %v", err)
	}
	if err := checkEqualUint(&rem, br); err != nil {
		return fmt.Errorf("remainder: %v", err)
	}
	return nil
}

func (f fuzzUint) QuoRem() error {
	const maxDividendBits = 1800

	b1 := f.source.BigUint(maxDividendBits)
	b2 := f.source.BigUint(b1.BitLen())
	if b2.Sign() == 0 {
		b2.SetInt64(1)
	}

	u1, u2 := accUintFromBigInt(b1), accUintFromBigInt(b2)
	var q, r Uint
	q.QuoRem(u1, u2, &r)

	bq, br := new(big.Int).QuoRem(b1, b2, new(big.Int))
	if err := checkEqualUint(&q, bq); err != nil {
		return fmt.Errorf("quotient: %v", err)
	}
	if err := checkEqualUint(&r, br); err != nil {
		return fmt.Errorf("remainder: %v", err)
	}
	return nil
}

func (f fuzzUint) FromFloat64() error {
	fl := f.source.Float64()
	rn := NewFromFloat64(fl)

	rb, _ := new(big.Float).SetFloat64(fl).Int(nil)
	if err := checkEqualUint(rn, rb); err != nil {
		return fmt.Errorf("float %v: %v", fl, err)
	}

	// Every finite input survives the round trip as its integer part.
	if back := rn.Float64(); back != math.Trunc(fl) {
		return fmt.Errorf("float %v: round trip gave %v, expected %v", fl, back, math.Trunc(fl))
	}
	return nil
}

func (f fuzzUint) AsFloat64() error {
	b1 := f.source.BigUint(MaxBits)
	u1 := accUintFromBigInt(b1)
	result := u1.Float64()
	expected, _ := new(big.Float).SetInt(b1).Float64()
	if result != expected {
		return fmt.Errorf("float64(%s) = %v, expected %v", b1, result, expected)
	}
	return nil
}
