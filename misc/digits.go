package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	wideint "github.com/shabbyrobe/go-wideint"
)

// This is an experiment that drives wideint the way a float formatter would:
// it prints the exact decimal expansion of a float64 by extracting one
// decimal digit per division. It is not a formatter, just a way to watch the
// dividers work on real values (try --trace).

const (
	methodQuick      = "quick"
	methodReciprocal = "reciprocal"
)

type config struct {
	Float  string `short:"f" long:"float" description:"finite, non-negative value to expand" required:"true"`
	Frac   int    `short:"n" long:"frac" description:"maximum number of fractional digits" default:"40"`
	Method string `short:"m" long:"method" description:"divider used for the integer part" choice:"quick" choice:"reciprocal" default:"quick"`
	Dump   bool   `long:"dump" description:"dump the limbs of the integer part"`
	Trace  bool   `long:"trace" description:"log division steps inside wideint"`
}

func main() {
	if err := run(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			// go-flags has already printed the usage or the parse error.
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run() error {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return err
	}

	f, err := strconv.ParseFloat(cfg.Float, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fmt.Errorf("value must be finite and non-negative, found %v", f)
	}

	if cfg.Trace {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("WIDE")
		logger.SetLevel(slog.LevelTrace)
		wideint.UseLogger(logger)
	}

	if cfg.Dump {
		spew.Dump(wideint.NewFromFloat64(f).Limbs())
	}

	out, err := expand(f, cfg.Frac, cfg.Method)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// expand returns the decimal expansion of f, truncated after maxFrac
// fractional digits.
func expand(f float64, maxFrac int, method string) (string, error) {
	intPart := wideint.NewFromFloat64(f)

	var sb strings.Builder
	switch method {
	case methodQuick:
		intDigitsQuick(&sb, intPart)
	case methodReciprocal:
		intDigitsReciprocal(&sb, intPart)
	default:
		return "", fmt.Errorf("unknown method %q", method)
	}

	if maxFrac > 0 {
		fracDigits(&sb, f, maxFrac)
	}
	return sb.String(), nil
}

// intDigitsQuick writes v one digit at a time, dividing by descending powers
// of ten. Each remainder is below ten times the next power, so every quotient
// is a single digit.
func intDigitsQuick(sb *strings.Builder, v *wideint.Uint) {
	if v.IsZero() {
		sb.WriteByte('0')
		return
	}

	pows := []*wideint.Uint{wideint.New(1)}
	for {
		next := new(wideint.Uint).Set(pows[len(pows)-1])
		next.MulUint32(10)
		if next.GreaterThan(v) {
			break
		}
		pows = append(pows, next)
	}

	var cur, q, r wideint.Uint
	cur.Set(v)
	for k := len(pows) - 1; k >= 0; k-- {
		q.QuickQuoRem(&cur, pows[k], &r)
		sb.WriteByte(byte('0' + q.Uint64()))
		cur.Set(&r)
	}
}

// intDigitsReciprocal splits v into base 10**9 chunks using the full-size
// reciprocal divider, most significant chunk last.
func intDigitsReciprocal(sb *strings.Builder, v *wideint.Uint) {
	chunk := wideint.New(1e9)

	var chunks []uint64
	var cur, q, r wideint.Uint
	cur.Set(v)
	for {
		q.QuoRem(&cur, chunk, &r)
		chunks = append(chunks, r.Uint64())
		if q.IsZero() {
			break
		}
		cur.Set(&q)
	}

	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(sb, "%09d", chunks[i])
	}
}

// fracDigits writes the fractional digits of f. With f == mant * 2**-s, the
// fraction is (mant mod 2**s) / 2**s; multiplying the numerator by ten and
// dividing out the denominator yields one digit per step.
func fracDigits(sb *strings.Builder, f float64, maxFrac int) {
	frac, exp := math.Frexp(f)
	shift := exp - 53
	if f == 0 || shift >= 0 {
		return
	}
	s := uint(-shift)

	var num, den, whole, t wideint.Uint
	num.SetUint64(uint64(frac * (1 << 53)))
	whole.Rsh(&num, s)
	t.Lsh(&whole, s)
	num.DecrementBy(&t)
	if num.IsZero() {
		return
	}
	den.Lsh(wideint.New(1), s)

	sb.WriteByte('.')
	for i := 0; i < maxFrac && !num.IsZero(); i++ {
		num.MulUint32(10)
		rem := num.DivBy(&den)
		sb.WriteByte(byte('0' + num.Uint64()))
		num.Set(&rem)
	}
}
