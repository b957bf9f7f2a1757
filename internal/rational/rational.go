// Package rational provides an immutable exact fraction type.
//
// Values are always stored in lowest terms with a positive denominator, so two
// Rationals that denote the same number have the same representation. Numerator and
// denominator are arbitrary precision; arithmetic never overflows.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidArgument is returned when a zero denominator is requested, directly or
// through Div.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Rational is a reduced fraction. The zero value is 0/1 and ready to use.
// Rationals never share or mutate their integers once built, so they are safe for
// concurrent use.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New builds n/d in lowest terms.
func New(n, d int64) (Rational, error) {
	return NewBig(big.NewInt(n), big.NewInt(d))
}

// MustNew is like New but panics on a zero denominator.
func MustNew(n, d int64) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// NewBig builds n/d in lowest terms. The arguments are not retained.
func NewBig(n, d *big.Int) (Rational, error) {
	if n == nil || d == nil {
		return Rational{}, fmt.Errorf("rational: nil operand: %w", ErrInvalidArgument)
	}
	if d.Sign() == 0 {
		return Rational{}, fmt.Errorf("rational: zero denominator: %w", ErrInvalidArgument)
	}

	num := new(big.Int).Set(n)
	den := new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	// den != 0, so the gcd is defined and positive.
	g, _ := GCD(num, den)
	num.Quo(num, g)
	den.Quo(den, g)
	return Rational{num: num, den: den}, nil
}

// GCD returns the greatest common divisor of |a| and |b| using the iterative
// Euclidean algorithm. GCD(0, 0) is undefined and reported as ErrInvalidArgument.
func GCD(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("rational: nil operand: %w", ErrInvalidArgument)
	}
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, fmt.Errorf("rational: gcd(0, 0) is undefined: %w", ErrInvalidArgument)
	}

	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	t := new(big.Int)
	for y.Sign() != 0 {
		t.Rem(x, y)
		x, y, t = y, t, x
	}
	return x, nil
}

// Parse reads "a/b" or a bare integer "a".
func Parse(s string) (Rational, error) {
	in := strings.TrimSpace(s)
	numStr, denStr, hasSlash := strings.Cut(in, "/")
	if !hasSlash {
		denStr = "1"
	}

	n, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: invalid numerator in %q: %w", s, ErrInvalidArgument)
	}
	d, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: invalid denominator in %q: %w", s, ErrInvalidArgument)
	}
	return NewBig(n, d)
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.n()) }

// Den returns a copy of the (always positive) denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.d()) }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.n().Sign() }

func (r Rational) IsZero() bool { return r.Sign() == 0 }

// Equal compares canonical forms.
func (r Rational) Equal(o Rational) bool {
	return r.n().Cmp(o.n()) == 0 && r.d().Cmp(o.d()) == 0
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	a := new(big.Int).Mul(r.n(), o.d())
	b := new(big.Int).Mul(o.n(), r.d())
	return mustReduce(a.Add(a, b), new(big.Int).Mul(r.d(), o.d()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	a := new(big.Int).Mul(r.n(), o.d())
	b := new(big.Int).Mul(o.n(), r.d())
	return mustReduce(a.Sub(a, b), new(big.Int).Mul(r.d(), o.d()))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return mustReduce(new(big.Int).Mul(r.n(), o.n()), new(big.Int).Mul(r.d(), o.d()))
}

// Div returns r / o. It fails with ErrInvalidArgument when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	return NewBig(new(big.Int).Mul(r.n(), o.d()), new(big.Int).Mul(r.d(), o.n()))
}

// String renders "<numerator>/<denominator>".
func (r Rational) String() string {
	return r.n().String() + "/" + r.d().String()
}

// MarshalText renders the same form as String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return zero
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return one
	}
	return r.den
}

// mustReduce is used where the denominator is a product of non-zero denominators.
func mustReduce(n, d *big.Int) Rational {
	r, err := NewBig(n, d)
	if err != nil {
		panic(err)
	}
	return r
}
