package rational

import (
	"errors"
	"math"
	"math/big"
	"sync"
	"testing"
)

func TestArithmeticScenario(t *testing.T) {
	x := MustNew(5, 2)
	y := MustNew(3, 4)

	quo, err := x.Div(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		got  Rational
		want string
	}{
		{"add", x.Add(y), "13/4"},
		{"sub", x.Sub(y), "7/4"},
		{"mul", x.Mul(y), "15/8"},
		{"div", quo, "10/3"},
	}
	for _, c := range cases {
		if c.got.String() != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, c.got)
		}
	}
}

func TestNewReduces(t *testing.T) {
	cases := []struct {
		n, d int64
		want string
	}{
		{26, 8, "13/4"},
		{14, 8, "7/4"},
		{20, 6, "10/3"},
		{7, 1, "7/1"},
		{-6, 4, "-3/2"},
		{6, -4, "-3/2"},
		{-6, -4, "3/2"},
		{1, -2, "-1/2"},
		{0, 5, "0/1"},
		{0, -5, "0/1"},
	}
	for _, c := range cases {
		r, err := New(c.n, c.d)
		if err != nil {
			t.Errorf("New(%d, %d) unexpected error: %v", c.n, c.d, err)
			continue
		}
		if r.String() != c.want {
			t.Errorf("New(%d, %d) = %s, want %s", c.n, c.d, r, c.want)
		}
		if r.Den().Sign() <= 0 {
			t.Errorf("New(%d, %d) has non-positive denominator %s", c.n, c.d, r.Den())
		}
	}
}

func TestNewZeroDenominator(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		_, err := New(n, 0)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("New(%d, 0) expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestReducedFormHasUnitGCD(t *testing.T) {
	for n := int64(-30); n <= 30; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			r := MustNew(n, d)
			g, err := GCD(r.Num(), r.Den())
			if err != nil {
				t.Fatalf("GCD(%s) unexpected error: %v", r, err)
			}
			if g.Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("New(%d, %d) = %s is not reduced (gcd %s)", n, d, r, g)
			}
		}
	}
}

func TestReductionIsIdempotent(t *testing.T) {
	r := MustNew(-84, 36)
	again, err := NewBig(r.Num(), r.Den())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Equal(r) || again.String() != r.String() {
		t.Fatalf("expected %s, got %s", r, again)
	}
}

func TestAddSubInverse(t *testing.T) {
	values := []Rational{
		MustNew(5, 2), MustNew(3, 4), MustNew(-7, 9), MustNew(0, 1), MustNew(11, -13),
	}
	for _, a := range values {
		for _, b := range values {
			if got := a.Add(b).Sub(b); !got.Equal(a) {
				t.Errorf("(%s + %s) - %s = %s, want %s", a, b, b, got, a)
			}
		}
	}
}

func TestMulDivInverse(t *testing.T) {
	values := []Rational{
		MustNew(5, 2), MustNew(3, 4), MustNew(-7, 9), MustNew(0, 1), MustNew(11, -13),
	}
	for _, a := range values {
		for _, b := range values {
			got, err := a.Mul(b).Div(b)
			if b.IsZero() {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("(%s * %s) / %s expected ErrInvalidArgument, got %v", a, b, b, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("(%s * %s) / %s unexpected error: %v", a, b, b, err)
				continue
			}
			if !got.Equal(a) {
				t.Errorf("(%s * %s) / %s = %s, want %s", a, b, b, got, a)
			}
		}
	}
}

func TestDivByZeroNumerator(t *testing.T) {
	_, err := MustNew(1, 2).Div(MustNew(0, 7))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{26, 8, 2},
		{8, 26, 2},
		{-26, 8, 2},
		{26, -8, 2},
		{0, 5, 5},
		{5, 0, 5},
		{17, 5, 1},
	}
	for _, c := range cases {
		g, err := GCD(big.NewInt(c.a), big.NewInt(c.b))
		if err != nil {
			t.Errorf("GCD(%d, %d) unexpected error: %v", c.a, c.b, err)
			continue
		}
		if g.Int64() != c.want {
			t.Errorf("GCD(%d, %d) = %s, want %d", c.a, c.b, g, c.want)
		}
	}

	if _, err := GCD(big.NewInt(0), big.NewInt(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected GCD(0, 0) to fail, got %v", err)
	}
}

func TestNoOverflow(t *testing.T) {
	big1 := MustNew(math.MaxInt64, 3)
	got := big1.Mul(big1)

	want := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64))
	if got.Num().Cmp(want) != 0 {
		t.Fatalf("expected numerator %s, got %s", want, got.Num())
	}
	if got.Den().Int64() != 9 {
		t.Fatalf("expected denominator 9, got %s", got.Den())
	}
}

func TestZeroValue(t *testing.T) {
	var z Rational
	if z.String() != "0/1" {
		t.Fatalf("expected 0/1, got %s", z)
	}
	if got := z.Add(MustNew(1, 3)); got.String() != "1/3" {
		t.Fatalf("expected 1/3, got %s", got)
	}
	if !z.Equal(MustNew(0, -9)) {
		t.Fatalf("expected zero value to equal 0/-9")
	}
}

func TestImmutability(t *testing.T) {
	r := MustNew(3, 4)
	n := r.Num()
	n.SetInt64(99)
	if r.String() != "3/4" {
		t.Fatalf("mutating Num() copy changed the value: %s", r)
	}

	src := big.NewInt(10)
	r2, _ := NewBig(src, big.NewInt(4))
	src.SetInt64(1)
	if r2.String() != "5/2" {
		t.Fatalf("mutating constructor input changed the value: %s", r2)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"5/2", "5/2", false},
		{" 26 / 8 ", "13/4", false},
		{"-3", "-3/1", false},
		{"1/-2", "-1/2", false},
		{"1/0", "", true},
		{"a/2", "", true},
		{"1/b", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Parse(%q) expected ErrInvalidArgument, got %v", c.input, err)
			}
			continue
		}
		if err != nil || got.String() != c.want {
			t.Errorf("Parse(%q) = %s, %v; want %s", c.input, got, err, c.want)
		}
	}
}

func TestSharedValuesAcrossGoroutines(t *testing.T) {
	x := MustNew(5, 2)
	y := MustNew(-3, 4)
	var zero Rational

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := x.Add(y).String(); got != "7/4" {
					errs <- "add: " + got
					return
				}
				if got := x.Mul(y).String(); got != "-15/8" {
					errs <- "mul: " + got
					return
				}
				if got := zero.Add(x).Mul(zero).String(); got != "0/1" {
					errs <- "zero: " + got
					return
				}
				if got := zero.String() + " " + x.String() + " " + y.String(); got != "0/1 5/2 -3/4" {
					errs <- "string: " + got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected result %s", e)
	}
	if x.String() != "5/2" || y.String() != "-3/4" || !zero.IsZero() {
		t.Fatalf("operands changed: x=%s y=%s zero=%s", x, y, zero)
	}
}
