package bigint

import "testing"

func mustFrom(t *testing.T, s string) BigInt {
	t.Helper()
	v, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return v
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b, sum, diff string
	}{
		{"1", "1", "2", "0"},
		{"0", "0", "0", "0"},
		{"-1", "1", "0", "-2"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891", "123456789012345678901234567889"},
		{"-123456789012345678901234567890", "-1", "-123456789012345678901234567891", "-123456789012345678901234567889"},
		{"4294967295", "1", "4294967296", "4294967294"},
		{"-4294967296", "1", "-4294967295", "-4294967297"},
	}
	for _, tc := range tests {
		a, b := mustFrom(t, tc.a), mustFrom(t, tc.b)
		if got := a.Add(b).String(); got != tc.sum {
			t.Errorf("%s + %s = %s, want %s", tc.a, tc.b, got, tc.sum)
		}
		if got := a.Sub(b).String(); got != tc.diff {
			t.Errorf("%s - %s = %s, want %s", tc.a, tc.b, got, tc.diff)
		}
		// a must be unmutated by the by-value forms.
		if got := a.String(); got != tc.a {
			t.Errorf("operand a mutated: got %s, want %s", got, tc.a)
		}
	}
}

func TestAddSubInPlace(t *testing.T) {
	x := mustFrom(t, "10")
	x.AddInPlace(mustFrom(t, "5"))
	if got := x.String(); got != "15" {
		t.Fatalf("AddInPlace: got %s, want 15", got)
	}
	x.SubInPlace(mustFrom(t, "20"))
	if got := x.String(); got != "-5" {
		t.Fatalf("SubInPlace: got %s, want -5", got)
	}
}

func TestNegateAndNeg(t *testing.T) {
	tests := map[string]string{
		"0": "0", "1": "-1", "-1": "1",
		"123456789012345678901234567890": "-123456789012345678901234567890",
	}
	for in, want := range tests {
		x := mustFrom(t, in)
		if got := x.Neg().String(); got != want {
			t.Errorf("Neg(%s) = %s, want %s", in, got, want)
		}
		x.Negate()
		if got := x.String(); got != want {
			t.Errorf("Negate(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestZeroMinusOne(t *testing.T) {
	if got := Zero().Sub(FromInt32(1)).String(); got != "-1" {
		t.Errorf("0 - 1 = %s, want -1", got)
	}
}

func TestBitwiseIdentities(t *testing.T) {
	vals := []string{"0", "1", "-1", "255", "-255", "123456789012345678901234567890", "-123456789012345678901234567890"}
	for _, s := range vals {
		a := mustFrom(t, s)

		if !a.Not().Not().Equal(a) {
			t.Errorf("~~%s != %s", s, s)
		}
		if !a.And(a).Equal(a) {
			t.Errorf("%s & %s != %s", s, s, s)
		}
		if !a.Or(a).Equal(a) {
			t.Errorf("%s | %s != %s", s, s, s)
		}
		if !a.Xor(a).Equal(Zero()) {
			t.Errorf("%s ^ %s != 0", s, s)
		}
		if !a.And(a.Not()).Equal(Zero()) {
			t.Errorf("%s & ~%s != 0", s, s)
		}
		if !a.Or(a.Not()).Equal(FromInt32(-1)) {
			t.Errorf("%s | ~%s != -1", s, s)
		}
	}
}

func TestDeMorgan(t *testing.T) {
	a := mustFrom(t, "123456789012345678901234567890")
	b := mustFrom(t, "-987654321098765432109876543210")
	lhs := a.And(b).Not()
	rhs := a.Not().Or(b.Not())
	if !lhs.Equal(rhs) {
		t.Errorf("De Morgan failed: ~(a&b)=%s, ~a|~b=%s", lhs, rhs)
	}
}

func TestNotFromZero(t *testing.T) {
	if got := Zero().Not().String(); got != "-1" {
		t.Errorf("~0 = %s, want -1", got)
	}
	if got := mustFrom(t, "255").And(mustFrom(t, "-1")).String(); got != "255" {
		t.Errorf("255 & -1 = %s, want 255", got)
	}
}
