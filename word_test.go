package bigint

import "testing"

func TestTrimCanonicalForm(t *testing.T) {
	tests := []struct {
		name string
		in   []Word
		want []Word
	}{
		{"single zero stays", []Word{0}, []Word{0}},
		{"redundant zero pops", []Word{1, 0}, []Word{1}},
		{"redundant zero keeps sign bit clear", []Word{0x80000000, 0}, []Word{0x80000000, 0}},
		{"redundant ff pops", []Word{0xFFFFFFFF, 0xFFFFFFFF}, []Word{0xFFFFFFFF}},
		{"redundant ff keeps sign bit set", []Word{0x7FFFFFFF, 0xFFFFFFFF}, []Word{0x7FFFFFFF, 0xFFFFFFFF}},
		{"multiple redundant words pop", []Word{5, 0, 0, 0}, []Word{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := BigInt{d: append([]Word(nil), tc.in...)}
			x.trim()
			if len(x.d) != len(tc.want) {
				t.Fatalf("trim(%v) = %v, want %v", tc.in, x.d, tc.want)
			}
			for i := range x.d {
				if x.d[i] != tc.want[i] {
					t.Fatalf("trim(%v) = %v, want %v", tc.in, x.d, tc.want)
				}
			}
		})
	}
}

func TestGetVirtualSignExtension(t *testing.T) {
	pos := BigInt{d: []Word{1, 2}}
	if pos.get(5) != 0 {
		t.Errorf("positive get() past end = %#x, want 0", pos.get(5))
	}

	neg := BigInt{d: []Word{0xFFFFFFFE}}
	if neg.get(3) != wordMax {
		t.Errorf("negative get() past end = %#x, want 0xFFFFFFFF", neg.get(3))
	}
	if neg.get(0) != 0xFFFFFFFE {
		t.Errorf("get(0) = %#x, want 0xFFFFFFFE", neg.get(0))
	}
}

func TestSign(t *testing.T) {
	if (&BigInt{d: []Word{1}}).sign() {
		t.Error("1 should not be negative")
	}
	if !(&BigInt{d: []Word{0xFFFFFFFF}}).sign() {
		t.Error("-1 should be negative")
	}
}
