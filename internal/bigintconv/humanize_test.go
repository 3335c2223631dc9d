package bigintconv

import "testing"

func TestCommaGrouping(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"-1", "-1"},
		{"123", "123"},
		{"1234567890123456789", "1,234,567,890,123,456,789"},
		{"-1234567890123456789", "-1,234,567,890,123,456,789"},
	}
	for _, tc := range tests {
		got, err := Comma(tc.in)
		if err != nil {
			t.Fatalf("Comma(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Comma(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCommaInvalidInput(t *testing.T) {
	if _, err := Comma("not-a-number"); err == nil {
		t.Fatal("Comma of invalid literal should return an error")
	}
}
