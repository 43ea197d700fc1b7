package utils

import "testing"

func TestParseSideLength(t *testing.T) {
	cases := []struct {
		arg      string
		expected int
	}{
		{"", DefaultSideLength},
		{"   ", DefaultSideLength},
		{"abc", DefaultSideLength},
		{"12.5", DefaultSideLength},
		{"64", 64},
		{" 32 ", 32},
		{"0", 0},
		{"-5", -5},
	}
	for _, tc := range cases {
		if got := ParseSideLength(tc.arg, DefaultSideLength); got != tc.expected {
			t.Errorf("ParseSideLength(%q) = %d, expected %d", tc.arg, got, tc.expected)
		}
	}
}
