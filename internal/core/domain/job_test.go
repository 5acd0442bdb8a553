package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFitsColumn(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"12.5", true},
		{"12.50", true},
		{"12.500", true},
		{"12.505", false},
		{"99999999.99", true},
		{"100000000", false},
		{"-99999999.99", true},
	}

	for _, tc := range cases {
		if got := FitsColumn(decimal.RequireFromString(tc.value)); got != tc.want {
			t.Errorf("FitsColumn(%s) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
