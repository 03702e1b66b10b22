package fontobene

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestNumber(t *testing.T) {
	var tts = []struct {
		f float64
		s string
	}{
		{0.0, "0"},
		{3.0, "3"},
		{-3.0, "-3"},
		{16.0, "16"},
		{1.0, "1"},
		{1.8, "1.8"},
		{0.5, ".5"},
		{-0.5, "-.5"},
		{0.1 + 0.2, ".3"},
		{12.3456, "12.35"},
		{-7.1565053, "-7.16"},
		{1.29, "1.29"},
		{-9.8135, "-9.81"},
		{1.005, "1"}, // 1.005 is slightly below the half in binary
		{-0.004, "0"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Number(tt.f), tt.s)
		})
	}
}
