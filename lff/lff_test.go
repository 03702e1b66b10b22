package lff

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestConvertLine(t *testing.T) {
	var tts = []struct {
		lff, fb string
	}{
		{"0,0;1,1,A1", "0,0;1,1,9.0"},
		{"0,0;1,1,A-1", "0,0;1,1,-9.0"},
		{"0,0;1,1,A0", "0,0;1,1,0.0"},
		{"C0042", "@0042"},
		{"Cabcd;1,2", "@ABCD;1,2"},
		{"[00c5] Å", "[00C5] Å"},
		{"plain text", "plain text"},
	}
	for _, tt := range tts {
		t.Run(tt.lff, func(t *testing.T) {
			test.T(t, convertLine(tt.lff), tt.fb)
		})
	}
}

func TestConvert(t *testing.T) {
	lff := `# Name: Test Font 2!
# Author: Someone
# Version: 1.2
# License: GPLv2

[0041] A
0,0;1,1,A1
C0042
`
	fb := `# Name: Test Font 2!
# Author: Someone
# Version: 1.2
# License: GPLv2

[format]
format = FontoBene
format_version = 0.0.0

[font]
name = Test Font 2!
id = testfont
version = 1.2
author = Someone
license = GPLv2

[0041] A
0,0;1,1,9.0
@0042
`
	var sb strings.Builder
	test.Error(t, Convert(strings.NewReader(lff), &sb))
	test.T(t, sb.String(), fb)
}

func TestConvertNoMetadata(t *testing.T) {
	lff := "\n[0041] A\n0,0;1,1\n"
	fb := `
[format]
format = FontoBene
format_version = 0.0.0

[font]
name = converted
id = converted
version = 0.0.0
author = converted
license = unknown

[0041] A
0,0;1,1
`
	var sb strings.Builder
	test.Error(t, Convert(strings.NewReader(lff), &sb))
	test.T(t, sb.String(), fb)
}
