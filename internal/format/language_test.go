package format

import "testing"

func TestDecodeLanguage(t *testing.T) {
	cases := []struct {
		in   [2]byte
		want string
	}{
		{[2]byte{0x55, 0xC4}, "und"},
		{[2]byte{0x15, 0xC7}, "eng"},
		{[2]byte{0x19, 0x2E}, "fin"}, // f=6 i=9 n=14 -> 0b0_00110_01001_01110
	}
	for _, c := range cases {
		if got := DecodeLanguage(c.in); got != c.want {
			t.Errorf("DecodeLanguage(%#x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeLanguageIsLowercase(t *testing.T) {
	// Any packed value must decode to bytes in 'a'-1..'z' ('`' appears for
	// zero groups); the decode is deterministic over the full 15-bit space.
	for v := 0; v < 1<<15; v += 127 {
		code := DecodeLanguage([2]byte{byte(v >> 8), byte(v)})
		if len(code) != 3 {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for i := 0; i < 3; i++ {
			if code[i] < 0x60 || code[i] > 'z' {
				t.Fatalf("code %q byte %d out of range", code, i)
			}
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	base, ok := NormalizeLanguage("eng")
	if !ok {
		t.Fatal("eng did not normalize")
	}
	if got := base.String(); got != "en" {
		t.Fatalf("base = %q, want en", got)
	}

	if _, ok := NormalizeLanguage("``a"); ok {
		t.Fatal("garbage code normalized")
	}
}
