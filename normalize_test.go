package wylie

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestNormalizeCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"KA", "ka"},
		{"KHA", "kha"},
		{"Bla", "bla"},
		{"bla ma", "bla ma"},
		{"Tha", "Tha"},
		{"Ta", "Ta"},
		{"Ni", "Nai"},
		{"Ti", "Tai"},
		{"oM", "oM"},
		{"hUM", "hUM"},
		{"kaM ", "kaM "},
		{"kA", "kA"},
		// Capital vowels are not consonants and survive folding.
		{"BSGRUBS", "bsgrUbs"},
	}
	for _, c := range cases {
		if got := normalizeCase(c.in); got != c.want {
			t.Errorf("normalizeCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeCaseIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{"KA", "Ni", "bsgrubs", "oM ma Ni pad+me hUM", "Tha"}
	for _, in := range inputs {
		once := normalizeCase(in)
		if twice := normalizeCase(once); twice != once {
			t.Errorf("normalizeCase not idempotent on %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeCaseNonASCII(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := normalizeCase("ka བ ma"); got != "ka བ ma" {
		t.Errorf("non-ASCII runes should pass through, got %q", got)
	}
}
