package wylie

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestWylieToUnicodeLetters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"k", "ཀ"},
		{"kh", "ཁ"},
		{"ng", "ང"},
		{"ny", "ཉ"},
		{"tsh", "ཚ"},
		{"dz", "ཛ"},
		{"zh", "ཞ"},
		{"'", "འ"},
		{"a", "ཨ"},
		{"ki", "ཀི"},
		{"ku", "ཀུ"},
		{"ke", "ཀེ"},
		{"ko", "ཀོ"},
		{"kA", "ཀཱ"},
		{"k-i", "ཀྀ"},
	}
	for _, c := range cases {
		if got := WylieToUnicode(c.in, true); got != c.want {
			t.Errorf("WylieToUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWylieToUnicodeStacks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"kya", "ཀྱ"},
		{"kra", "ཀྲ"},
		{"bla", "བླ"},
		{"dwa", "དྭ"},
		{"rka", "རྐ"},
		{"lka", "ལྐ"},
		{"ska", "སྐ"},
		{"sga", "སྒ"},
		{"grwa", "གྲྭ"},
		{"phywa", "ཕྱྭ"},
		{"rgyal", "རྒྱལ"},
		{"bsgrubs", "བསྒྲུབས"},
		{"slob", "སློབ"},
		{"sla", "སླ"},
		{"'di", "འདི"},
		{"dga'", "དགའ"},
		{"mkhyen", "མཁྱེན"},
	}
	for _, c := range cases {
		if got := WylieToUnicode(c.in, true); got != c.want {
			t.Errorf("WylieToUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWylieToUnicodeWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"bla ma", "བླ་མ"},
		{"sangs rgyas", "སངས་རྒྱས"},
		{"byang chub", "བྱང་ཆུབ"},
		{"bde ba", "བདེ་བ"},
		{"bkra shis", "བཀྲ་ཤིས"},
		{"ba'i", "བའི"},
		{"khams", "ཁམས"},
	}
	for _, c := range cases {
		if got := WylieToUnicode(c.in, true); got != c.want {
			t.Errorf("WylieToUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWylieToUnicodeMantra(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	got := WylieToUnicode("oM ma Ni pad+me hUM", true)
	want := "ཨོཾ་མ་ཎི་པདྨེ་ཧཱུྃ"
	if got != want {
		t.Errorf("mantra = %q, want %q", got, want)
	}
	// Implicit m-subscript spelling with closing shad.
	got = WylieToUnicode("oM ma Ni pa dme hUM|", true)
	want = "ཨོཾ་མ་ཎི་པ་དྨེ་ཧཱུྃ།"
	if got != want {
		t.Errorf("mantra = %q, want %q", got, want)
	}
}

func TestWylieToUnicodeDivider(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// The full stop keeps y from stacking: g.ya is two letters, gya one
	// stack.
	if got := WylieToUnicode("g.ya", true); got != "གཡ" {
		t.Errorf("g.ya = %q, want གཡ", got)
	}
	if got := WylieToUnicode("gya", true); got != "གྱ" {
		t.Errorf("gya = %q, want གྱ", got)
	}
}

func TestWylieToUnicodeExplicitStack(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// The postscript reading of the d must lose against the following
	// explicit stack.
	if got := WylieToUnicode("pad+me", true); got != "པདྨེ" {
		t.Errorf("pad+me = %q, want པདྨེ", got)
	}
	if got := WylieToUnicode("paN+Di", true); got == "" {
		t.Errorf("paN+Di rendered empty")
	}
}

func TestWylieToUnicodeDigitsAndPunctuation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"2026", "༢༠༢༦"},
		{"/", "།"},
		{"//", "༎"},
		{"|", "།"},
		{"!", "༈"},
		{"bkra shis/", "བཀྲ་ཤིས།"},
	}
	for _, c := range cases {
		if got := WylieToUnicode(c.in, true); got != c.want {
			t.Errorf("WylieToUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWylieToUnicodeSpacesKept(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := WylieToUnicode("bla ma", false); got != "བླ མ" {
		t.Errorf("bla ma with literal spaces = %q", got)
	}
}

func TestWylieToUnicodePassthrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := WylieToUnicode("(x)", true); got != "(x)" {
		t.Errorf("unknown characters should pass through, got %q", got)
	}
}

func TestWylieToUnicodeAll(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	got := WylieToUnicodeAll([]string{"bla ma", "sangs rgyas"}, true)
	want := []string{"བླ་མ", "སངས་རྒྱས"}
	if len(got) != len(want) {
		t.Fatalf("batch length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("batch[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	words := []string{
		"bsgrubs", "bla ma", "sangs rgyas", "byang chub", "bde ba",
		"rgyal", "dga'", "mkhyen", "khams", "'di", "ba'i", "grwa",
		"slob", "bkra shis",
	}
	for _, w := range words {
		uc := WylieToUnicode(w, true)
		back := UnicodeToWylie(uc)
		if back != w {
			t.Errorf("round trip %q -> %q -> %q", w, uc, back)
		}
	}
}
