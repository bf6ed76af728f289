package wylie

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestParseSyllableSlots(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want syllableComponents
		len  int
	}{
		{"ka", syllableComponents{root: "k", vowel: "a"}, 2},
		{"bsgrubs", syllableComponents{
			prescript: "b", superscript: "s", root: "g",
			subscript: "r", vowel: "u",
			postscript1: "b", postscript2: "s",
		}, 7},
		{"rta", syllableComponents{superscript: "r", root: "t", vowel: "a"}, 3},
		{"bla", syllableComponents{root: "b", subscript: "l", vowel: "a"}, 3},
		{"'di", syllableComponents{prescript: "'", root: "d", vowel: "i"}, 3},
		{"dga'", syllableComponents{prescript: "d", root: "g", vowel: "a", postscript1: "'"}, 4},
		{"grwa", syllableComponents{root: "g", subscript: "r+w", vowel: "a"}, 4},
		{"khams", syllableComponents{root: "kh", vowel: "a", postscript1: "m", postscript2: "s"}, 5},
		{"og", syllableComponents{root: "a", vowel: "o", postscript1: "g"}, 2},
	}
	for _, c := range cases {
		got, n, ok := parseSyllable(c.in)
		if !ok {
			t.Errorf("parseSyllable(%q) failed", c.in)
			continue
		}
		if n != c.len {
			t.Errorf("parseSyllable(%q) consumed %d, want %d", c.in, n, c.len)
		}
		c.want.subscriptExplicit = got.subscriptExplicit
		if got != c.want {
			t.Errorf("parseSyllable(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSyllableStrategyChoice(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// sla must read s as superscript even though s+l is no valid stack,
	// because l subjoins under s on the page.
	got, _, ok := parseSyllable("sla")
	if !ok || got.superscript != "s" || got.root != "l" {
		t.Errorf("sla parsed as %v", got)
	}
	// sga: superscript wins over s + postscript g.
	got, n, _ := parseSyllable("sga")
	if got.superscript != "s" || got.root != "g" || n != 3 {
		t.Errorf("sga parsed as %v (len %d)", got, n)
	}
}

func TestParseSyllablePostscriptGuards(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// ba'i: the apostrophe starts the genitive particle, not a
	// postscript.
	got, n, _ := parseSyllable("ba'i")
	if n != 2 || got.postscript1 != "" {
		t.Errorf("ba'i: first syllable %v (len %d)", got, n)
	}
	// ba'am: the apostrophe stays with the 'am particle.
	got, n, _ = parseSyllable("ba'am")
	if n != 2 {
		t.Errorf("ba'am: first syllable %v (len %d)", got, n)
	}
	// pad+me: d belongs to the following explicit stack.
	got, n, _ = parseSyllable("pad+me")
	if n != 2 || got.postscript1 != "" {
		t.Errorf("pad+me: first syllable %v (len %d)", got, n)
	}
}

func TestParseSyllableExplicitStack(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	got, n, ok := parseSyllable("d+me")
	if !ok || got.root != "d" || got.subscript != "m" || !got.subscriptExplicit {
		t.Errorf("d+me parsed as %v", got)
	}
	if got.vowel != "e" || n != 4 {
		t.Errorf("d+me vowel %q, len %d", got.vowel, n)
	}
}

func TestParseSyllableConcurrent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				if _, _, ok := parseSyllable("bsgrubs"); !ok {
					t.Error("parseSyllable failed under concurrency")
				}
			}
			done <- true
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
