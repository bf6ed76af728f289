package acip

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestToEWTS(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		acip string
		ewts string
	}{
		{"KA", "ka"},
		{"KHA", "kha"},
		{"GA", "ga"},
		{"NGA", "nga"},
		{"BLA MA", "bla ma"},
		{"SANGS RGYAS", "sangs rgyas"},
		{"BSGRUBS", "bsgrubs"},
		{"BA'I", "ba'i"},
		{"TSA", "tsha"},
		{"TZA", "tsa"},
		{"DRA", "dra"},
		{"BSGRVUBS", "bsgrwubs"},
		{"L'i", "l-I"},
		{"KHAMS", "khams"},
		{"AEE", "ai"},
		{"AOO", "au"},
		{"PAn+dI", "paN+Di"},
		{"KI", "ki"},
		{"KU", "ku"},
		{"KE", "ke"},
		{"KO", "ko"},
	}
	for _, c := range cases {
		if got := ToEWTS(c.acip); got != c.ewts {
			t.Errorf("ToEWTS(%q) = %q, want %q", c.acip, got, c.ewts)
		}
	}
}

func TestToEWTSAnnotations(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		acip string
		ewts string
	}{
		{"[COMMENT] KA", " ka"},
		{"@012 KA", "ka"},
		{"KA, KHA", "ka/_kha"},
		{"KA;", "ka|"},
	}
	for _, c := range cases {
		if got := ToEWTS(c.acip); got != c.ewts {
			t.Errorf("ToEWTS(%q) = %q, want %q", c.acip, got, c.ewts)
		}
	}
}

func TestFromEWTS(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ewts string
		acip string
	}{
		{"ka", "KA"},
		{"bla ma", "BLA MA"},
		{"sangs rgyas", "SANGS RGYAS"},
		{"bsgrubs", "BSGRUBS"},
		{"ba'i", "BA'I"},
		{"tsha", "TSA"},
		{"tsa", "TZA"},
		{"ki", "KI"},
	}
	for _, c := range cases {
		if got := FromEWTS(c.ewts); got != c.acip {
			t.Errorf("FromEWTS(%q) = %q, want %q", c.ewts, got, c.acip)
		}
	}
}

func TestEWTSRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	words := []string{"KA", "BLA MA", "SANGS RGYAS", "BSGRUBS", "BA'I", "TSA", "TZA"}
	for _, w := range words {
		back := FromEWTS(ToEWTS(w))
		if back != w {
			t.Errorf("round trip %q -> %q -> %q", w, ToEWTS(w), back)
		}
	}
}

func TestToUnicode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		acip string
		want string
	}{
		{"BLA MA", "བླ་མ"},
		{"SANGS RGYAS", "སངས་རྒྱས"},
		{"BSGRUBS", "བསྒྲུབས"},
		{"KI", "ཀི"},
	}
	for _, c := range cases {
		if got := ToUnicode(c.acip, true); got != c.want {
			t.Errorf("ToUnicode(%q) = %q, want %q", c.acip, got, c.want)
		}
	}
}

func TestFromUnicode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want string
	}{
		{"བླ་མ", "BLA MA"},
		{"སངས་རྒྱས", "SANGS RGYAS"},
		{"བསྒྲུབས", "BSGRUBS"},
		{"ཀི", "KI"},
	}
	for _, c := range cases {
		if got := FromUnicode(c.in); got != c.want {
			t.Errorf("FromUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
