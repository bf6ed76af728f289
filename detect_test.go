package wylie

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestDetectDirection(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		in   string
		want Direction
	}{
		{"bla ma", EWTSInput},
		{"bkra shis bde legs", EWTSInput},
		{"", EWTSInput},
		{"བླ་མ", TibetanInput},
		{"བཀྲ་ཤིས་བདེ་ལེགས།", TibetanInput},
		{"note: བླ་མ", TibetanInput},
		{"mostly latin with one བ letter inside a long sentence", EWTSInput},
	}
	for _, c := range cases {
		if got := DetectDirection(c.in); got != c.want {
			t.Errorf("DetectDirection(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if EWTSInput.String() != "ewts" || TibetanInput.String() != "tibetan" {
		t.Errorf("Direction strings = %s, %s", EWTSInput, TibetanInput)
	}
}
