package wylie

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestValidateAcceptsWellFormed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"bla ma",
		"sangs rgyas",
		"bsgrubs",
		"bkra shis bde legs/",
		"rta",
		"dga'",
		"hUM",
		"oM",
		"2026",
		"grwa",
	}
	for _, in := range inputs {
		result := Validate(in)
		if !result.Valid {
			t.Errorf("Validate(%q) invalid: %s", in, result.Summary())
		}
	}
}

func TestValidateInvalidPrescript(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := Validate("gka")
	if result.Valid {
		t.Fatal("gka should not validate")
	}
	if len(result.Errors) == 0 || result.Errors[0].Kind != InvalidPrescript {
		t.Errorf("gka errors = %v, want invalid_prescript", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Suggestion, "ny") {
		t.Errorf("suggestion should list valid roots, got %q", result.Errors[0].Suggestion)
	}
}

func TestValidateInvalidSuperscript(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := Validate("rha")
	if result.Valid {
		t.Fatal("rha should not validate")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == InvalidSuperscript {
			found = true
		}
	}
	if !found {
		t.Errorf("rha errors = %v, want invalid_superscript", result.Errors)
	}
}

func TestValidateUnknownCharacter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := Validate("bxa")
	if result.Valid {
		t.Fatal("bxa should not validate")
	}
	if result.Errors[0].Kind != UnknownCharacter {
		t.Errorf("bxa error kind = %s", result.Errors[0].Kind)
	}
	if !strings.Contains(result.Errors[0].Message, "x") {
		t.Errorf("message should name the character, got %q", result.Errors[0].Message)
	}
}

func TestValidateUnusualSubscriptWarns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := Validate("bywa")
	if !result.Valid {
		t.Fatalf("bywa should validate with a warning: %s", result.Summary())
	}
	if len(result.Warnings) == 0 || result.Warnings[0].Kind != AmbiguousParsing {
		t.Errorf("bywa warnings = %v, want ambiguous_parsing", result.Warnings)
	}
}

func TestValidatePositions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := Validate("bla gka")
	if len(result.Errors) != 1 {
		t.Fatalf("want one error, got %v", result.Errors)
	}
	if result.Errors[0].Position != 4 {
		t.Errorf("error position = %d, want 4", result.Errors[0].Position)
	}
	if result.Errors[0].Syllable != "gka" {
		t.Errorf("error syllable = %q", result.Errors[0].Syllable)
	}
}

func TestValidationSummary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := Validate("bla ma").Summary(); got != "valid EWTS" {
		t.Errorf("Summary() = %q", got)
	}
	summary := Validate("gka").Summary()
	if !strings.Contains(summary, "1 error(s)") {
		t.Errorf("Summary() = %q", summary)
	}
}

func TestErrorKindString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{UnknownCharacter, "unknown_character"},
		{InvalidPrescript, "invalid_prescript"},
		{AmbiguousParsing, "ambiguous_parsing"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}
