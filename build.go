package wylie

import "strings"

// buildSyllable renders syllable components as a Tibetan codepoint
// sequence, in the fixed slot order of the script. The root takes its
// subjoined form when a superscript sits above it. A token without a
// table entry renders as an empty segment; that can only happen on
// components no parser strategy produces, so it is traced rather than
// turned into an error.
func buildSyllable(syl *syllableComponents) string {
	var b strings.Builder

	if syl.prescript != "" {
		b.WriteString(baseFor(syl.prescript))
	}
	if syl.superscript != "" {
		b.WriteString(baseFor(syl.superscript))
		b.WriteString(subjoinedFor(syl.root))
	} else {
		b.WriteString(baseFor(syl.root))
	}
	for _, sub := range syl.subscriptTokens() {
		if syl.subscriptExplicit {
			b.WriteString(subjoinedFor(sub))
		} else {
			b.WriteString(subscriptFor(sub))
		}
	}
	if syl.vowel != "" && syl.vowel != "a" {
		b.WriteString(vowelSignFor(syl.vowel))
	}
	if syl.postscript1 != "" {
		b.WriteString(baseFor(syl.postscript1))
	}
	if syl.postscript2 != "" {
		b.WriteString(baseFor(syl.postscript2))
	}
	return b.String()
}

func baseFor(token string) string {
	uc, ok := consonants[token]
	if !ok {
		tracer().Errorf("no base form for consonant token %q", token)
	}
	return uc
}

func subjoinedFor(token string) string {
	uc, ok := subjoined[token]
	if !ok {
		tracer().Errorf("no subjoined form for consonant token %q", token)
	}
	return uc
}

func subscriptFor(token string) string {
	uc, ok := subscripts[token]
	if !ok {
		tracer().Errorf("no subscript form for token %q", token)
	}
	return uc
}

func vowelSignFor(token string) string {
	uc, ok := vowels[token]
	if !ok {
		tracer().Errorf("no vowel sign for token %q", token)
	}
	return uc
}
