package wylie

import (
	"strings"
	"unicode/utf8"
)

// WylieToUnicode converts EWTS text to Tibetan Unicode. Spaces become
// tsheg marks when spacesAsTsheg is set, which is the usual rendering
// of running Tibetan text; with the flag off, spaces are kept literal,
// useful for interlinear material. Characters outside the EWTS grammar
// pass through unchanged.
func WylieToUnicode(text string, spacesAsTsheg bool) string {
	normalized := normalizeCase(text)
	var out strings.Builder
	out.Grow(len(normalized) * 3)

	// lastChunk is the rendering of the most recent syllable, consulted
	// for the u-context of a following anusvara (hUM wants the sna-ldan
	// form of the mark).
	lastChunk := ""
	lastWasSyllable := false

	i := 0
	for i < len(normalized) {
		c := normalized[i]

		if c >= '0' && c <= '9' {
			out.WriteString(numerals[string(c)])
			i++
			lastWasSyllable = false
			continue
		}
		if c == ' ' {
			if spacesAsTsheg {
				out.WriteString(punctuation[" "])
			} else {
				out.WriteByte(' ')
			}
			i++
			lastWasSyllable = false
			continue
		}
		// The full stop is an invisible syllable divider: g.ya keeps
		// the y from stacking under the g.
		if c == '.' {
			i++
			continue
		}
		if uc, n := matchPunctuation(normalized[i:]); n > 0 {
			out.WriteString(uc)
			i += n
			lastWasSyllable = false
			continue
		}
		if mark, n := matchSanskritMark(normalized[i:]); n > 0 {
			out.WriteString(renderMark(mark, lastChunk))
			i += n
			continue
		}
		if uc, n := matchStandaloneVowel(normalized[i:], lastWasSyllable); n > 0 {
			out.WriteString(uc)
			i += n
			lastChunk = uc
			lastWasSyllable = true
			continue
		}
		if syl, consumed, ok := parseSyllable(normalized[i:]); ok {
			uc := buildSyllable(&syl)
			out.WriteString(uc)
			if consumed > len(normalized)-i {
				consumed = len(normalized) - i
			}
			i += consumed
			lastChunk = uc
			lastWasSyllable = true
			continue
		}
		r, size := utf8.DecodeRuneInString(normalized[i:])
		out.WriteRune(r)
		i += size
		lastWasSyllable = false
	}
	return out.String()
}

// WylieToUnicodeAll converts a batch of EWTS texts.
func WylieToUnicodeAll(texts []string, spacesAsTsheg bool) []string {
	result := make([]string, len(texts))
	for i, text := range texts {
		result[i] = WylieToUnicode(text, spacesAsTsheg)
	}
	return result
}

func matchPunctuation(text string) (string, int) {
	for _, n := range []int{2, 1} {
		if len(text) >= n {
			if uc, ok := punctuation[text[:n]]; ok {
				return uc, n
			}
		}
	}
	return "", 0
}

func matchSanskritMark(text string) (string, int) {
	for _, n := range []int{2, 1} {
		if len(text) >= n {
			if _, ok := sanskritMarks[text[:n]]; ok {
				return text[:n], n
			}
		}
	}
	return "", 0
}

// renderMark renders an anusvara or visarga spelling. The anusvara has
// an alternate codepoint used after a u-vowel syllable.
func renderMark(mark string, lastChunk string) string {
	if (mark == "M" || mark == "~M") && strings.ContainsRune(lastChunk, 0x0F74) {
		return anusvaraAfterU
	}
	return sanskritMarks[mark]
}

// matchStandaloneVowel renders a vowel that opens its own syllable, as
// in the mantra "oM". It fires only between syllables and only when the
// vowel is followed by a terminator or an uppercase letter; anything
// else is left for the syllable parser, which knows how to attach the
// vowel to a consonant.
func matchStandaloneVowel(text string, lastWasSyllable bool) (string, int) {
	if lastWasSyllable {
		return "", 0
	}
	v := vowelAt(text)
	if v == "" || v == "a" {
		return "", 0
	}
	rest := text[len(v):]
	if rest != "" && !isTerminatorByte(rest[0]) && !(rest[0] >= 'A' && rest[0] <= 'Z') {
		return "", 0
	}
	return consonants["a"] + vowels[v], len(v)
}

func isTerminatorByte(c byte) bool {
	switch c {
	case ' ', '/', '|', '\n', '\t':
		return true
	}
	return false
}
