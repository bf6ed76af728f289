package wylie

import (
	"strings"
	"unicode"
)

// UnicodeToWylie converts Tibetan Unicode text to EWTS. Tsheg marks
// become spaces, digits and punctuation map to their ASCII spellings,
// and each syllable's codepoints are decomposed back into the slot
// model: the subjoined block tells roots under superscripts and
// subscripts apart from base consonants, and the inherent vowel is
// re-inserted where no vowel sign was written. Codepoints outside the
// grammar pass through unchanged.
func UnicodeToWylie(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	i := 0
	for i < len(runes) {
		r := runes[i]

		if r == 0x0F0B { // tsheg
			out.WriteByte(' ')
			i++
			continue
		}
		if unicode.Is(tibetanDigitRange, r) {
			out.WriteString(revIndex.numerals[string(r)])
			i++
			continue
		}
		if revIndex.isPunctuation(r) {
			if r == 0x0F0E { // nyis shad
				out.WriteString("//")
			} else {
				out.WriteString(revIndex.punct[string(r)])
			}
			i++
			continue
		}
		if unicode.Is(syllableMarkSet, r) {
			out.WriteString(revIndex.marks[string(r)])
			i++
			continue
		}
		// Two-codepoint compounds such as the kss ligature.
		if i+1 < len(runes) {
			if w := revIndex.wylieFor(string(runes[i : i+2])); w != "" {
				out.WriteString(w)
				i += 2
				continue
			}
		}
		if w, length := decomposeSyllable(runes[i:]); length > 0 {
			out.WriteString(w)
			i += length
			continue
		}
		out.WriteRune(r)
		i++
	}
	return out.String()
}

// UnicodeToWylieAll converts a batch of Tibetan Unicode texts.
func UnicodeToWylieAll(texts []string) []string {
	result := make([]string, len(texts))
	for i, text := range texts {
		result[i] = UnicodeToWylie(text)
	}
	return result
}

func isSubjoinedCodepoint(r rune) bool {
	return unicode.Is(subjoinedConsonantRange, r)
}

// baseLetterFor returns the EWTS spelling of a base consonant with the
// inherent vowel stripped ("ga" reads back as "g", the pure-vowel
// letter stays "a").
func baseLetterFor(r rune) string {
	return stripInherentA(revIndex.consonants[string(r)])
}

var (
	reversePrescripts   = map[string]bool{"g": true, "d": true, "b": true, "m": true, "'": true}
	reverseSuperscripts = map[string]bool{"r": true, "l": true, "s": true}
)

// decomposeSyllable walks one syllable's codepoints in script order:
// prescript, superscript, root, subscripts, vowel sign, postscripts,
// trailing marks. Returns the EWTS rendering and the number of runes
// consumed, or ("", 0) if no root is found.
func decomposeSyllable(runes []rune) (string, int) {
	if len(runes) == 0 {
		return "", 0
	}
	pos := 0
	explicitVowel := false

	// A prescript is a base consonant from the prescript set followed by
	// another base (not subjoined) consonant. An a-chung never follows a
	// prescript, so "ba'i" keeps its b as the root of the first syllable.
	prescript := ""
	if revIndex.isConsonant(runes[pos]) {
		letter := baseLetterFor(runes[pos])
		if reversePrescripts[letter] && pos+1 < len(runes) &&
			revIndex.isConsonant(runes[pos+1]) &&
			!isSubjoinedCodepoint(runes[pos+1]) &&
			runes[pos+1] != 0x0F60 {
			prescript = letter
			pos++
		}
	}

	// A superscript is a base consonant from the superscript set with a
	// subjoined codepoint (its root) directly below.
	superscript := ""
	if pos < len(runes) && revIndex.isConsonant(runes[pos]) {
		letter := baseLetterFor(runes[pos])
		if reverseSuperscripts[letter] && pos+1 < len(runes) &&
			isSubjoinedCodepoint(runes[pos+1]) {
			superscript = letter
			pos++
		}
	}

	root := ""
	if pos < len(runes) {
		r := runes[pos]
		if superscript != "" && isSubjoinedCodepoint(r) {
			if w := revIndex.subjoinedC[string(r)]; w != "" {
				root = w
				pos++
			}
		} else if revIndex.isConsonant(r) {
			root = baseLetterFor(r)
			pos++
		}
	}
	if root == "" {
		return "", 0
	}

	var subs []string
	for pos < len(runes) && isSubjoinedCodepoint(runes[pos]) {
		w := revIndex.subjoinedC[string(runes[pos])]
		if w == "" {
			break
		}
		subs = append(subs, w)
		pos++
	}

	vowel := ""
	if pos+1 < len(runes) {
		if w := revIndex.vowels[string(runes[pos:pos+2])]; w != "" {
			vowel = w
			explicitVowel = true
			pos += 2
		}
	}
	if vowel == "" && pos < len(runes) && revIndex.isVowelSign(runes[pos]) {
		if w := revIndex.vowels[string(runes[pos])]; w != "" && w != "a" {
			vowel = w
			explicitVowel = true
		}
		pos++
	}

	// Trailing base consonants are postscripts, unless one carries its
	// own vowel sign or stack, which makes it the next syllable's root.
	var postscripts []string
	for pos < len(runes) && revIndex.isConsonant(runes[pos]) {
		if pos+1 < len(runes) &&
			(revIndex.isVowelSign(runes[pos+1]) || isSubjoinedCodepoint(runes[pos+1])) {
			break
		}
		postscripts = append(postscripts, baseLetterFor(runes[pos]))
		pos++
	}

	var marks []string
	for pos < len(runes) && unicode.Is(syllableMarkSet, runes[pos]) {
		marks = append(marks, revIndex.marks[string(runes[pos])])
		pos++
	}

	var b strings.Builder
	b.WriteString(prescript)
	b.WriteString(superscript)

	// Vowel-initial collapse: ཨོམ reads "om", not "aom".
	vowelInitial := root == "a" && explicitVowel && len(subs) == 0 &&
		prescript == "" && superscript == ""
	if vowelInitial {
		b.WriteString(vowel)
	} else {
		b.WriteString(root)
		for _, sub := range subs {
			b.WriteString(sub)
		}
		if !explicitVowel && root != "a" {
			b.WriteByte('a')
		}
		b.WriteString(vowel)
	}
	for _, p := range postscripts {
		b.WriteString(p)
	}
	for _, m := range marks {
		b.WriteString(m)
	}
	return b.String(), pos
}
