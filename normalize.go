package wylie

import (
	"strings"
	"unicode/utf8"
)

// markTerminators are the characters after which a bare 'M' or 'H'
// keeps its capital reading as an anusvara/visarga mark.
const markTerminators = " /|\n\tM"

// normalizeCase folds sloppy capitalization into canonical EWTS while
// preserving the capitals that carry meaning: the long vowel 'A' (only
// after a lowercase letter), the retroflex spellings Ta/Tha/Da/Dha/Na/Sha,
// and a bare 'M'/'H' before a terminator. A retroflex capital directly
// followed by a vowel letter is expanded to its digraph form, so that
// "Ni" parses as root "Na" plus vowel "i". The function is idempotent.
func normalizeCase(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	i := 0
	for i < len(text) {
		c := text[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(text[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		if m := matchRetroflex(text[i:]); m != "" {
			b.WriteString(m)
			i += len(m)
			continue
		}
		if (c == 'M' || c == 'H') &&
			(i+1 >= len(text) || strings.IndexByte(markTerminators, text[i+1]) >= 0) {
			b.WriteByte(c)
			i++
			continue
		}
		if c == 'A' {
			if i > 0 && isLowerLetter(text[i-1]) {
				b.WriteByte('A')
			} else {
				b.WriteByte('a')
			}
			i++
			continue
		}
		if n := matchFoldableConsonant(text[i:]); n > 0 {
			b.WriteString(strings.ToLower(text[i : i+n]))
			i += n
			continue
		}
		if c >= 'A' && c <= 'Z' {
			if (c == 'N' || c == 'T' || c == 'D' || c == 'S') && i+1 < len(text) {
				next := text[i+1]
				if isLowerLetter(next) && next != 'h' && next != 'a' {
					b.WriteByte(c)
					b.WriteByte('a')
					i++
					continue
				}
			}
			lower := c + ('a' - 'A')
			if _, ok := consonants[string(lower)]; ok {
				b.WriteByte(lower)
			} else {
				b.WriteByte(c)
			}
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isLowerLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// matchRetroflex matches a preserved retroflex capital, 3-letter
// spellings before their 2-letter prefixes.
func matchRetroflex(text string) string {
	for _, retro := range retroflex3 {
		if strings.HasPrefix(text, retro) {
			return retro
		}
	}
	for _, retro := range retroflex2 {
		if strings.HasPrefix(text, retro) {
			return retro
		}
	}
	return ""
}

// matchFoldableConsonant reports the length of a multi-letter consonant
// spelling at the start of text, ignoring case. Longest first.
func matchFoldableConsonant(text string) int {
	for _, n := range []int{3, 2} {
		if len(text) >= n {
			if _, ok := consonants[strings.ToLower(text[:n])]; ok {
				return n
			}
		}
	}
	return 0
}
