package wylie

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Streaming adapters in the shape of golang.org/x/text transformers.
// Input is chunked at syllable boundaries (whitespace and shad), so a
// syllable split across two reads is never transliterated in halves.

// ToUnicode returns a transformer that converts an EWTS byte stream to
// Tibetan Unicode. The flag matches WylieToUnicode.
func ToUnicode(spacesAsTsheg bool) transform.Transformer {
	return &toUnicodeTransformer{spacesAsTsheg: spacesAsTsheg}
}

// ToWylie returns a transformer that converts a Tibetan Unicode byte
// stream to EWTS.
func ToWylie() transform.Transformer {
	return &toWylieTransformer{}
}

type toUnicodeTransformer struct {
	transform.NopResetter
	spacesAsTsheg bool
}

func (t *toUnicodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}
	chunk := src
	if !atEOF {
		end := boundaryEnd(string(src), " \n\t/|")
		if end < 0 {
			return 0, 0, transform.ErrShortSrc
		}
		chunk = src[:end]
	}
	for {
		out := WylieToUnicode(string(chunk), t.spacesAsTsheg)
		if len(out) <= len(dst) {
			return copy(dst, out), len(chunk), nil
		}
		// Retreat to an earlier boundary until the output fits.
		end := boundaryEnd(string(chunk[:len(chunk)-1]), " \n\t/|")
		if end <= 0 {
			return 0, 0, transform.ErrShortDst
		}
		chunk = chunk[:end]
	}
}

type toWylieTransformer struct {
	transform.NopResetter
}

func (t *toWylieTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}
	chunk := src
	if !atEOF {
		end := boundaryEnd(string(src), " \n\t་།༎")
		if end < 0 {
			return 0, 0, transform.ErrShortSrc
		}
		chunk = src[:end]
	}
	for {
		out := UnicodeToWylie(string(chunk))
		if len(out) <= len(dst) {
			return copy(dst, out), len(chunk), nil
		}
		end := boundaryEnd(string(chunk[:len(chunk)-1]), " \n\t་།༎")
		if end <= 0 {
			return 0, 0, transform.ErrShortDst
		}
		chunk = chunk[:end]
	}
}

// boundaryEnd finds the byte offset just past the last boundary rune in
// s, or -1 if s contains none.
func boundaryEnd(s string, boundaries string) int {
	idx := strings.LastIndexAny(s, boundaries)
	if idx < 0 {
		return -1
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return idx + size
}
