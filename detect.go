package wylie

import "unicode"

// Direction tells which way a text should be transliterated.
type Direction int8

const (
	// EWTSInput marks Latin EWTS text, to be rendered as Tibetan.
	EWTSInput Direction = iota
	// TibetanInput marks Tibetan Unicode text, to be rendered as EWTS.
	TibetanInput
)

func (d Direction) String() string {
	if d == TibetanInput {
		return "tibetan"
	}
	return "ewts"
}

// detectSampleSize bounds the number of leading runes inspected.
const detectSampleSize = 500

// DetectDirection guesses the transliteration direction of text by
// sampling its leading runes: when more than 30% fall into the Tibetan
// Unicode block the text is taken to be Tibetan. Empty input reads as
// EWTS.
func DetectDirection(text string) Direction {
	total := 0
	tibetan := 0
	for _, r := range text {
		if total >= detectSampleSize {
			break
		}
		total++
		if unicode.Is(tibetanBlock, r) {
			tibetan++
		}
	}
	if total > 0 && tibetan*10 > total*3 {
		return TibetanInput
	}
	return EWTSInput
}
