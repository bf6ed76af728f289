package wylie

// The reverse index is derived from the forward tables at package
// initialization. Where several EWTS spellings render to the same
// codepoint the shortest spelling wins; among equally short spellings
// the one inserted first wins, so insertion order is fixed below rather
// than taken from map iteration.

var (
	consonantOrder    = []string{
		"k", "kh", "g", "gh", "ng", "c", "ch", "j", "ny", "t", "th", "d",
		"dh", "n", "p", "ph", "b", "bh", "m", "ts", "tsh", "dz", "dzh",
		"w", "zh", "z", "'", "y", "r", "l", "sh", "ss", "s", "h", "a",
		"tt", "tth", "dd", "ddh", "nn", "kss",
		"Ta", "Tha", "Da", "Dha", "Na", "Sha",
	}
	vowelOrder        = []string{"a", "i", "u", "e", "o", "A", "U", "-i", "-I"}
	subscriptOrder    = []string{"r", "l", "y", "w", "v", "m"}
	punctOrder        = []string{" ", "*", "/", "//", ";", "|", "||", "!", ":", "_"}
	numeralOrder      = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	markOrder         = []string{"M", "H", "~M", "~H"}
	retroflexCapitals = []string{"Ta", "Tha", "Da", "Dha", "Na", "Sha"}
)

// reverseIndex maps Tibetan codepoint sequences (as strings of one or
// two runes) back to EWTS spellings.
type reverseIndex struct {
	consonants map[string]string // base-form letters, plus the kss ligature
	vowels     map[string]string // vowel signs, plus the U compound
	subscripts map[string]string
	punct      map[string]string
	marks      map[string]string
	numerals   map[string]string
	subjoinedC map[string]string // subjoined forms, root under a superscript
	all        map[string]string // combined lookup
}

var revIndex = newReverseIndex()

func invert(forward map[string]string, order []string) map[string]string {
	rev := make(map[string]string, len(forward))
	for _, wylie := range order {
		uc := forward[wylie]
		if uc == "" {
			continue
		}
		if prev, ok := rev[uc]; !ok || len(wylie) < len(prev) {
			rev[uc] = wylie
		}
	}
	return rev
}

// stripInherentA removes the trailing inherent vowel from a consonant
// spelling: "Ta" → "T", but "a" stays "a".
func stripInherentA(wylie string) string {
	if len(wylie) > 1 && wylie[len(wylie)-1] == 'a' {
		return wylie[:len(wylie)-1]
	}
	return wylie
}

func newReverseIndex() *reverseIndex {
	ix := &reverseIndex{
		consonants: invert(consonants, consonantOrder),
		vowels:     invert(vowels, vowelOrder),
		subscripts: invert(subscripts, subscriptOrder),
		punct:      invert(punctuation, punctOrder),
		marks:      invert(sanskritMarks, markOrder),
		numerals:   invert(numerals, numeralOrder),
		subjoinedC: make(map[string]string),
	}

	// The retroflex letters read back in their capital spelling, not as
	// the lowercase digraphs.
	for _, wylie := range retroflexCapitals {
		ix.consonants[consonants[wylie]] = wylie
	}

	// Subjoined forms sit at base codepoint + 0x50. Derive them from the
	// consonant table, capitals last so that a subjoined retroflex reads
	// back as its capital spelling ('T', not 'tt').
	for _, wylie := range consonantOrder {
		uc := []rune(consonants[wylie])
		if len(uc) != 1 {
			continue
		}
		if uc[0] >= 0x0F40 && uc[0] <= 0x0F6C {
			ix.subjoinedC[string(uc[0]+0x50)] = stripInherentA(wylie)
		}
	}

	// Combined lookup; later tables overwrite earlier entries, which is
	// what lets the capital retroflex spellings shadow the digraphs.
	ix.all = make(map[string]string, 256)
	for _, m := range []map[string]string{
		ix.consonants, ix.vowels, ix.subscripts, ix.punct,
		ix.marks, ix.numerals,
	} {
		for uc, wylie := range m {
			ix.all[uc] = wylie
		}
	}
	for _, wylie := range retroflexCapitals {
		ix.all[consonants[wylie]] = wylie
	}
	for uc, wylie := range ix.subjoinedC {
		ix.all[uc] = wylie
	}

	// Composite sequences that have no single-codepoint entry.
	compoundU := vowels["U"] // U+0F71 U+0F74
	ix.vowels[compoundU] = "U"
	ix.all[compoundU] = "U"
	ix.marks[anusvaraAfterU] = "M"
	ix.all[anusvaraAfterU] = "M"
	kssa := "ཀྵ" // decomposed spelling of the kss ligature
	ix.consonants[kssa] = "kss"
	ix.all[kssa] = "kss"

	return ix
}

// wylieFor returns the EWTS spelling for a codepoint sequence, or "".
func (ix *reverseIndex) wylieFor(uc string) string {
	return ix.all[uc]
}

func (ix *reverseIndex) isConsonant(r rune) bool {
	_, ok := ix.consonants[string(r)]
	return ok
}

func (ix *reverseIndex) isVowelSign(r rune) bool {
	_, ok := ix.vowels[string(r)]
	return ok
}

func (ix *reverseIndex) isPunctuation(r rune) bool {
	_, ok := ix.punct[string(r)]
	return ok
}
