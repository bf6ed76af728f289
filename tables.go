package wylie

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// The forward tables associate EWTS spellings with Tibetan codepoints.
// They follow the THL Extended Wylie scheme and are never mutated after
// package initialization. Codepoints are written as escapes throughout,
// since several Sanskrit letters (U+0F43, U+0F69, ...) are visually
// indistinguishable from two-codepoint stacks.

// consonants maps EWTS consonant spellings to base-form letters
// (U+0F40–U+0F6C). Sanskrit retroflexes appear twice: as the lowercase
// digraph ('tt') and as the capitalized form used inside syllables ('Ta').
var consonants = map[string]string{
	"k":   "ཀ", // ཀ KA
	"kh":  "ཁ", // ཁ KHA
	"g":   "ག", // ག GA
	"gh":  "གྷ", // གྷ GHA (Sanskrit)
	"ng":  "ང", // ང NGA
	"c":   "ཅ", // ཅ CA
	"ch":  "ཆ", // ཆ CHA
	"j":   "ཇ", // ཇ JA
	"ny":  "ཉ", // ཉ NYA
	"t":   "ཏ", // ཏ TA
	"th":  "ཐ", // ཐ THA
	"d":   "ད", // ད DA
	"dh":  "དྷ", // དྷ DHA (Sanskrit)
	"n":   "ན", // ན NA
	"p":   "པ", // པ PA
	"ph":  "ཕ", // ཕ PHA
	"b":   "བ", // བ BA
	"bh":  "བྷ", // བྷ BHA (Sanskrit)
	"m":   "མ", // མ MA
	"ts":  "ཙ", // ཙ TSA
	"tsh": "ཚ", // ཚ TSHA
	"dz":  "ཛ", // ཛ DZA
	"dzh": "ཛྷ", // ཛྷ DZHA (Sanskrit)
	"w":   "ཝ", // ཝ WA
	"zh":  "ཞ", // ཞ ZHA
	"z":   "ཟ", // ཟ ZA
	"'":   "འ", // འ -A (a-chung)
	"y":   "ཡ", // ཡ YA
	"r":   "ར", // ར RA
	"l":   "ལ", // ལ LA
	"sh":  "ཤ", // ཤ SHA
	"ss":  "ཥ", // ཥ SSA (Sanskrit)
	"s":   "ས", // ས SA
	"h":   "ཧ", // ཧ HA
	"a":   "ཨ", // ཨ A
	"tt":  "ཊ", // ཊ TTA (retroflex)
	"tth": "ཋ", // ཋ TTHA
	"dd":  "ཌ", // ཌ DDA
	"ddh": "ཌྷ", // ཌྷ DDHA
	"nn":  "ཎ", // ཎ NNA
	"kss": "ཀྵ", // ཀྵ KSSA
	"Ta":  "ཊ",
	"Tha": "ཋ",
	"Da":  "ཌ",
	"Dha": "ཌྷ",
	"Na":  "ཎ",
	"Sha": "ཥ",
}

// vowels maps EWTS vowel spellings to combining vowel signs. The inherent
// vowel 'a' is unwritten and maps to the empty string.
var vowels = map[string]string{
	"a":  "",
	"i":  "ི",       // VOWEL SIGN I
	"u":  "ུ",       // VOWEL SIGN U
	"e":  "ེ",       // VOWEL SIGN E
	"o":  "ོ",       // VOWEL SIGN O
	"A":  "ཱ",       // VOWEL SIGN AA (long a)
	"U":  "ཱུ", // long a + u, as in hUM
	"-i": "ྀ",       // VOWEL SIGN REVERSED I
	"-I": "ཱྀ",       // VOWEL SIGN REVERSED II
}

// subscripts are the letters that may be stacked implicitly below a root.
// 'v' is an accepted alternative spelling for the wa-zur.
var subscripts = map[string]string{
	"r": "ྲ",
	"l": "ླ",
	"y": "ྱ",
	"w": "ྭ",
	"v": "ྭ",
	"m": "ྨ",
}

// subjoined maps consonant spellings to their subjoined forms
// (U+0F90–U+0FB9), used under superscripts and in explicit '+' stacks.
var subjoined = map[string]string{
	"k":   "ྐ",
	"kh":  "ྑ",
	"g":   "ྒ",
	"gh":  "ྒྷ",
	"ng":  "ྔ",
	"c":   "ྕ",
	"ch":  "ྖ",
	"j":   "ྗ",
	"ny":  "ྙ",
	"t":   "ྟ",
	"th":  "ྠ",
	"d":   "ྡ",
	"dh":  "ྡྷ",
	"n":   "ྣ",
	"p":   "ྤ",
	"ph":  "ྥ",
	"b":   "ྦ",
	"bh":  "ྦྷ",
	"m":   "ྨ",
	"ts":  "ྩ",
	"tsh": "ྪ",
	"dz":  "ྫ",
	"dzh": "ྫྷ",
	"w":   "ྭ",
	"zh":  "ྮ",
	"z":   "ྯ",
	"y":   "ྱ",
	"r":   "ྲ",
	"l":   "ླ",
	"sh":  "ྴ",
	"ss":  "ྵ",
	"s":   "ྶ",
	"h":   "ྷ",
	"tt":  "ྚ",
	"tth": "ྛ",
	"dd":  "ྜ",
	"ddh": "ྜྷ",
	"nn":  "ྞ",
	"kss": "ྐྵ",
	"Ta":  "ྚ",
	"Tha": "ྛ",
	"Da":  "ྜ",
	"Dha": "ྜྷ",
	"Na":  "ྞ",
	"Sha": "ྵ",
}

// punctuation maps EWTS punctuation to Tibetan marks. Two-character
// spellings take precedence over their one-character prefixes.
var punctuation = map[string]string{
	" ":  "་", // ་ tsheg
	"*":  "༌", // ༌ tsheg bstar
	"/":  "།", // ། shad
	"//": "༎", // ༎ nyis shad
	";":  "༏", // ༏ tsheg shad
	"|":  "།", // ། shad
	"||": "༎", // ༎ nyis shad
	"!":  "༈", // ༈ sbrul shad
	":":  "༎", // ༎ double shad
	"_":  "༵", // ༵ ngas bzung nyi zla
}

var numerals = map[string]string{
	"0": "༠",
	"1": "༡",
	"2": "༢",
	"3": "༣",
	"4": "༤",
	"5": "༥",
	"6": "༦",
	"7": "༧",
	"8": "༨",
	"9": "༩",
}

// sanskritMarks are the anusvara and visarga signs, attached after a
// syllable. '~M'/'~H' are accepted alternative spellings.
var sanskritMarks = map[string]string{
	"M":  "ཾ", // ཾ rjes su nga ro (anusvara)
	"H":  "ཿ", // ཿ rnam bcad (visarga)
	"~M": "ཾ",
	"~H": "ཿ",
}

// anusvaraAfterU replaces the plain anusvara when the preceding syllable
// carries a u-class vowel, as in hUM → ཧཱུྃ.
const anusvaraAfterU = "ྃ" // ྃ sna ldan

// Retroflex capitals the case normalizer must preserve. The 3-letter
// forms are checked before their 2-letter prefixes.
var (
	retroflex3 = []string{"Tha", "Dha", "Sha"}
	retroflex2 = []string{"Ta", "Da", "Na"}
)

// Ordered key slices for greedy longest-first matching. For a fixed
// length at most one key can prefix-match a given input position, so
// ordering within a length class is irrelevant; it is made lexicographic
// to keep iteration deterministic.
var (
	consonantKeys []string
	vowelKeys     []string
	subscriptKeys []string
	subjoinedKeys []string
)

func longestFirst(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func init() {
	consonantKeys = longestFirst(consonants)
	vowelKeys = longestFirst(vowels)
	subscriptKeys = longestFirst(subscripts)
	subjoinedKeys = longestFirst(subjoined)
	tracer().Infof("wylie tables ready: %d consonants, %d subjoined forms",
		len(consonants), len(subjoined))
}

// Codepoint range tables for the reverse direction and for input
// direction detection.
var (
	// tibetanBlock covers the whole Tibetan Unicode block.
	tibetanBlock = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0F00, Hi: 0x0FFF, Stride: 1}},
	}
	// subjoinedConsonantRange covers subjoined (stacked) consonants.
	subjoinedConsonantRange = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0F90, Hi: 0x0FBC, Stride: 1}},
	}
	// tibetanDigitRange covers the digits ༠…༩.
	tibetanDigitRange = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0F20, Hi: 0x0F29, Stride: 1}},
	}
	// syllableMarkSet holds the anusvara/visarga signs that may trail a
	// syllable: U+0F7E, U+0F7F and the sna-ldan anusvara U+0F83.
	syllableMarkSet = rangetable.New(0x0F7E, 0x0F7F, 0x0F83)
)
