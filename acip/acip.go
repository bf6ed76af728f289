package acip

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/konstantin-budylov/wylie"
)

// The conversion is a fixed cascade of rewrites. Order is load-bearing
// in several places: TS/TZ must be resolved before the case swap, the
// reversed-vowel spellings before the apostrophe-vowel pass, and the
// temporary markers (x, q, w, ZZZ) must not collide with text that is
// still to be rewritten.

var (
	commentAt      = regexp.MustCompile(`@[^ ]* *`)
	commentBracket = regexp.MustCompile(`\[[^\]]*\]`)
	parens         = regexp.MustCompile(`/([^/]*)/`)
	asteriskRun    = regexp.MustCompile(`\*+`)
	apostrophes    = regexp.MustCompile(`['ʼʹ'ʾ]`)

	reversedVowelI  = regexp.MustCompile(`A?i`)
	reversedVowelIi = regexp.MustCompile(`A?'-I`)

	vowelAfterCons  = regexp.MustCompile(`([BCDGHJKLMNPRSTWYZ])'([AEOUI])`)
	vowelAfterA     = regexp.MustCompile(`(^|[^BCDGHJKLMNPR'STWYZhdtn])A'([AEOUI])`)
	vowelAbsorbedA  = regexp.MustCompile(`A([AEIOUaeiou])`)
	gaYas           = regexp.MustCompile(`([BCDGHJKLMN'PRSTWYZhdtn])A-`)
	stackBeforeVow  = regexp.MustCompile(`([bcdgjklm'nprstwyzhSDTN+]+)([aeiouAEIOU.-])`)
	spaceBeforePunc = regexp.MustCompile(`([aeiouIAEU]g|[gk][aeiouAEIU]|[;!/|]) +([;!/|])`)
	spaceAfterPunc  = regexp.MustCompile(`([;!/|H]) +`)

	ewtsParens     = regexp.MustCompile(`\(([^)]*)\)`)
	leadingStar    = regexp.MustCompile(`(^|\[)\*`)
	leadingHash    = regexp.MustCompile(`(^|\[)#`)
	circledEscape  = regexp.MustCompile(`(?i)\\u0F38`)
	independentVow = regexp.MustCompile(`(^|[^BCDGHJKLMNPR'STVYZhdtnEO])([AEOUIqaewiou])`)
)

// stdTibStack matches consonant clusters that are legal Tibetan stacks
// and therefore need no '+' markers, including optional r/w/y
// subscripts after the base stack.
var stdTibStack = regexp.MustCompile(`(?i)^([bcdgjklm'npstzhSDTN]|bgl|dm|sm|sn|kl|dk|bk|bkl|rk|lk|sk|brk|bsk|kh|mkh|'kh|` +
	`gl|dg|bg|mg|'g|rg|lg|sg|brg|bsg|ng|dng|mng|rng|lng|sng|brng|bsng|gc|bc|lc|` +
	`ch|mch|'ch|mj|'j|rj|lj|brj|ny|gny|mny|rny|sny|brny|bsny|gt|bt|rt|lt|st|brt|` +
	`blt|bst|th|mth|'th|gd|bd|md|'d|rd|ld|sd|brd|bld|bsd|gn|mn|rn|brn|bsn|dp|lp|` +
	`sp|ph|'ph|bl|db|'b|rb|lb|sb|rm|ts|gts|bts|rts|sts|brts|bsts|tsh|mtsh|'tsh|` +
	`dz|mdz|'dz|rdz|brdz|zh|gzh|bzh|zl|gz|bz|bzl|rl|brl|sh|gsh|bsh|sl|gs|bs|bsl|lh)` +
	`[rwy]*$`)

// stackPrefixes are the stacks whose first letter is a prefix; when a
// cluster opens with one of these, the prefix letter stays outside the
// '+'-joined remainder.
var stackPrefixes = newStringSet(
	"bg", "dm", "dk", "bk", "brk", "bsk", "mkh", "'kh", "dg", "mg", "'g",
	"brg", "bsg", "dng", "mng", "brng", "bsng", "gc", "bc", "ch", "mch", "'ch",
	"mj", "'j", "brj", "gny", "mny", "brny", "bsny", "gt", "bt", "brt", "blt",
	"bst", "mth", "'th", "gd", "bd", "md", "'d", "brd", "bld", "bsd", "gn", "mn",
	"brn", "bsn", "dp", "ph", "'ph", "bl", "db", "'b", "gts", "bts", "brts",
	"bsts", "tsh", "mtsh", "'tsh", "mdz", "'dz", "brdz", "gzh", "bzh", "gz",
	"bz", "bzl", "brl", "gsh", "bsh", "gs", "bs", "bsl",
)

func newStringSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// ToEWTS converts ACIP text to EWTS.
func ToEWTS(acipText string) string {
	text := acipText

	// Comments and yig-chung parentheses.
	text = commentBracket.ReplaceAllString(text, "")
	text = commentAt.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "(", "")
	text = strings.ReplaceAll(text, ")", "")

	// ACIP /.../ is EWTS (...).
	text = parens.ReplaceAllString(text, "($1)")
	text = strings.ReplaceAll(text, "/", "")

	// Punctuation. '#' goes through a temporary @## spelling so that
	// asterisk runs can be encoded the same way.
	text = strings.ReplaceAll(text, ";", "|")
	text = strings.ReplaceAll(text, "#", "@##")
	text = asteriskRun.ReplaceAllStringFunc(text, func(m string) string {
		return "@" + strings.Repeat("#", len(m))
	})
	text = strings.ReplaceAll(text, `\`, "?")
	text = strings.ReplaceAll(text, ",", "/")
	text = strings.ReplaceAll(text, "`", "!")

	// Special characters. The che-mgo mark keeps its escape spelling,
	// which FromEWTS matches case-insensitively.
	text = strings.ReplaceAll(text, "^", `\u0F38`)
	text = strings.ReplaceAll(text, "%", "~x")
	text = strings.ReplaceAll(text, "V", "W")

	// ACIP TS is EWTS tsh and ACIP TZ is EWTS ts; resolved through a
	// placeholder before the case swap.
	text = strings.ReplaceAll(text, "TS", "ZZZ")
	text = strings.ReplaceAll(text, "TZ", "TS")
	text = strings.ReplaceAll(text, "ZZZ", "TSH")

	// GA-YAS writes the EWTS disambiguation dot as a hyphen.
	text = gaYas.ReplaceAllString(text, "$1.")
	text = strings.ReplaceAll(text, "-", ".")

	// Reversed vowels, and 'o' through a temporary marker.
	text = reversedVowelI.ReplaceAllString(text, "-I")
	text = reversedVowelIi.ReplaceAllString(text, "-i")
	text = strings.ReplaceAll(text, "o", "x")

	// Consonant + apostrophe + vowel (B'I is EWTS bi), the achung
	// variant with A as main letter, and A absorbed before a vowel.
	text = vowelAfterCons.ReplaceAllStringFunc(text, func(m string) string {
		return m[:1] + strings.ToLower(m[2:])
	})
	text = vowelAfterA.ReplaceAllStringFunc(text, func(m string) string {
		return m[:len(m)-3] + strings.ToLower(m[len(m)-1:])
	})
	text = vowelAbsorbedA.ReplaceAllString(text, "$1")

	// ACIP lowercase sh is the Sanskrit retroflex; hold it as sH
	// across the case swap.
	text = strings.ReplaceAll(text, "sh", "sH")

	text = apostrophes.ReplaceAllString(text, "'")
	text = swapCase(text)

	text = strings.ReplaceAll(text, "ee", "ai")
	text = strings.ReplaceAll(text, "oo", "au")
	text = strings.ReplaceAll(text, ":", "H")

	text = stackBeforeVow.ReplaceAllStringFunc(text, rewriteStack)

	// Space before punctuation (and after) is a literal space in EWTS.
	text = spaceBeforePunc.ReplaceAllString(text, "${1}_$2")
	text = spaceAfterPunc.ReplaceAllString(text, "${1}_")

	return text
}

// FromEWTS converts EWTS text to ACIP.
func FromEWTS(ewtsText string) string {
	text := apostrophes.ReplaceAllString(ewtsText, "'")

	// EWTS (...) is ACIP /.../.
	text = ewtsParens.ReplaceAllString(text, "/$1/")

	// Punctuation.
	text = strings.ReplaceAll(text, "|", ";")
	text = leadingStar.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "@##", "ZZ")
	text = strings.ReplaceAll(text, "@#", "*")
	text = strings.ReplaceAll(text, "_", " ")
	text = leadingHash.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "ZZ", "#")
	text = strings.ReplaceAll(text, "?", `\`)
	text = strings.ReplaceAll(text, "/", ",")
	text = strings.ReplaceAll(text, "!", "`")

	// Special characters.
	text = circledEscape.ReplaceAllString(text, "^")
	text = strings.ReplaceAll(text, "~X", "%")
	text = strings.ReplaceAll(text, "H", ":")

	// EWTS tsh is ACIP TS, EWTS ts is ACIP TZ.
	text = strings.ReplaceAll(text, "tsh", "ZZZ")
	text = strings.ReplaceAll(text, "ts", "tz")
	text = strings.ReplaceAll(text, "ZZZ", "ts")

	text = strings.ReplaceAll(text, "w", "v")
	text = swapCase(text)

	// Reversed vowels go through temporary markers until the
	// apostrophe-vowel pass below.
	text = strings.ReplaceAll(text, "-I", "w")
	text = strings.ReplaceAll(text, "-i", "q")

	text = strings.ReplaceAll(text, ".", "-")
	text = strings.ReplaceAll(text, "AI", "EE")
	text = strings.ReplaceAll(text, "AU", "OO")

	// Independent vowels carry an A letter in ACIP.
	text = independentVow.ReplaceAllString(text, "${1}A$2")

	text = strings.ReplaceAll(text, "a", "'A")
	text = strings.ReplaceAll(text, "u", "'U")
	text = strings.ReplaceAll(text, "o", "'O")
	text = strings.ReplaceAll(text, "e", "'E")
	text = strings.ReplaceAll(text, "i", "'I")
	text = strings.ReplaceAll(text, "q", "'i")
	text = strings.ReplaceAll(text, "w", "i")
	text = strings.ReplaceAll(text, "x", "o")

	text = strings.ReplaceAll(text, "sH", "sh")
	return text
}

// ToUnicode converts ACIP text straight to Tibetan Unicode by chaining
// through EWTS.
func ToUnicode(acipText string, spacesAsTsheg bool) string {
	ewts := ToEWTS(acipText)
	tracer().Debugf("acip %q -> ewts %q", acipText, ewts)
	return wylie.WylieToUnicode(ewts, spacesAsTsheg)
}

// FromUnicode converts Tibetan Unicode to ACIP.
func FromUnicode(unicodeText string) string {
	return FromEWTS(wylie.UnicodeToWylie(unicodeText))
}

// rewriteStack inserts '+' markers into a consonant cluster that is not
// a legal bare Tibetan stack. A cluster opening with a known prefix
// keeps the prefix letter outside the chain.
func rewriteStack(m string) string {
	cluster, vowel := m[:len(m)-1], m[len(m)-1:]
	if strings.Contains(cluster, "+") {
		return cluster + vowel
	}
	if stdTibStack.MatchString(cluster) {
		return cluster + vowel
	}
	tokens := tokenizeCluster(cluster)
	if len(tokens) <= 1 {
		return cluster + vowel
	}
	if stackPrefixes[strings.ToLower(tokens[0]+tokens[1])] {
		return tokens[0] + strings.Join(tokens[1:], "+") + vowel
	}
	return strings.Join(tokens, "+") + vowel
}

// clusterTokens are the spellings recognized inside a consonant
// cluster, multi-letter ones first.
var clusterTokens = []string{
	"zh", "ny", "dz", "ts", "tsh", "ch", "ph", "th",
	"sh", "Sh", "kh", "ng",
}

const clusterSingles = "NDTRYWbcdghjklmnprstwyz'"

func tokenizeCluster(cluster string) []string {
	var result []string
	i := 0
	for i < len(cluster) {
		matched := false
		for _, token := range clusterTokens {
			if strings.HasPrefix(cluster[i:], token) {
				result = append(result, token)
				i += len(token)
				matched = true
				break
			}
		}
		if !matched {
			if strings.IndexByte(clusterSingles, cluster[i]) >= 0 {
				result = append(result, string(cluster[i]))
			}
			i++
		}
	}
	return result
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
