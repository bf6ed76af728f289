package wylie

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Structural rule tables, following the THL scheme: which prescripts,
// superscripts and subscripts may combine with which roots, and which
// consonants may close a syllable. Backed by ordered sets so that
// validation suggestions list the alternatives in a stable order.

type ruleSet struct {
	set *treeset.Set
}

func newRuleSet(letters ...string) *ruleSet {
	values := make([]interface{}, len(letters))
	for i, letter := range letters {
		values[i] = letter
	}
	return &ruleSet{set: treeset.NewWithStringComparator(values...)}
}

func (rs *ruleSet) contains(letter string) bool {
	return rs.set.Contains(letter)
}

// String lists the members in sorted order, for suggestion messages.
func (rs *ruleSet) String() string {
	if rs == nil {
		return ""
	}
	values := rs.set.Values()
	letters := make([]string, len(values))
	for i, v := range values {
		letters[i] = v.(string)
	}
	return strings.Join(letters, ", ")
}

var prescriptRules = map[string]*ruleSet{
	"g": newRuleSet("n", "ny", "s", "sh", "ts", "y", "z"),
	"d": newRuleSet("k", "g", "ng", "p", "b", "m", "w", "n", "ny", "r", "l", "s", "ts"),
	"b": newRuleSet("k", "g", "c", "j", "ng", "s", "sh", "r", "l", "d", "ts", "w", "z", "zh", "kss"),
	"m": newRuleSet("kh", "g", "ng", "ch", "j", "ny", "th", "d", "n", "dz", "ts", "tsh"),
	"'": newRuleSet("a"),
}

var superscriptRules = map[string]*ruleSet{
	"r": newRuleSet("k", "g", "ng", "j", "ny", "t", "d", "n", "b", "m", "ts", "dz"),
	"l": newRuleSet("k", "g", "ng", "c", "j", "p", "b", "h"),
	"s": newRuleSet("k", "g", "ng", "ny", "t", "d", "n", "p", "b", "m", "ts"),
}

// subscriptRules includes the double-subscript chains as compound keys
// (grwa, drwa, and the rare krla).
var subscriptRules = map[string]*ruleSet{
	"r": newRuleSet("k", "kh", "g", "t", "th", "d", "p", "ph", "b", "s", "h",
		"tt", "tth", "dd", "ddh"),
	"l": newRuleSet("k", "g", "s", "z", "r"),
	"y": newRuleSet("k", "kh", "g", "p", "ph", "b", "m", "s", "h"),
	"w": newRuleSet("k", "kh", "g", "t", "th", "d", "ts", "tsh", "zh", "z",
		"s", "r", "l", "sh", "h"),
	"m": newRuleSet("k", "kh", "g", "ng", "c", "ch", "j", "ny", "t", "th", "d", "n",
		"p", "ph", "b", "m", "ts", "tsh", "dz", "w", "zh", "z", "s", "h",
		"r", "l", "sh"),
	"r+w": newRuleSet("g", "d"),
	"r+l": newRuleSet("k"),
}

var (
	validPostscripts       = newRuleSet("g", "ng", "d", "n", "b", "m", "r", "l", "s")
	validSecondPostscripts = newRuleSet("s", "d")
)

// superscriptAllows reports whether root may stand under the given
// superscript.
func superscriptAllows(superscript, root string) bool {
	roots, ok := superscriptRules[superscript]
	return ok && roots.contains(root)
}
