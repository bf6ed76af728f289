package wylie

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// The parser decomposes a prefix of normalized EWTS text into syllable
// components. The grammar is ambiguous ("dgon" reads prescript d + root
// g, while "dme" reads root d + subscript m), so four structural
// strategies are attempted and the longest match wins; on equal length
// the earlier, simpler strategy is kept. Slot matchers never backtrack;
// a strategy whose optional slot does not fit degrades into a simpler
// one instead of failing.

type parseStrategy int8

const (
	parseSimple parseStrategy = iota
	parseWithSuper
	parseWithPre
	parseFull
)

var parseStrategies = [...]parseStrategy{parseSimple, parseWithSuper, parseWithPre, parseFull}

var (
	prescriptLetters   = []string{"g", "d", "b", "m", "'"}
	superscriptLetters = []string{"r", "l", "s"}
	postscriptLetters  = []string{"ng", "g", "d", "n", "b", "m", "r", "l", "s", "'"}
)

// syllableScanner is the scratch state for one strategy attempt.
// Scanners are pooled.
type syllableScanner struct {
	text string
	pos  int
	syl  syllableComponents
}

type scannerPool struct {
	ctx   context.Context
	opool *pool.ObjectPool
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &syllableScanner{}
			return sc, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

func borrowScanner() *syllableScanner {
	o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	if err != nil {
		return &syllableScanner{}
	}
	return o.(*syllableScanner)
}

// Clears the scanner and puts it back into the pool.
func (sc *syllableScanner) releaseIntoPool() {
	sc.text = ""
	sc.pos = 0
	sc.syl = syllableComponents{}
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}

// parseSyllable decomposes the longest syllable at the start of text.
// It returns the components, the number of input characters consumed,
// and whether any strategy produced a parse.
func parseSyllable(text string) (syllableComponents, int, bool) {
	if text == "" {
		return syllableComponents{}, 0, false
	}
	sc := borrowScanner()
	defer sc.releaseIntoPool()

	var best syllableComponents
	bestLen := 0
	for _, strategy := range parseStrategies {
		syl, length, ok := sc.tryStrategy(text, strategy)
		if ok && length > bestLen {
			best = syl
			bestLen = length
		}
	}
	if bestLen == 0 {
		return syllableComponents{}, 0, false
	}
	return best, bestLen, true
}

func (sc *syllableScanner) tryStrategy(text string, strategy parseStrategy) (syllableComponents, int, bool) {
	sc.text = text
	sc.pos = 0
	sc.syl = syllableComponents{vowel: "a"}

	if strategy == parseWithPre || strategy == parseFull {
		sc.matchPrescript()
	}
	if strategy == parseWithSuper || strategy == parseFull {
		sc.matchSuperscript()
	}
	if !sc.matchRoot() {
		return syllableComponents{}, 0, false
	}
	if sc.syl.superscript != "" && !superscriptAllows(sc.syl.superscript, sc.syl.root) {
		return syllableComponents{}, 0, false
	}
	if sc.syl.root != "a" { // a pure-vowel root carries no stack
		sc.matchSubscripts()
	}
	sc.matchVowel()
	sc.matchPostscripts()
	return sc.syl, sc.pos, true
}

// matchPrescript consumes a prescript letter if one fits. Two lookahead
// guards keep it from eating the first letter of a multi-character
// consonant ("tsa" is not prescript t + root sa) and from leaving no
// root behind.
func (sc *syllableScanner) matchPrescript() {
	lower := strings.ToLower(sc.text[sc.pos:])
	for _, pre := range prescriptLetters {
		if !strings.HasPrefix(lower, pre) {
			continue
		}
		remainder := sc.text[sc.pos+len(pre):]
		if startsMultiCharConsonant(remainder) {
			continue
		}
		if hasRootAhead(remainder) {
			sc.syl.prescript = pre
			sc.pos += len(pre)
		}
		return
	}
}

func (sc *syllableScanner) matchSuperscript() {
	lower := strings.ToLower(sc.text[sc.pos:])
	for _, sup := range superscriptLetters {
		if !strings.HasPrefix(lower, sup) {
			continue
		}
		remainder := sc.text[sc.pos+len(sup):]
		if startsMultiCharConsonant(remainder) {
			continue
		}
		if hasRootAhead(remainder) {
			sc.syl.superscript = sup
			sc.pos += len(sup)
		}
		return
	}
}

// matchRoot consumes the root consonant, longest spelling first and
// case-sensitive so the Sanskrit retroflex capitals are preserved. When
// no consonant fits but a non-inherent vowel does, the syllable is
// vowel-initial and the pure-vowel letter becomes the root without
// consuming anything.
func (sc *syllableScanner) matchRoot() bool {
	rest := sc.text[sc.pos:]
	for _, key := range consonantKeys {
		if strings.HasPrefix(rest, key) {
			sc.syl.root = key
			sc.pos += len(key)
			return true
		}
	}
	lower := strings.ToLower(rest)
	for _, key := range consonantKeys {
		if strings.HasPrefix(lower, strings.ToLower(key)) {
			sc.syl.root = strings.ToLower(key)
			sc.pos += len(key)
			return true
		}
	}
	if v := vowelAt(rest); v != "" && v != "a" {
		sc.syl.root = "a"
		return true
	}
	return false
}

// matchSubscripts consumes either an explicit '+'-chain resolved through
// the subjoined table, or up to two bare subscript letters.
func (sc *syllableScanner) matchSubscripts() {
	if strings.HasPrefix(sc.text[sc.pos:], "+") {
		sc.matchExplicitStack()
		return
	}
	var subs []string
	for len(subs) < 2 {
		matched := ""
		lower := strings.ToLower(sc.text[sc.pos:])
		for _, key := range subscriptKeys {
			if strings.HasPrefix(lower, key) {
				matched = key
				break
			}
		}
		if matched == "" {
			break
		}
		subs = append(subs, matched)
		sc.pos += len(matched)
	}
	sc.syl.subscript = strings.Join(subs, "+")
}

func (sc *syllableScanner) matchExplicitStack() {
	var subs []string
	for strings.HasPrefix(sc.text[sc.pos:], "+") {
		rest := sc.text[sc.pos+1:]
		matched := ""
		for _, key := range subjoinedKeys {
			if strings.HasPrefix(rest, key) {
				matched = key
				break
			}
		}
		if matched == "" {
			break
		}
		subs = append(subs, matched)
		sc.pos += 1 + len(matched)
	}
	if len(subs) > 0 {
		sc.syl.subscript = strings.Join(subs, "+")
		sc.syl.subscriptExplicit = true
	}
}

func (sc *syllableScanner) matchVowel() {
	rest := sc.text[sc.pos:]
	for _, key := range vowelKeys {
		if strings.HasPrefix(rest, key) {
			sc.syl.vowel = key
			sc.pos += len(key)
			return
		}
	}
	// inherent vowel, nothing consumed
}

func (sc *syllableScanner) matchPostscripts() {
	if p := sc.matchPostscript(); p != "" {
		sc.syl.postscript1 = p
		if p2 := sc.matchPostscript(); p2 != "" {
			sc.syl.postscript2 = p2
		}
	}
}

// matchPostscript consumes one postscript letter. It refuses a capital
// (a Sanskrit consonant starting the next syllable), a letter followed
// by '+' (the start of an explicit stack), and an apostrophe followed by
// a vowel letter (the genitive particle, so "ba'i" is ba + 'i).
func (sc *syllableScanner) matchPostscript() string {
	rest := sc.text[sc.pos:]
	if rest == "" {
		return ""
	}
	if rest[0] >= 'A' && rest[0] <= 'Z' {
		return ""
	}
	lower := strings.ToLower(rest)
	for _, post := range postscriptLetters {
		if !strings.HasPrefix(lower, post) {
			continue
		}
		tail := rest[len(post):]
		if strings.HasPrefix(tail, "+") {
			return ""
		}
		if post == "'" && vowelAt(tail) != "" {
			return ""
		}
		sc.pos += len(post)
		return post
	}
	return ""
}

// vowelAt reports the longest vowel spelling at the start of text, or "".
func vowelAt(text string) string {
	for _, key := range vowelKeys {
		if strings.HasPrefix(text, key) {
			return key
		}
	}
	return ""
}

// startsMultiCharConsonant reports whether text begins with a 3-letter
// consonant spelling such as "tsh".
func startsMultiCharConsonant(text string) bool {
	lower := strings.ToLower(text)
	for _, key := range consonantKeys {
		if len(key) > 2 && strings.HasPrefix(lower, key) {
			return true
		}
	}
	return false
}

// hasRootAhead reports whether text begins with any consonant other than
// the pure-vowel letter.
func hasRootAhead(text string) bool {
	lower := strings.ToLower(text)
	for _, key := range consonantKeys {
		if key != "a" && strings.HasPrefix(lower, key) {
			return true
		}
	}
	return false
}
