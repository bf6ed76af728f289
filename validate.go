package wylie

import (
	"fmt"
	"strings"
)

// ErrorKind classifies validation findings.
type ErrorKind int8

// Validation error kinds.
const (
	UnknownCharacter ErrorKind = iota
	InvalidPrescript
	InvalidSuperscript
	InvalidSubscript
	InvalidPostscript
	InvalidStack
	InvalidVowelCombination
	InvalidSyllableStructure
	MissingRoot
	AmbiguousParsing
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownCharacter:
		return "unknown_character"
	case InvalidPrescript:
		return "invalid_prescript"
	case InvalidSuperscript:
		return "invalid_superscript"
	case InvalidSubscript:
		return "invalid_subscript"
	case InvalidPostscript:
		return "invalid_postscript"
	case InvalidStack:
		return "invalid_stack"
	case InvalidVowelCombination:
		return "invalid_vowel_combination"
	case InvalidSyllableStructure:
		return "invalid_syllable_structure"
	case MissingRoot:
		return "missing_root"
	case AmbiguousParsing:
		return "ambiguous_parsing"
	}
	return "unknown"
}

// ValidationError describes one structural violation in a syllable.
type ValidationError struct {
	Kind       ErrorKind
	Position   int // rune offset of the syllable in the input
	Syllable   string
	Message    string
	Suggestion string
}

func (e ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] at position %d: %s", e.Kind, e.Position, e.Message)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (suggestion: %s)", e.Suggestion)
	}
	return b.String()
}

// ValidationResult is the outcome of validating a whole text.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// Summary renders a short human-readable report.
func (r ValidationResult) Summary() string {
	if r.Valid && len(r.Warnings) == 0 {
		return "valid EWTS"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s), %d warning(s)", len(r.Errors), len(r.Warnings))
	for _, e := range r.Errors {
		b.WriteByte('\n')
		b.WriteString(e.Error())
	}
	for _, w := range r.Warnings {
		b.WriteByte('\n')
		b.WriteString(w.Error())
	}
	return b.String()
}

// Validate checks EWTS text against the structural rules of the Tibetan
// syllable. The text is tokenized on whitespace and shad characters;
// each token is checked for unknown characters first, then re-parsed
// with five structural strategies and the best parse is validated
// against the combination tables. Punctuation-only tokens, numerals,
// standalone vowels and standalone Sanskrit marks are trivially valid.
func Validate(text string) ValidationResult {
	var errors, warnings []ValidationError

	position := 0
	for _, token := range tokenizeSyllables(text) {
		if punctuationOnly(token) {
			position += len([]rune(token))
			continue
		}
		tokErrors, tokWarnings := validateSyllable(token, position)
		errors = append(errors, tokErrors...)
		warnings = append(warnings, tokWarnings...)
		position += len([]rune(token))
	}
	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// tokenizeSyllables splits on whitespace, shad and pipe, keeping the
// separators so that positions stay accurate.
func tokenizeSyllables(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '/', '|':
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func punctuationOnly(token string) bool {
	for _, r := range token {
		switch r {
		case ' ', '\t', '\n', '/', '|', '.':
		default:
			return false
		}
	}
	return true
}

// validChars holds every string the unknown-character scan accepts,
// including multi-character consonant spellings.
var validChars = newValidCharSet()

func newValidCharSet() map[string]bool {
	set := make(map[string]bool, 256)
	for _, m := range []map[string]string{
		consonants, vowels, subscripts, punctuation, sanskritMarks, numerals,
	} {
		for key := range m {
			set[key] = true
		}
	}
	for _, structural := range []string{" ", "\n", "\t", "/", "|", "+", "'", ".", "-", "~"} {
		set[structural] = true
	}
	for c := '0'; c <= '9'; c++ {
		set[string(c)] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		set[string(c)] = true
	}
	return set
}

func findUnknownCharacters(token string) []string {
	var unknown []string
	runes := []rune(token)
	i := 0
	for i < len(runes) {
		found := false
		for _, length := range []int{3, 2, 1} {
			if i+length <= len(runes) && validChars[string(runes[i:i+length])] {
				i += length
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, string(runes[i]))
			i++
		}
	}
	return unknown
}

func validateSyllable(token string, position int) ([]ValidationError, []ValidationError) {
	var errors, warnings []ValidationError

	if unknown := findUnknownCharacters(token); len(unknown) > 0 {
		errors = append(errors, ValidationError{
			Kind:       UnknownCharacter,
			Position:   position,
			Syllable:   token,
			Message:    fmt.Sprintf("unknown characters: %s", strings.Join(unknown, ", ")),
			Suggestion: "check the EWTS character list",
		})
		return errors, warnings
	}

	if isNumeralToken(token) || isStandaloneVowelToken(token) || isMarkToken(token) {
		return errors, warnings
	}

	syl := bestStructuralParse(token)
	if syl == nil {
		errors = append(errors, ValidationError{
			Kind:       InvalidSyllableStructure,
			Position:   position,
			Syllable:   token,
			Message:    "cannot parse syllable structure",
			Suggestion: "check syllable component order",
		})
		return errors, warnings
	}
	return validateComponents(syl, token, position)
}

func isNumeralToken(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != ""
}

// isStandaloneVowelToken accepts a bare vowel, optionally followed by a
// Sanskrit mark ("oM").
func isStandaloneVowelToken(token string) bool {
	if _, ok := vowels[token]; ok {
		return true
	}
	for _, v := range vowelKeys {
		if strings.HasPrefix(token, v) {
			remainder := token[len(v):]
			if remainder == "" {
				return true
			}
			if _, ok := sanskritMarks[remainder]; ok {
				return true
			}
		}
	}
	return false
}

func isMarkToken(token string) bool {
	_, ok := sanskritMarks[token]
	return ok
}

// structuralParse is one strategy's reading of a token together with
// its validation outcome.
type structuralParse struct {
	syl      *syllableComponents
	length   int
	errors   []ValidationError
	warnings []ValidationError
}

// bestStructuralParse re-parses a token with five structural strategies
// and picks the best reading: a complete parse with no rule violations
// wins; failing that, the complete parse with the fewest violations,
// then the longest valid partial, then the least-broken partial. A
// parse counts as complete when it consumes the token up to one
// character of slack for the unwritten inherent vowel.
func bestStructuralParse(token string) *syllableComponents {
	strategies := []func(string) (*syllableComponents, int){
		vParseSimple,
		vParseWithSubscript,
		vParseWithSuperscript,
		vParseWithPrescript,
		vParseFull,
	}

	var valid, invalid []structuralParse
	for _, strategy := range strategies {
		syl, length := strategy(token)
		if syl == nil || length == 0 {
			continue
		}
		errs, warns := validateComponents(syl, token, 0)
		p := structuralParse{syl: syl, length: length, errors: errs, warnings: warns}
		if len(errs) == 0 {
			valid = append(valid, p)
		} else {
			invalid = append(invalid, p)
		}
	}

	tokenLen := len([]rune(token))
	complete := func(p structuralParse) bool { return p.length >= tokenLen-1 }

	var completeValid, completeInvalid []structuralParse
	for _, p := range valid {
		if complete(p) {
			completeValid = append(completeValid, p)
		}
	}
	for _, p := range invalid {
		if complete(p) {
			completeInvalid = append(completeInvalid, p)
		}
	}

	switch {
	case len(completeValid) > 0:
		return longestParse(completeValid).syl
	case len(completeInvalid) > 0:
		return leastBrokenParse(completeInvalid).syl
	case len(valid) > 0:
		return longestParse(valid).syl
	case len(invalid) > 0:
		return leastBrokenParse(invalid).syl
	}
	return nil
}

func longestParse(parses []structuralParse) structuralParse {
	best := parses[0]
	for _, p := range parses[1:] {
		if p.length > best.length {
			best = p
		}
	}
	return best
}

func leastBrokenParse(parses []structuralParse) structuralParse {
	best := parses[0]
	for _, p := range parses[1:] {
		if len(p.errors) < len(best.errors) ||
			(len(p.errors) == len(best.errors) && p.length > best.length) {
			best = p
		}
	}
	return best
}

// vMatchRoot matches a root consonant, case-sensitively first so the
// Sanskrit capitals win, then case-folded. The returned root is
// lowercased for the rule-table lookups.
func vMatchRoot(token string, pos int) (string, int) {
	rest := token[pos:]
	for _, key := range consonantKeys {
		if strings.HasPrefix(rest, key) {
			return strings.ToLower(key), pos + len(key)
		}
	}
	lower := strings.ToLower(rest)
	for _, key := range consonantKeys {
		if strings.HasPrefix(lower, strings.ToLower(key)) {
			return strings.ToLower(key), pos + len(key)
		}
	}
	return "", pos
}

// vMatchVowel matches a vowel spelling. The inherent 'a' is accepted
// only when allowA is set and it is not the last character, so a
// trailing written 'a' is left as the implicit-vowel slack.
func vMatchVowel(token string, pos int, allowA bool) (string, int) {
	rest := token[pos:]
	for _, key := range vowelKeys {
		if !strings.HasPrefix(rest, key) {
			continue
		}
		if key == "a" {
			if allowA && pos+1 < len(token) {
				return key, pos + len(key)
			}
			continue
		}
		return key, pos + len(key)
	}
	return "", pos
}

func vMatchPostscripts(token string, pos int) (string, string, int) {
	lower := strings.ToLower(token[pos:])
	post1 := ""
	for _, post := range []string{"ng", "g", "d", "n", "b", "m", "r", "l", "s"} {
		if strings.HasPrefix(lower, post) {
			post1 = post
			pos += len(post)
			break
		}
	}
	post2 := ""
	if post1 != "" {
		lower = strings.ToLower(token[pos:])
		for _, post := range []string{"s", "d"} {
			if strings.HasPrefix(lower, post) {
				post2 = post
				pos += len(post)
				break
			}
		}
	}
	return post1, post2, pos
}

func vParseSimple(token string) (*syllableComponents, int) {
	root, pos := vMatchRoot(token, 0)
	if root == "" {
		return nil, 0
	}
	vowel, pos := vMatchVowel(token, pos, true)
	post1, post2, pos := vMatchPostscripts(token, pos)
	return &syllableComponents{
		root: root, vowel: vowel, postscript1: post1, postscript2: post2,
	}, pos
}

func vParseWithSubscript(token string) (*syllableComponents, int) {
	root, pos := vMatchRoot(token, 0)
	if root == "" {
		return nil, 0
	}
	var subs []string
	for len(subs) < 2 {
		matched := ""
		lower := strings.ToLower(token[pos:])
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
		pos += len(matched)
	}
	if len(subs) == 0 {
		return nil, 0
	}
	vowel, pos := vMatchVowel(token, pos, true)
	post1, post2, pos := vMatchPostscripts(token, pos)
	return &syllableComponents{
		root: root, subscript: strings.Join(subs, "+"),
		vowel: vowel, postscript1: post1, postscript2: post2,
	}, pos
}

func vParseWithSuperscript(token string) (*syllableComponents, int) {
	superscript, pos := matchLetterOf(token, 0, superscriptLetters)
	if superscript == "" {
		return nil, 0
	}
	root, pos := vMatchRoot(token, pos)
	if root == "" {
		return nil, 0
	}
	vowel, pos := vMatchVowel(token, pos, false)
	post1, post2, pos := vMatchPostscripts(token, pos)
	return &syllableComponents{
		superscript: superscript, root: root,
		vowel: vowel, postscript1: post1, postscript2: post2,
	}, pos
}

func vParseWithPrescript(token string) (*syllableComponents, int) {
	prescript, pos := matchLetterOf(token, 0, prescriptLetters)
	if prescript == "" {
		return nil, 0
	}
	root, pos := vMatchRoot(token, pos)
	if root == "" {
		return nil, 0
	}
	vowel, pos := vMatchVowel(token, pos, false)
	post1, post2, pos := vMatchPostscripts(token, pos)
	return &syllableComponents{
		prescript: prescript, root: root,
		vowel: vowel, postscript1: post1, postscript2: post2,
	}, pos
}

// vParseFull reads prescript and superscript leniently and requires at
// least one of them, so it never duplicates the simpler strategies.
func vParseFull(token string) (*syllableComponents, int) {
	prescript, pos := matchLetterOf(token, 0, prescriptLetters)
	superscript, pos := matchLetterOf(token, pos, superscriptLetters)
	root, pos := vMatchRoot(token, pos)
	if root == "" {
		return nil, 0
	}
	subscript, pos := matchLetterOf(token, pos, subscriptOrder)
	vowel, pos := vMatchVowel(token, pos, true)
	post1, post2, pos := vMatchPostscripts(token, pos)
	if prescript == "" && superscript == "" {
		return nil, 0
	}
	return &syllableComponents{
		prescript: prescript, superscript: superscript, root: root,
		subscript: subscript, vowel: vowel,
		postscript1: post1, postscript2: post2,
	}, pos
}

func matchLetterOf(token string, pos int, letters []string) (string, int) {
	lower := strings.ToLower(token[pos:])
	for _, letter := range letters {
		if strings.HasPrefix(lower, letter) {
			return letter, pos + len(letter)
		}
	}
	return "", pos
}

// validateComponents checks a parse against the combination tables.
// An unknown subscript chain is downgraded to a warning, tolerating
// rare and mantra-only stacks.
func validateComponents(syl *syllableComponents, token string, position int) ([]ValidationError, []ValidationError) {
	var errors, warnings []ValidationError

	if syl.prescript != "" && syl.root != "" {
		roots := prescriptRules[syl.prescript]
		if roots == nil || !roots.contains(syl.root) {
			errors = append(errors, ValidationError{
				Kind:     InvalidPrescript,
				Position: position,
				Syllable: token,
				Message: fmt.Sprintf("invalid prescript %q before root %q",
					syl.prescript, syl.root),
				Suggestion: fmt.Sprintf("valid roots after %q: %s", syl.prescript, roots),
			})
		}
	}
	if syl.superscript != "" && syl.root != "" {
		roots := superscriptRules[syl.superscript]
		if roots == nil || !roots.contains(syl.root) {
			errors = append(errors, ValidationError{
				Kind:     InvalidSuperscript,
				Position: position,
				Syllable: token,
				Message: fmt.Sprintf("invalid superscript %q above root %q",
					syl.superscript, syl.root),
				Suggestion: fmt.Sprintf("valid roots under %q: %s", syl.superscript, roots),
			})
		}
	}
	if syl.subscript != "" && syl.root != "" {
		roots := subscriptRules[syl.subscript]
		if roots != nil && !roots.contains(syl.root) {
			errors = append(errors, ValidationError{
				Kind:     InvalidSubscript,
				Position: position,
				Syllable: token,
				Message: fmt.Sprintf("invalid subscript %q below root %q",
					syl.subscript, syl.root),
				Suggestion: fmt.Sprintf("valid roots above %q: %s", syl.subscript, roots),
			})
		} else if roots == nil {
			warnings = append(warnings, ValidationError{
				Kind:     AmbiguousParsing,
				Position: position,
				Syllable: token,
				Message: fmt.Sprintf("unusual subscript combination %q with root %q",
					syl.subscript, syl.root),
				Suggestion: "verify this is intended EWTS",
			})
		}
	}
	if syl.postscript1 != "" && !validPostscripts.contains(syl.postscript1) {
		errors = append(errors, ValidationError{
			Kind:       InvalidPostscript,
			Position:   position,
			Syllable:   token,
			Message:    fmt.Sprintf("invalid postscript %q", syl.postscript1),
			Suggestion: fmt.Sprintf("valid postscripts: %s", validPostscripts),
		})
	}
	if syl.postscript2 != "" && !validSecondPostscripts.contains(syl.postscript2) {
		errors = append(errors, ValidationError{
			Kind:       InvalidPostscript,
			Position:   position,
			Syllable:   token,
			Message:    fmt.Sprintf("invalid second postscript %q", syl.postscript2),
			Suggestion: fmt.Sprintf("valid second postscripts: %s", validSecondPostscripts),
		})
	}
	return errors, warnings
}
