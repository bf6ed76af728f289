package wylie

import "strings"

// syllableComponents is the decomposition of one Wylie syllable into the
// structural slots of the Tibetan script:
//
//	[prescript] [superscript] ROOT [subscript] [vowel] [postscript1] [postscript2]
//
// Root is the only required slot. For vowel-initial syllables the root is
// the pure-vowel letter "a". Subscript may hold a '+'-joined chain for
// double subscripts ("r+w") and for explicit Sanskrit stacks ("d+dh").
type syllableComponents struct {
	root        string
	prescript   string
	superscript string
	subscript   string
	// subscriptExplicit records that the subscript chain was written with
	// '+' markers and must be resolved through the subjoined table,
	// case-sensitively.
	subscriptExplicit bool
	vowel             string
	postscript1       string
	postscript2       string
}

// subscriptTokens splits the subscript chain into its letters.
func (syl *syllableComponents) subscriptTokens() []string {
	if syl.subscript == "" {
		return nil
	}
	return strings.Split(syl.subscript, "+")
}

func (syl *syllableComponents) String() string {
	var b strings.Builder
	if syl.prescript != "" {
		b.WriteString(syl.prescript)
		b.WriteByte('.')
	}
	if syl.superscript != "" {
		b.WriteString(syl.superscript)
		b.WriteByte('^')
	}
	b.WriteString(syl.root)
	if syl.subscript != "" {
		b.WriteByte('_')
		b.WriteString(syl.subscript)
	}
	b.WriteByte('(')
	b.WriteString(syl.vowel)
	b.WriteByte(')')
	b.WriteString(syl.postscript1)
	b.WriteString(syl.postscript2)
	return b.String()
}
