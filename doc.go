/*
Package wylie transliterates between Extended Wylie (EWTS) and Tibetan
Unicode (block U+0F00–U+0FFF).

Description

Extended Wylie is the de-facto standard Latin transliteration scheme for
the Tibetan script, defined by the Tibetan and Himalayan Library (THL).
It encodes Tibetan syllables as sequences of ASCII letters, with
capitalization and a small set of markers ('+', '.', '-', '~') carrying
the distinctions plain ASCII cannot express: long vowels, Sanskrit
retroflex consonants, anusvara and visarga, and explicit consonant
stacking.

A Tibetan syllable is a stack built around a root consonant:

	[prescript] [superscript] ROOT [subscript...] [vowel] [postscript] [postscript2]

Only certain combinations of these slots are orthographically legal, and
the transliteration "bsgrubs" must be decoded as prescript b + superscript
s + root g + subscript r + vowel u + postscripts b, s before it can be
rendered as the codepoint sequence བསྒྲུབས. This package implements that
decoding with a greedy multi-strategy parser, the inverse decomposition
from Unicode back to EWTS, and a structural validator that reports why an
input is not well-formed Wylie.

The three top-level operations are

	unicode := wylie.WylieToUnicode("bla ma", true)   // བླ་མ
	ewts := wylie.UnicodeToWylie("བླ་མ")              // bla ma
	result := wylie.Validate("gka")                   // invalid prescript

All operations are pure functions over immutable tables and are safe for
concurrent use. Streaming conversion is available through
transform.Transformer adapters (see ToUnicode and ToWylie).

Further Reading

THL Extended Wylie Transliteration Scheme:
http://www.thlib.org/reference/transliteration/#!essay=/thl/ewts/

___________________________________________________________________________

BSD License

Copyright © 2026, Konstantin Budylov

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package wylie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wylie'
func tracer() tracing.Trace {
	return tracing.Select("wylie")
}
