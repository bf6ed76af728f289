/*
Package acip converts between ACIP and EWTS transliteration.

ACIP (Asian Classics Input Project) is the input scheme used for large
digitization efforts of Tibetan Buddhist texts. It differs from EWTS in
systematic ways: consonants are written in uppercase, TS/TZ swap roles
with tsh/ts, the reversed vowels are spelled with a bare or
apostrophe-prefixed i, and comments and page annotations appear inline
in @... and [...] form. The conversion is a staged rewrite pipeline
rather than a parser; Tibetan Unicode output is obtained by chaining
into the wylie package:

	ewts := acip.ToEWTS("BSGRUBS")       // bsgrubs
	uc := acip.ToUnicode("BLA MA", true) // བླ་མ

Reference: http://www.asianclassics.org/download/tibetancode/ticode.pdf

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
package acip

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wylie.acip'
func tracer() tracing.Trace {
	return tracing.Select("wylie.acip")
}
