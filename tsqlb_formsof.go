package tsqlb

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result of `FormsOf` for a phrase without any tokens.
const FormsOfEmpty = `formsof(THESAURUS, "")`

const (
	formsOfPrefix  = `FORMSOF(THESAURUS, "`
	formsOfSuffix  = `" )`
	formsOfAnd     = ` AND `
	formsOfOr      = ` OR `
	formsOfJoiner  = `+`
	formsOfMinSize = 3
)

// Splits on a quoted substring, capturing its contents, or on one whitespace
// character, including vertical tabs, NEL, and Unicode spaces such as NBSP.
var formsOfReg = regexp.MustCompile(`"([^"]+)"|[\s\v\x{85}\p{Z}]`)

var formsOfEscaper = strings.NewReplacer(`'`, `''`, `*`, `\*\`)

/*
Converts a free-text phrase into a full-text-search boolean expression suitable
for `CONTAINS`. Every word becomes a `FORMSOF(THESAURUS, "WORD" )` clause.
Words joined by `+` are AND-joined, and everything else is OR-joined:

	FormsOf(`hello`)
	// FORMSOF(THESAURUS, "HELLO" )

	FormsOf(`a+b`)
	// FORMSOF(THESAURUS, "A" ) AND FORMSOF(THESAURUS, "B" )

	FormsOf(`"new york" city`)
	// FORMSOF(THESAURUS, "NEW YORK" ) OR FORMSOF(THESAURUS, "CITY" )

Each word has its single quotes doubled, its asterisks replaced with `\*\`, and
is uppercased. A phrase without tokens produces `FormsOfEmpty`. See
`PhraseTokens` for the tokenization rules.
*/
func FormsOf(phrase string) string {
	tokens := PhraseTokens(phrase)
	caser := cases.Upper(language.Und)

	var buf []byte
	var found bool

	for _, token := range tokens {
		size := len(buf)
		if found {
			buf = append(buf, formsOfOr...)
		}
		mark := len(buf)

		if strings.Contains(token, formsOfJoiner) {
			var inner bool
			for _, word := range strings.Split(token, formsOfJoiner) {
				if word == `` {
					continue
				}
				if inner {
					buf = append(buf, formsOfAnd...)
				}
				inner = true
				buf = appendFormsOfClause(buf, caser, word)
			}
		} else {
			buf = appendFormsOfClause(buf, caser, token)
		}

		// A token consisting only of `+` contributes nothing.
		if len(buf) == mark {
			buf = buf[:size]
			continue
		}
		found = true
	}

	if len(buf) == 0 {
		return FormsOfEmpty
	}
	return string(buf)
}

func appendFormsOfClause(buf []byte, caser cases.Caser, word string) []byte {
	buf = append(buf, formsOfPrefix...)
	buf = append(buf, caser.String(formsOfEscaper.Replace(word))...)
	buf = append(buf, formsOfSuffix...)
	return buf
}

/*
Tokenizes a free-text phrase for `FormsOf`. Steps, in order:

  - Collapses " +" and "+ " into "+", so that words joined by `+` stay in one
    token.
  - If the phrase has an odd number of double quotes, drops the last one.
  - Splits on quoted substrings, which become tokens without their quotes, and
    on whitespace. Empty tokens are discarded.
  - If at least one token is longer than 2 characters, keeps only such tokens.
    Otherwise keeps all of them.
*/
func PhraseTokens(phrase string) []string {
	phrase = collapseRepeated(phrase, ` +`, formsOfJoiner)
	phrase = collapseRepeated(phrase, `+ `, formsOfJoiner)

	if strings.Count(phrase, `"`)%2 != 0 {
		ind := strings.LastIndexByte(phrase, '"')
		phrase = phrase[:ind] + phrase[ind+1:]
	}

	tokens := splitPhrase(phrase)

	var long []string
	for _, token := range tokens {
		if utf8.RuneCountInString(token) >= formsOfMinSize {
			long = append(long, token)
		}
	}
	if len(long) > 0 {
		return long
	}
	return tokens
}

func collapseRepeated(src, from, to string) string {
	for strings.Contains(src, from) {
		src = strings.ReplaceAll(src, from, to)
	}
	return src
}

func splitPhrase(src string) []string {
	var out []string
	prev := 0

	for _, match := range formsOfReg.FindAllStringSubmatchIndex(src, -1) {
		out = appendNonEmpty(out, src[prev:match[0]])
		if match[2] >= 0 {
			out = appendNonEmpty(out, src[match[2]:match[3]])
		}
		prev = match[1]
	}

	return appendNonEmpty(out, src[prev:])
}

func appendNonEmpty(out []string, val string) []string {
	if val != `` {
		out = append(out, val)
	}
	return out
}
