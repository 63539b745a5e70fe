// Package stemmer implements a suffix-stripping stemmer for Russian words.
//
// The algorithm is the conventional Snowball-style procedure: compute the
// RV region (one past the first vowel), then apply ordered groups of
// suffix removals, each permitted only while the remaining word is at
// least RV runes long. Suffix groups are data (see rules.go); a single
// driver tries each group in order, first match wins.
package stemmer

import "strings"

const vowels = "аеиоуыэюяё"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// rvOffset returns the offset one past the first vowel of word,
// or -1 when the word contains no vowel.
func rvOffset(word []rune) int {
	for i, r := range word {
		if isVowel(r) {
			return i + 1
		}
	}
	return -1
}

// Stem returns the stem of a single lowercased Russian word.
// Words without vowels are returned unchanged. The result is never
// empty for non-empty input: removals stop at the RV boundary.
func Stem(word string) string {
	w := []rune(word)
	rv := rvOffset(w)
	if rv < 0 {
		return word
	}

	// Step 1: perfective gerund ends the step; otherwise strip an
	// optional reflexive ending, then try adjectival, verb and noun
	// alternatives in order.
	if !stripGerund(&w, rv) {
		strip(&w, reflexive, rv)
		if !stripAdjectival(&w, rv) && !stripVerb(&w, rv) {
			strip(&w, noun, rv)
		}
	}

	// Step 2: trailing "и".
	strip(&w, trailingI, rv)

	// Step 3: derivational.
	strip(&w, derivational, rv)

	// Step 4: double "н", superlative, soft sign.
	if hasSuffix(w, doubleN) && len(w)-len(doubleN) >= rv {
		w = w[:len(w)-1]
	}
	strip(&w, superlative, rv)
	strip(&w, softSign, rv)

	return string(w)
}

func hasSuffix(w, suffix []rune) bool {
	if len(w) < len(suffix) {
		return false
	}
	tail := w[len(w)-len(suffix):]
	for i, r := range suffix {
		if tail[i] != r {
			return false
		}
	}
	return true
}

// strip removes the first suffix from the group that matches the end of
// the word without crossing the RV boundary. Reports whether a removal
// happened.
func strip(w *[]rune, group [][]rune, rv int) bool {
	for _, s := range group {
		if !hasSuffix(*w, s) {
			continue
		}
		if rest := len(*w) - len(s); rest >= rv {
			*w = (*w)[:rest]
			return true
		}
	}
	return false
}

// stripAfterAYa is the variant used by gerund group 1, verb group 1 and
// participle group 1: the rune immediately before the suffix must be
// "а" or "я".
func stripAfterAYa(w *[]rune, group [][]rune, rv int) bool {
	for _, s := range group {
		if !hasSuffix(*w, s) {
			continue
		}
		rest := len(*w) - len(s)
		if rest < rv || rest == 0 {
			continue
		}
		if prev := (*w)[rest-1]; prev != 'а' && prev != 'я' {
			continue
		}
		*w = (*w)[:rest]
		return true
	}
	return false
}

func stripGerund(w *[]rune, rv int) bool {
	if stripAfterAYa(w, gerund1, rv) {
		return true
	}
	return strip(w, gerund2, rv)
}

// stripAdjectival removes an adjective ending and, when one was found,
// the participle suffix that may precede it.
func stripAdjectival(w *[]rune, rv int) bool {
	if !strip(w, adjective, rv) {
		return false
	}
	if !stripAfterAYa(w, participle1, rv) {
		strip(w, participle2, rv)
	}
	return true
}

func stripVerb(w *[]rune, rv int) bool {
	if stripAfterAYa(w, verb1, rv) {
		return true
	}
	return strip(w, verb2, rv)
}
