package interp

import (
	"strings"
	"unicode"
)

const alphabet = 26

// Rune morphs one character into another. A destination space is always a space.
// Otherwise the result runs through the alphabet from the source letter to the
// destination letter plus one full cycle, so a character that is already correct
// still visibly spins, and takes the case of the destination.
func Rune(from, to rune, fraction float64) rune {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	if to == ' ' {
		return ' '
	}

	idx := Int(letterIndex(from), letterIndex(to)+alphabet, fraction) % alphabet
	r := 'a' + rune(idx)
	if unicode.IsUpper(to) {
		return unicode.ToUpper(r)
	}
	return r
}

// String morphs one string into another. The length of the result is interpolated;
// the leading characters that are already due are copied from the destination and
// the rest are morphed with Rune.
func String(from, to string, fraction float64) string {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}

	src := []rune(from)
	dst := []rune(to)
	length := Int(len(src), len(dst), fraction)
	done := int(float64(len(dst)) * fraction)

	var sb strings.Builder
	for i := 0; i < length; i++ {
		f := 'a'
		if i < len(src) {
			f = src[i]
		}
		t := ' '
		if i < len(dst) {
			t = dst[i]
		}

		if i < done {
			sb.WriteRune(t)
		} else {
			sb.WriteRune(Rune(f, t, fraction))
		}
	}
	return sb.String()
}

func letterIndex(r rune) int {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0
	}
	return int(r - 'a')
}
