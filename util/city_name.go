package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeCityName title-cases the first rune of a trimmed city name.
func CapitalizeCityName(city string) string {
	city = strings.TrimSpace(city)
	r, size := utf8.DecodeRuneInString(city)
	if r == utf8.RuneError {
		return city
	}
	return string(unicode.ToTitle(r)) + city[size:]
}
