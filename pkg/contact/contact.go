// Package contact builds the device deep links used as terminal actions:
// the telephone dialer and WhatsApp chats.
package contact

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWhatsAppCountryCode is the Comoros calling code
const DefaultWhatsAppCountryCode = "269"

// CallURI returns the tel: URI for a phone number as stored.
func CallURI(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}
	return "tel:" + phone
}

// Digits strips every non-digit character.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppURL returns the wa.me chat link for a local phone number.
func WhatsAppURL(phone, countryCode string) string {
	digits := Digits(phone)
	if digits == "" {
		return ""
	}
	if countryCode == "" {
		countryCode = DefaultWhatsAppCountryCode
	}
	return "https://wa.me/" + countryCode + digits
}

// Initials returns the upper-cased first letter of each name.
func Initials(firstName, lastName string) string {
	return firstRune(firstName) + firstRune(lastName)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
