package whatsapp

import (
	"net/url"
	"strings"
)

// ShareLink builds a wa.me deep link carrying the message text. When a phone
// number is given the conversation opens pre-addressed; the number is
// reduced to digits first since wa.me rejects formatting characters.
func ShareLink(message, phone string) string {
	v := url.Values{}
	if digits := digitsOnly(phone); digits != "" {
		v.Set("phone", digits)
	}
	v.Set("text", message)
	return "https://wa.me/?" + v.Encode()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
