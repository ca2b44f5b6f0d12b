package htmlutil

import (
	"strings"

	"github.com/k3a/html2text"
)

// ToText converts an HTML fragment to plain text with entities decoded and
// runs of whitespace collapsed to single spaces.
func ToText(s string) string {
	return strings.Join(strings.Fields(html2text.HTML2Text(s)), " ")
}

// Label normalises a markup label such as an image alt for matching:
// plain text, lower case.
func Label(s string) string {
	return strings.ToLower(ToText(s))
}
