package highlight

import "strings"

// escaper replaces the five markup-sensitive characters in a single pass,
// so the ampersands it writes are never escaped a second time.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var unescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
)

// Escape makes text safe to place inside overlay markup.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape reverses Escape. Entities other than the five Escape produces
// are left as they are.
func Unescape(text string) string {
	return unescaper.Replace(text)
}
