package navigation

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/net/html"
)

// FormatDistance renders meters the way the tour screens show them:
// "350 m" below a kilometre, "1.2 km" above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders seconds as "12 min" or "1 u 5 min".
func FormatDuration(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d u", h)
	}
	return fmt.Sprintf("%d u %d min", h, m)
}

// StripHTML returns the text content of an HTML fragment with whitespace
// collapsed. Block elements are separated by a single space.
func StripHTML(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "div", "p", "br", "li":
				b.WriteByte(' ')
			}
		}
	}
}
