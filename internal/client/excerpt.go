package client

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AnnouncementExcerpt reduces rich HTML announcement content to a plain-text
// summary of at most limit runes, appending an ellipsis when truncated.
// Unparseable markup degrades to the raw input.
func AnnouncementExcerpt(html string, limit int) string {
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")
	if limit <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}
