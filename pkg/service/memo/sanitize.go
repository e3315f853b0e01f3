package memo

import "strings"

// Sanitize strips the markdown code-fence decoration the model sometimes
// wraps around memo output despite instructions, then trims surrounding
// whitespace. Fences inside the document are left alone.
func Sanitize(html string) string {
	html = strings.TrimSpace(html)
	html = strings.TrimPrefix(html, "```html")
	html = strings.TrimSuffix(html, "```")
	return strings.TrimSpace(html)
}
