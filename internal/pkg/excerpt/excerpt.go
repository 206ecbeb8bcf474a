package excerpt

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxRunes 摘要默认长度
const DefaultMaxRunes = 200

// FromHTML 把正文 HTML 转成纯文本摘要，超过 maxRunes 时截断并追加省略号
func FromHTML(html string, maxRunes int) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	return Truncate(text, maxRunes)
}

// Truncate 按字符而不是字节截断
func Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
