package excerpt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFromHTML(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		html     string
		maxRunes int
		want     string
	}{
		{
			name:     "空正文",
			html:     "  ",
			maxRunes: 10,
			want:     "",
		},
		{
			name:     "去掉标签并合并空白",
			html:     "<h1>Hello</h1>\n<p>big   <b>world</b></p>",
			maxRunes: 200,
			want:     "Hello big world",
		},
		{
			name:     "去掉脚本和样式",
			html:     "<style>p{}</style><p>text</p><script>alert(1)</script>",
			maxRunes: 200,
			want:     "text",
		},
		{
			name:     "超长截断",
			html:     "<p>abcdefghij</p>",
			maxRunes: 4,
			want:     "abcd…",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FromHTML(tc.html, tc.maxRunes))
		})
	}
}

func TestTruncate_Multibyte(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("新闻", 150)
	res := Truncate(text, DefaultMaxRunes)
	assert.True(t, utf8.ValidString(res))
	assert.Equal(t, DefaultMaxRunes+1, utf8.RuneCountInString(res))
}
