package dispatch

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	"net/url"
	"strings"
	texttpl "text/template"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
)

const htmlLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Subject}}</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;max-width:640px;margin:0 auto;padding:16px;color:#222">
<h1 style="font-size:22px">{{.SiteName}}</h1>
<p>Hi {{.Greeting}},</p>
<p>Here is what's new:</p>
{{range .Articles}}
<div style="margin:24px 0">
{{if .Image}}<img src="{{.Image}}" alt="" style="max-width:100%">{{end}}
<h2 style="font-size:18px;margin:8px 0"><a href="{{.URL}}">{{.Title}}</a></h2>
<p style="color:#666;font-size:12px">{{if .Author}}{{.Author}} · {{end}}{{.Date}}{{if .Category}} · {{.Category}}{{end}}</p>
{{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}
</div>
{{end}}
<hr>
<p style="font-size:12px;color:#999">You are receiving this email because you subscribed to {{.SiteName}}.
<a href="{{.UnsubscribeURL}}">Unsubscribe</a></p>
</body>
</html>
`

const textLayout = `{{.SiteName}}

Hi {{.Greeting}},

Here is what's new:
{{range .Articles}}
* {{.Title}}
  {{.URL}}{{if .Excerpt}}
  {{.Excerpt}}{{end}}
{{end}}
--
Unsubscribe: {{.UnsubscribeURL}}
`

type articleView struct {
	Title    string
	URL      string
	Image    string
	Author   string
	Category string
	Excerpt  string
	Date     string
}

type emailView struct {
	Subject        string
	SiteName       string
	Greeting       string
	Articles       []articleView
	UnsubscribeURL string
}

// Renderer 内置的简单版式，不支持自定义模板
type Renderer struct {
	siteName string
	siteURL  string
	html     *htmltpl.Template
	text     *texttpl.Template
}

func NewRenderer(siteName, siteURL string) *Renderer {
	return &Renderer{
		siteName: siteName,
		siteURL:  strings.TrimRight(siteURL, "/"),
		html:     htmltpl.Must(htmltpl.New("newsletter.html").Parse(htmlLayout)),
		text:     texttpl.Must(texttpl.New("newsletter.txt").Parse(textLayout)),
	}
}

// Subject 一篇文章时为 "<站点>: <标题>"，多篇时为 "<站点>: <首篇标题> (+N more)"
func Subject(siteName string, articles []domain.ArticleSummary) string {
	switch len(articles) {
	case 0:
		return siteName
	case 1:
		return fmt.Sprintf("%s: %s", siteName, articles[0].Title)
	default:
		return fmt.Sprintf("%s: %s (+%d more)", siteName, articles[0].Title, len(articles)-1)
	}
}

// UnsubscribeURL 退订链接
func (r *Renderer) UnsubscribeURL(token string) string {
	return r.siteURL + "/unsubscribe?token=" + url.QueryEscape(token)
}

func (r *Renderer) ArticleURL(slug string) string {
	return r.siteURL + "/articles/" + url.PathEscape(slug)
}

// Render 为单个订阅者生成邮件
func (r *Renderer) Render(subject string, articles []domain.ArticleSummary, sub domain.Subscriber) (domain.Message, error) {
	view := emailView{
		Subject:        subject,
		SiteName:       r.siteName,
		Greeting:       sub.Greeting(),
		Articles:       make([]articleView, 0, len(articles)),
		UnsubscribeURL: r.UnsubscribeURL(sub.UnsubscribeToken),
	}
	for _, a := range articles {
		view.Articles = append(view.Articles, articleView{
			Title:    a.Title,
			URL:      r.ArticleURL(a.Slug),
			Image:    a.Image,
			Author:   a.Author,
			Category: a.Category,
			Excerpt:  a.Excerpt,
			Date:     a.PublishDate.UTC().Format(time.DateOnly),
		})
	}
	var html, text bytes.Buffer
	if err := r.html.Execute(&html, view); err != nil {
		return domain.Message{}, fmt.Errorf("渲染 HTML 失败 %w", err)
	}
	if err := r.text.Execute(&text, view); err != nil {
		return domain.Message{}, fmt.Errorf("渲染纯文本失败 %w", err)
	}
	return domain.Message{
		To:      sub.Email,
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
