package domain

import "time"

// ArticleSummary 文章的只读投影，仅用于渲染简报
type ArticleSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	PublishDate time.Time `json:"publishDate"`
	Category    string    `json:"category"`
}

// ArticleIDs 按顺序提取文章ID
func ArticleIDs(articles []ArticleSummary) []int64 {
	ids := make([]int64, 0, len(articles))
	for i := range articles {
		ids = append(ids, articles[i].ID)
	}
	return ids
}
