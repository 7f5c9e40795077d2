package dtos

import "github.com/ameyclubrealty/clubrealty-admin-api/internal/models"

type BlogPostRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Slug            string   `json:"slug" validate:"max=200"`
	Content         string   `json:"content"`
	MetaTitle       string   `json:"metaTitle" validate:"max=200"`
	MetaDescription string   `json:"metaDescription" validate:"max=500"`
	MetaKeywords    string   `json:"metaKeywords" validate:"max=500"`
	Category        string   `json:"category" validate:"max=100"`
	Images          []string `json:"images"`
	Published       bool     `json:"published"`
}

func (r BlogPostRequest) ToModel() *models.BlogPost {
	b := &models.BlogPost{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
		Category:        r.Category,
		Images:          r.Images,
		Published:       r.Published,
	}
	b.Normalize()
	return b
}
