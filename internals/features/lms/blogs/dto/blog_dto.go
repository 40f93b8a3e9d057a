package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/blogs/model"
)

type CreateBlogRequest struct {
	BlogTitle   string   `json:"blog_title" form:"blog_title" validate:"required,min=3,max=255"`
	BlogContent string   `json:"blog_content" form:"blog_content" validate:"required"`
	BlogTags    []string `json:"blog_tags" form:"blog_tags" validate:"omitempty,dive,min=1,max=50"`
}

type UpdateBlogRequest struct {
	BlogTitle       *string  `json:"blog_title" form:"blog_title" validate:"omitempty,min=3,max=255"`
	BlogContent     *string  `json:"blog_content" form:"blog_content"`
	BlogTags        []string `json:"blog_tags" form:"blog_tags" validate:"omitempty,dive,min=1,max=50"`
	BlogIsPublished *bool    `json:"blog_is_published" form:"blog_is_published"`
}

type BlogDTO struct {
	BlogID          string    `json:"blog_id"`
	BlogAuthorID    string    `json:"blog_author_id"`
	BlogTitle       string    `json:"blog_title"`
	BlogSlug        string    `json:"blog_slug"`
	BlogContent     string    `json:"blog_content"`
	BlogCoverURL    *string   `json:"blog_cover_url,omitempty"`
	BlogTags        []string  `json:"blog_tags"`
	BlogIsPublished bool      `json:"blog_is_published"`
	BlogCreatedAt   time.Time `json:"blog_created_at"`

	AuthorName string `json:"author_name,omitempty"`
}

func ToBlogDTO(m model.BlogModel) BlogDTO {
	out := BlogDTO{
		BlogID:          m.BlogID,
		BlogAuthorID:    m.BlogAuthorID,
		BlogTitle:       m.BlogTitle,
		BlogSlug:        m.BlogSlug,
		BlogContent:     m.BlogContent,
		BlogCoverURL:    m.BlogCoverURL,
		BlogTags:        m.BlogTags,
		BlogIsPublished: m.BlogIsPublished,
		BlogCreatedAt:   m.BlogCreatedAt,
	}
	if m.Author != nil {
		out.AuthorName = m.Author.UserFirstName + " " + m.Author.UserLastName
	}
	return out
}

func ToBlogDTOs(ms []model.BlogModel) []BlogDTO {
	out := make([]BlogDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBlogDTO(m))
	}
	return out
}
