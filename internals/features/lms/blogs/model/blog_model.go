package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "coursehub_backend/internals/features/users/user/model"
)

type BlogModel struct {
	BlogID          string         `gorm:"column:blog_id;primaryKey;type:uuid" json:"blog_id"`
	BlogAuthorID    string         `gorm:"column:blog_author_id;type:uuid;not null;index" json:"blog_author_id"`
	BlogTitle       string         `gorm:"column:blog_title;type:varchar(255);not null" json:"blog_title"`
	BlogSlug        string         `gorm:"column:blog_slug;type:varchar(160);not null;uniqueIndex" json:"blog_slug"`
	BlogContent     string         `gorm:"column:blog_content;type:text" json:"blog_content"`
	BlogCoverURL    *string        `gorm:"column:blog_cover_url;type:text" json:"blog_cover_url,omitempty"`
	BlogTags        pq.StringArray `gorm:"column:blog_tags;type:text[]" json:"blog_tags"`
	BlogIsPublished bool           `gorm:"column:blog_is_published;not null;default:false;index" json:"blog_is_published"`
	BlogCreatedAt   time.Time      `gorm:"column:blog_created_at;autoCreateTime" json:"blog_created_at"`
	BlogUpdatedAt   time.Time      `gorm:"column:blog_updated_at;autoUpdateTime" json:"blog_updated_at"`

	Author *userModel.UserModel `gorm:"foreignKey:BlogAuthorID;references:UserID" json:"author,omitempty"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

func (m *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlogID == "" {
		m.BlogID = uuid.NewString()
	}
	return nil
}
