package model

import (
	"time"
)

type Comment struct {
	CommentID      string    `gorm:"column:comment_id;type:varchar(36);primaryKey"`
	OrganizationID string    `gorm:"column:organization_id;type:varchar(36);not null;index"`
	AuthorID       string    `gorm:"column:author_id;type:varchar(36);not null"`
	Content        string    `gorm:"column:content;type:text;not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}
