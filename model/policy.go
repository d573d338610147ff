package model

import (
	"time"
)

type Policy struct {
	PolicyID       string    `gorm:"column:policy_id;type:varchar(36);primaryKey"`
	OrganizationID string    `gorm:"column:organization_id;type:varchar(36);not null;index"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	Status         string    `gorm:"column:status;type:enum('draft','published','needs_review');default:'draft';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Policy) TableName() string {
	return "policies"
}
