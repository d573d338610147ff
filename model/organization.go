package model

import (
	"time"
)

type Organization struct {
	OrganizationID string    `gorm:"column:organization_id;type:varchar(36);primaryKey"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}
