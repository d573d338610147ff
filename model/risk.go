package model

import (
	"time"
)

type Risk struct {
	RiskID         string    `gorm:"column:risk_id;type:varchar(36);primaryKey"`
	OrganizationID string    `gorm:"column:organization_id;type:varchar(36);not null;index"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"`
	Severity       string    `gorm:"column:severity;type:enum('low','medium','high','critical');default:'low';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Risk) TableName() string {
	return "risks"
}
