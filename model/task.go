package model

import (
	"time"
)

type Task struct {
	TaskID         string    `gorm:"column:task_id;type:varchar(36);primaryKey"`
	OrganizationID string    `gorm:"column:organization_id;type:varchar(36);not null;index"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"`
	Status         string    `gorm:"column:status;type:enum('todo','in_progress','done');default:'todo';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}
