package model

import (
	"time"
)

// AttachmentEntityType is the closed set of domain object kinds that may own
// an attachment. The stored value routes every operation on the record, so
// unknown values are rejected at the service boundary, never defaulted.
type AttachmentEntityType string

const (
	EntityTypeTask    AttachmentEntityType = "task"
	EntityTypePolicy  AttachmentEntityType = "policy"
	EntityTypeRisk    AttachmentEntityType = "risk"
	EntityTypeComment AttachmentEntityType = "comment"
)

func (t AttachmentEntityType) Valid() bool {
	switch t {
	case EntityTypeTask, EntityTypePolicy, EntityTypeRisk, EntityTypeComment:
		return true
	}
	return false
}

// Attachment is immutable once created: the upload flow persists it after the
// blob is stored, and the only mutation ever applied is deletion.
type Attachment struct {
	AttachmentID   string               `gorm:"column:attachment_id;type:varchar(36);primaryKey"`
	OrganizationID string               `gorm:"column:organization_id;type:varchar(36);not null;index"`
	EntityType     AttachmentEntityType `gorm:"column:entity_type;type:enum('task','policy','risk','comment');not null"`
	EntityID       string               `gorm:"column:entity_id;type:varchar(36);not null;index"`
	FileName       string               `gorm:"column:file_name;type:varchar(255);not null"`
	FileType       string               `gorm:"column:file_type;type:varchar(100)"`
	URL            string               `gorm:"column:url;type:varchar(1024);not null"`
	UploadAt       time.Time            `gorm:"column:upload_at;autoCreateTime"`
}

func (Attachment) TableName() string {
	return "attachments"
}
