package attachment

import (
	"context"
	"errors"

	"comphq/model"

	"gorm.io/gorm"
)

// Repository is tenant-scoped access to attachment records. Every query
// carries the organization id, so a missing row and a row owned by another
// organization are indistinguishable to callers.
type Repository interface {
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, attachmentID, orgID string) (*model.Attachment, error)
	// FindByIDAndType additionally requires the stored entity type to match.
	FindByIDAndType(ctx context.Context, attachmentID, orgID string, entityType model.AttachmentEntityType) (*model.Attachment, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, attachmentID, orgID string) (bool, error)
	Create(ctx context.Context, att *model.Attachment) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, attachmentID, orgID string) (*model.Attachment, error) {
	var att model.Attachment
	err := r.db.WithContext(ctx).
		Where("attachment_id = ? AND organization_id = ?", attachmentID, orgID).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *GormRepository) FindByIDAndType(ctx context.Context, attachmentID, orgID string, entityType model.AttachmentEntityType) (*model.Attachment, error) {
	var att model.Attachment
	err := r.db.WithContext(ctx).
		Where("attachment_id = ? AND organization_id = ? AND entity_type = ?", attachmentID, orgID, entityType).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *GormRepository) Delete(ctx context.Context, attachmentID, orgID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("attachment_id = ? AND organization_id = ?", attachmentID, orgID).
		Delete(&model.Attachment{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *GormRepository) Create(ctx context.Context, att *model.Attachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}
