package attachment

import (
	"fmt"

	"comphq/model"
	"comphq/storage"
)

// NewRiskHandler serves attachments owned by risks. The risk register keeps
// its detail view under the singular "risk" segment.
func NewRiskHandler(repo Repository, store storage.ObjectStore, invalidator ViewInvalidator) Handler {
	return &entityHandler{
		entityType:  model.EntityTypeRisk,
		viewFor:     func(entityID string) string { return fmt.Sprintf("risk/%s", entityID) },
		repo:        repo,
		store:       store,
		invalidator: invalidator,
	}
}
