package attachment

import (
	"fmt"

	"comphq/model"
	"comphq/storage"
)

// NewPolicyHandler serves attachments owned by policies.
func NewPolicyHandler(repo Repository, store storage.ObjectStore, invalidator ViewInvalidator) Handler {
	return &entityHandler{
		entityType:  model.EntityTypePolicy,
		viewFor:     func(entityID string) string { return fmt.Sprintf("policies/%s", entityID) },
		repo:        repo,
		store:       store,
		invalidator: invalidator,
	}
}
