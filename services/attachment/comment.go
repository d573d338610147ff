package attachment

import (
	"fmt"

	"comphq/model"
	"comphq/storage"
)

// NewCommentHandler serves attachments owned by comments. Comments have no
// page of their own, so the stale marker names the comment itself and the
// dashboard resolves it to the thread it renders in.
func NewCommentHandler(repo Repository, store storage.ObjectStore, invalidator ViewInvalidator) Handler {
	return &entityHandler{
		entityType:  model.EntityTypeComment,
		viewFor:     func(entityID string) string { return fmt.Sprintf("comments/%s", entityID) },
		repo:        repo,
		store:       store,
		invalidator: invalidator,
	}
}
