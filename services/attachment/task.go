package attachment

import (
	"fmt"

	"comphq/model"
	"comphq/storage"
)

// NewTaskHandler serves attachments owned by tasks. Deleting one marks the
// task detail view stale so open dashboards refetch the attachment list.
func NewTaskHandler(repo Repository, store storage.ObjectStore, invalidator ViewInvalidator) Handler {
	return &entityHandler{
		entityType:  model.EntityTypeTask,
		viewFor:     func(entityID string) string { return fmt.Sprintf("tasks/%s", entityID) },
		repo:        repo,
		store:       store,
		invalidator: invalidator,
	}
}
