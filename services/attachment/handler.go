package attachment

import (
	"context"
	"log"
	"time"

	"comphq/model"
	"comphq/storage"
)

// Access grants expire after one hour. A fresh grant is generated on every
// call; nothing is cached or reused across calls.
const grantTTL = time.Hour

// Handler is one entry in the dispatcher's entity-type table.
type Handler interface {
	Delete(ctx context.Context, attachmentID, orgID string) Result
	GetAccessURL(ctx context.Context, attachmentID, orgID string) Result
}

// entityHandler carries the mechanics shared by every entity variant. Each
// variant contributes its entity type and the detail view it invalidates.
//
// Both operations re-fetch the attachment scoped by (id, organization,
// entity type). That narrower lookup is the authoritative authorization
// check: even a misrouted dispatch cannot touch a record of another type or
// another organization.
type entityHandler struct {
	entityType  model.AttachmentEntityType
	viewFor     func(entityID string) string
	repo        Repository
	store       storage.ObjectStore
	invalidator ViewInvalidator
}

func (h *entityHandler) Delete(ctx context.Context, attachmentID, orgID string) Result {
	att, err := h.repo.FindByIDAndType(ctx, attachmentID, orgID, h.entityType)
	if err != nil {
		log.Printf("attachment %s: lookup failed: %v", attachmentID, err)
		return failure(ReasonRequestFailed, msgDeleteFailed)
	}
	if att == nil {
		return failure(ReasonNotFoundOrDenied, msgNotFoundOrDenied)
	}

	// Blob removal is best effort: an orphaned object is preferable to a
	// record that can never be deleted while storage is down.
	if h.store.Configured() {
		if key, err := storage.ExtractObjectKey(att.URL); err != nil {
			log.Printf("attachment %s: %v", attachmentID, err)
		} else if err := h.store.Delete(ctx, key); err != nil {
			log.Printf("attachment %s: blob delete failed: %v", attachmentID, err)
		}
	} else {
		log.Printf("attachment %s: object store not configured, skipping blob delete", attachmentID)
	}

	deleted, err := h.repo.Delete(ctx, attachmentID, orgID)
	if err != nil {
		log.Printf("attachment %s: record delete failed: %v", attachmentID, err)
		return failure(ReasonRequestFailed, msgDeleteFailed)
	}
	if !deleted {
		return failure(ReasonNotFoundOrDenied, msgNotFoundOrDenied)
	}

	if err := h.invalidator.InvalidateView(ctx, orgID, h.viewFor(att.EntityID)); err != nil {
		log.Printf("attachment %s: view invalidation failed: %v", attachmentID, err)
	}

	return success(DeletedAttachment{DeletedAttachmentID: attachmentID})
}

func (h *entityHandler) GetAccessURL(ctx context.Context, attachmentID, orgID string) Result {
	if !h.store.Configured() {
		return failure(ReasonStorageUnavailable, msgStorageUnavailable)
	}

	att, err := h.repo.FindByIDAndType(ctx, attachmentID, orgID, h.entityType)
	if err != nil {
		log.Printf("attachment %s: lookup failed: %v", attachmentID, err)
		return failure(ReasonRequestFailed, msgRequestFailed)
	}
	if att == nil {
		return failure(ReasonNotFoundOrDenied, msgNotFoundOrDenied)
	}

	key, err := storage.ExtractObjectKey(att.URL)
	if err != nil {
		log.Printf("attachment %s: %v", attachmentID, err)
		return failure(ReasonMalformedReference, msgMalformedReference)
	}

	signedURL, err := h.store.SignedReadURL(key, grantTTL)
	if err != nil {
		log.Printf("attachment %s: signing failed: %v", attachmentID, err)
		return failure(ReasonStorageError, msgGrantFailed)
	}
	if signedURL == "" {
		return failure(ReasonStorageError, msgGrantFailed)
	}

	return success(AccessGrant{SignedURL: signedURL})
}
