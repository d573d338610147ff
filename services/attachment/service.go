package attachment

import (
	"context"
	"fmt"
	"log"

	"comphq/model"
	"comphq/storage"

	"github.com/google/uuid"
)

// Service is the single entry point for attachment operations. It resolves
// the owning entity type of the requested attachment and routes to the
// matching handler; the handler table is fixed at construction and covers
// the closed set of entity types.
type Service struct {
	repo     Repository
	handlers map[model.AttachmentEntityType]Handler
}

func NewService(repo Repository, store storage.ObjectStore, invalidator ViewInvalidator) *Service {
	return &Service{
		repo: repo,
		handlers: map[model.AttachmentEntityType]Handler{
			model.EntityTypeTask:    NewTaskHandler(repo, store, invalidator),
			model.EntityTypePolicy:  NewPolicyHandler(repo, store, invalidator),
			model.EntityTypeRisk:    NewRiskHandler(repo, store, invalidator),
			model.EntityTypeComment: NewCommentHandler(repo, store, invalidator),
		},
	}
}

// DeleteAttachment removes the attachment record and, best effort, its blob.
func (s *Service) DeleteAttachment(ctx context.Context, attachmentID, orgID string) (res Result) {
	defer recoverToResult(&res)
	handler, failed, ok := s.resolve(ctx, attachmentID, orgID)
	if !ok {
		return failed
	}
	// The handler re-resolves ownership under its own type scope; only the
	// id and tenant travel past this point.
	return handler.Delete(ctx, attachmentID, orgID)
}

// GetAttachmentAccessURL returns a one-hour signed read URL for the blob.
func (s *Service) GetAttachmentAccessURL(ctx context.Context, attachmentID, orgID string) (res Result) {
	defer recoverToResult(&res)
	handler, failed, ok := s.resolve(ctx, attachmentID, orgID)
	if !ok {
		return failed
	}
	return handler.GetAccessURL(ctx, attachmentID, orgID)
}

// CreateAttachmentInput is what the upload flow persists after storing the
// blob. The recorded URL must decode to an object key or the record would be
// undeletable later.
type CreateAttachmentInput struct {
	OrganizationID string
	EntityType     model.AttachmentEntityType
	EntityID       string
	FileName       string
	FileType       string
	URL            string
}

// CreateAttachment persists the record for an already-stored blob.
func (s *Service) CreateAttachment(ctx context.Context, in CreateAttachmentInput) (res Result) {
	defer recoverToResult(&res)
	if in.OrganizationID == "" {
		return failure(ReasonNotAuthorized, msgNotAuthorized)
	}
	if !in.EntityType.Valid() {
		return failure(ReasonUnsupportedEntityType,
			fmt.Sprintf("Unsupported attachment entity type: %s", in.EntityType))
	}
	if _, err := storage.ExtractObjectKey(in.URL); err != nil {
		return failure(ReasonMalformedReference, msgMalformedReference)
	}

	att := &model.Attachment{
		AttachmentID:   uuid.NewString(),
		OrganizationID: in.OrganizationID,
		EntityType:     in.EntityType,
		EntityID:       in.EntityID,
		FileName:       in.FileName,
		FileType:       in.FileType,
		URL:            in.URL,
	}
	if err := s.repo.Create(ctx, att); err != nil {
		log.Printf("attachment create failed: %v", err)
		return failure(ReasonRequestFailed, msgRequestFailed)
	}
	return success(CreatedAttachment{AttachmentID: att.AttachmentID})
}

// resolve looks the attachment up under the caller's tenant and picks the
// handler for its stored entity type. A miss and a cross-tenant row produce
// the same failure.
func (s *Service) resolve(ctx context.Context, attachmentID, orgID string) (Handler, Result, bool) {
	if orgID == "" {
		return nil, failure(ReasonNotAuthorized, msgNotAuthorized), false
	}
	att, err := s.repo.FindByID(ctx, attachmentID, orgID)
	if err != nil {
		log.Printf("attachment %s: resolve failed: %v", attachmentID, err)
		return nil, failure(ReasonRequestFailed, msgRequestFailed), false
	}
	if att == nil {
		return nil, failure(ReasonNotFoundOrDenied, msgNotFoundOrDenied), false
	}
	handler, known := s.handlers[att.EntityType]
	if !known {
		return nil, failure(ReasonUnsupportedEntityType,
			fmt.Sprintf("Unsupported attachment entity type: %s", att.EntityType)), false
	}
	return handler, Result{}, true
}

// recoverToResult converts an unexpected panic into the generic failure
// envelope so nothing internal escapes the service boundary.
func recoverToResult(res *Result) {
	if r := recover(); r != nil {
		log.Printf("attachment request panicked: %v", r)
		*res = failure(ReasonRequestFailed, msgRequestFailed)
	}
}
