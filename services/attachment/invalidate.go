package attachment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
)

// ViewInvalidator signals that an owning entity's detail view is stale after
// one of its attachments changed. Delivery is fire and forget: callers log a
// failed signal and move on.
type ViewInvalidator interface {
	InvalidateView(ctx context.Context, orgID, view string) error
}

// FirestoreInvalidator writes stale markers under the organization document.
// Dashboard sessions watch the StaleViews collection and refetch the named
// view when a marker appears.
type FirestoreInvalidator struct {
	client *firestore.Client
}

func NewFirestoreInvalidator(client *firestore.Client) *FirestoreInvalidator {
	return &FirestoreInvalidator{client: client}
}

func (f *FirestoreInvalidator) InvalidateView(ctx context.Context, orgID, view string) error {
	if f == nil || f.client == nil {
		return nil
	}
	collectionPath := fmt.Sprintf("Organizations/%s/StaleViews", orgID)
	docRef := f.client.Collection(collectionPath).Doc(strings.ReplaceAll(view, "/", "::"))
	_, err := docRef.Set(ctx, map[string]interface{}{
		"View":    view,
		"StaleAt": time.Now(),
	})
	return err
}
