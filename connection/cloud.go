package connection

import (
	"context"
	"log"
	"os"

	"comphq/storage"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	return opts
}

// StorageConnection builds the object-store gateway. A missing bucket is not
// fatal: the service starts and every storage-dependent operation fails with
// its unavailable error instead.
func StorageConnection(ctx context.Context) (*storage.GCSStore, error) {
	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		log.Println("GCS_BUCKET not set, file service disabled")
		return storage.NewGCSStore(nil, ""), nil
	}

	client, err := gcs.NewClient(ctx, clientOptions()...)
	if err != nil {
		return nil, err
	}
	return storage.NewGCSStore(client, bucket), nil
}

// FirestoreConnection builds the client behind the view-invalidation signal.
// Also optional: without a project id the signal becomes a no-op.
func FirestoreConnection(ctx context.Context) (*firestore.Client, error) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		log.Println("FIRESTORE_PROJECT_ID not set, view invalidation disabled")
		return nil, nil
	}
	return firestore.NewClient(ctx, projectID, clientOptions()...)
}
