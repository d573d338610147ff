package storage

import (
	"context"
	"errors"
	"time"

	gcs "cloud.google.com/go/storage"
)

// ErrStorageUnavailable reports that no object-store client/bucket was
// configured at startup. Storage-dependent operations fail fast with it
// instead of attempting a network call.
var ErrStorageUnavailable = errors.New("object store is not configured")

// ObjectStore is the capability surface the attachment handlers consume.
// Implementations must be safe for concurrent use.
type ObjectStore interface {
	// Configured reports whether the store can serve calls at all.
	Configured() bool
	// Delete removes the object under key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
	// SignedReadURL returns a time-limited, credential-free read URL for key.
	SignedReadURL(key string, ttl time.Duration) (string, error)
}

// GCSStore serves ObjectStore against a single bucket. Construct it once at
// startup and share it; it is read-only after that. An unconfigured store
// (nil client or empty bucket) fails every call with ErrStorageUnavailable.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) Configured() bool {
	return s != nil && s.client != nil && s.bucket != ""
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	if !s.Configured() {
		return ErrStorageUnavailable
	}
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (s *GCSStore) SignedReadURL(key string, ttl time.Duration) (string, error) {
	if !s.Configured() {
		return "", ErrStorageUnavailable
	}
	return s.client.Bucket(s.bucket).SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
}
