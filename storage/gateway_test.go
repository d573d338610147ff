package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCSStoreUnconfigured(t *testing.T) {
	stores := map[string]*GCSStore{
		"nil receiver": nil,
		"nil client":   NewGCSStore(nil, "bucket"),
		"no bucket":    NewGCSStore(nil, ""),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			assert.False(t, store.Configured())

			err := store.Delete(context.Background(), "org1/task/a1/file.pdf")
			require.ErrorIs(t, err, ErrStorageUnavailable)

			url, err := store.SignedReadURL("org1/task/a1/file.pdf", time.Hour)
			require.ErrorIs(t, err, ErrStorageUnavailable)
			assert.Empty(t, url)
		})
	}
}
