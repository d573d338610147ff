package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		key     string
		wantErr bool
	}{
		{
			name: "virtual-hosted s3",
			url:  "https://bucket.s3.us-east-1.amazonaws.com/org1/risk/a1/file.pdf",
			key:  "org1/risk/a1/file.pdf",
		},
		{
			name: "virtual-hosted gcs",
			url:  "https://bucket.storage.googleapis.com/org1/task/a2/evidence.png",
			key:  "org1/task/a2/evidence.png",
		},
		{
			name: "path-style gcs strips bucket",
			url:  "https://storage.googleapis.com/bucket/org1/policy/a3/policy.pdf",
			key:  "org1/policy/a3/policy.pdf",
		},
		{
			name: "path-style s3 strips bucket",
			url:  "https://s3.amazonaws.com/bucket/org1/comment/a4/note.txt",
			key:  "org1/comment/a4/note.txt",
		},
		{
			name:    "path-style without key",
			url:     "https://storage.googleapis.com/bucket",
			wantErr: true,
		},
		{
			name:    "no path",
			url:     "https://bucket.s3.amazonaws.com",
			wantErr: true,
		},
		{
			name:    "relative reference",
			url:     "org1/risk/a1/file.pdf",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
		{
			name:    "unparseable",
			url:     "https://bucket.s3.amazonaws.com/org1/risk/%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ExtractObjectKey(tt.url)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
		})
	}
}
