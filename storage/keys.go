package storage

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMalformedReference reports that a stored attachment URL cannot be
// decoded into an object key.
var ErrMalformedReference = errors.New("attachment URL does not contain an object key")

// Hosts whose URLs are path-style: the first path segment is the bucket and
// the remainder is the key. Checked before the virtual-hosted convention.
var pathStyleHosts = map[string]bool{
	"storage.googleapis.com": true,
	"s3.amazonaws.com":       true,
}

// ExtractObjectKey derives the object-store key from the durable URL the
// upload flow recorded on an attachment. Two conventions are tried in order:
// path-style (bare endpoint host, bucket as first segment) and virtual-hosted
// (bucket in the host, the whole path is the key).
func ExtractObjectKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrMalformedReference
	}
	path := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || path == "" {
		return "", ErrMalformedReference
	}
	if pathStyleHosts[u.Host] {
		bucket, key, found := strings.Cut(path, "/")
		if !found || bucket == "" || key == "" {
			return "", ErrMalformedReference
		}
		return key, nil
	}
	return path, nil
}
