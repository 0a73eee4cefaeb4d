// Package storage persists image blobs and hands back public URLs
package storage

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/KirkDiggler/creature-forge/internal/storage Store

import (
	"context"
)

// Buckets
const (
	BucketDrawings = "drawings"
	BucketArtwork  = "artwork"
)

// Store defines the interface for object storage
type Store interface {
	// Put writes the blob and returns a publicly dereferenceable URL
	// Returns errors.InvalidArgument for an unknown bucket or unsafe name
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing a blob
type PutInput struct {
	Bucket      string
	Name        string
	ContentType string
	Data        []byte
}

// PutOutput defines the output for storing a blob
type PutOutput struct {
	URL string
	// Key is bucket/name as stored
	Key string
}

// DeleteInput defines the input for deleting a blob. Either URL or Key.
type DeleteInput struct {
	URL string
	Key string
}

// DeleteOutput defines the output for deleting a blob
type DeleteOutput struct{}
