// Package filestorage abstracts the object store holding paper files. The
// core only handles object keys and presigned URLs; file bytes never pass
// through it.
package filestorage

import "context"

type FileStorage interface {
	// PresignPut returns a short-lived URL the admin client uploads the
	// paper file to.
	PresignPut(ctx context.Context, key string) (string, error)

	// PresignGet returns a short-lived URL the file-serving collaborator
	// streams the paper from.
	PresignGet(ctx context.Context, key string) (string, error)

	// Remove deletes the stored object. Called when a paper is deleted so
	// the file does not outlive its catalog entry.
	Remove(ctx context.Context, key string) error
}
