// Package avatars stores profile pictures. The credential store only keeps
// the returned ref in Profile.Avatar; bytes go either to a local directory
// or to an S3-compatible bucket.
package avatars

import "context"

// Store writes avatar bytes and resolves refs to fetchable URLs.
type Store interface {
	Put(ctx context.Context, data []byte) (string, error)
	URL(ctx context.Context, ref string) (string, error)
}
