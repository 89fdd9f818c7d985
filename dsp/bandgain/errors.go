package bandgain

import "errors"

// Contract violations surfaced by the Editor. Both indicate an error
// by the caller or an upstream collaborator, never a transient
// condition; no partial result is returned alongside either.
var (
	// ErrMissingEmbedding reports an enabled Apply call on a container
	// without an audio embedding.
	ErrMissingEmbedding = errors.New("bandgain: container has no audio embedding")

	// ErrBandCount reports a sequence whose band axis does not match
	// the configured gain vector.
	ErrBandCount = errors.New("bandgain: unexpected embedding shape")
)
