package embedding

import "fmt"

// KeyAudio is the map key under which collaborators transport the
// audio embedding sequence.
const KeyAudio = "humo_audio_emb"

// Container carries one audio embedding sequence together with an
// opaque bag of auxiliary values owned by other components. The bag is
// passed through untouched by everything in this module.
//
// Containers are treated as immutable once built: mutating accessors
// return a new Container and never modify the receiver, so callers
// holding a reference keep seeing their original values.
type Container struct {
	audio *Sequence
	bag   map[string]any
}

// NewContainer returns a Container holding the given sequence and an
// empty bag. seq may be nil (no audio embedding present).
func NewContainer(seq *Sequence) *Container {
	return &Container{audio: seq, bag: map[string]any{}}
}

// FromMap builds a Container from a collaborator's string-keyed map.
// A value under KeyAudio must be a *Sequence; every other key lands in
// the passthrough bag by reference. The map itself is copied at the
// top level, so later mutations of m do not affect the Container.
func FromMap(m map[string]any) (*Container, error) {
	c := &Container{bag: make(map[string]any, len(m))}

	for k, v := range m {
		if k != KeyAudio {
			c.bag[k] = v
			continue
		}

		seq, ok := v.(*Sequence)
		if !ok {
			return nil, fmt.Errorf("embedding: value under %q is %T, want *Sequence", KeyAudio, v)
		}

		c.audio = seq
	}

	return c, nil
}

// ToMap renders the Container back into a fresh string-keyed map for
// collaborators. Bag values are shared by reference; the audio
// sequence appears under KeyAudio when present.
func (c *Container) ToMap() map[string]any {
	m := make(map[string]any, len(c.bag)+1)
	for k, v := range c.bag {
		m[k] = v
	}

	if c.audio != nil {
		m[KeyAudio] = c.audio
	}

	return m
}

// Audio returns the carried sequence, or nil if absent.
func (c *Container) Audio() *Sequence { return c.audio }

// WithAudio returns a copy of the Container with the audio slot
// replaced by seq. The bag is copied at the top level (values shared
// by reference); the receiver is left unmodified.
func (c *Container) WithAudio(seq *Sequence) *Container {
	bag := make(map[string]any, len(c.bag))
	for k, v := range c.bag {
		bag[k] = v
	}

	return &Container{audio: seq, bag: bag}
}

// Bag returns the auxiliary value stored under key, if any.
func (c *Container) Bag(key string) (any, bool) {
	v, ok := c.bag[key]
	return v, ok
}

// SetBag returns a copy of the Container with key bound to v in the
// bag. The receiver is left unmodified.
func (c *Container) SetBag(key string, v any) *Container {
	bag := make(map[string]any, len(c.bag)+1)
	for k, val := range c.bag {
		bag[k] = val
	}

	bag[key] = v

	return &Container{audio: c.audio, bag: bag}
}

// BagLen returns the number of auxiliary keys.
func (c *Container) BagLen() int { return len(c.bag) }
