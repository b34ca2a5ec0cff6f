package avl

import (
	"cmp"
	"fmt"
)

// Config configures a tree.
type Config[K any] struct {
	// Less is a strict weak ordering over keys. It must not change during the
	// lifetime of a tree.
	Less func(a, b K) bool
}

// OrderedConfig returns a configuration ordering keys with cmp.Less.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Less: cmp.Less[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: ordering function is required", ErrInvalidConfig)
	}
	return nil
}

// equal derives key equality from the ordering.
func (cfg Config[K]) equal(a, b K) bool {
	return !cfg.Less(a, b) && !cfg.Less(b, a)
}
