// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "log/slog"

// defaultModifiedCache is the number of nodes a transaction remembers as
// already writable.
const defaultModifiedCache = 8192

type config struct {
	logger        *slog.Logger
	writableCache int
}

// Option configures a tree. Options are inherited by every transaction
// opened on the tree and every tree committed from it.
type Option func(*config)

// WithLogger sets the logger used to report invariant violations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithWritableCache sets how many nodes allocated inside a transaction are
// tracked for in-place reuse. Values below 1 select the default.
func WithWritableCache(size int) Option {
	return func(c *config) {
		c.writableCache = size
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger:        slog.Default(),
		writableCache: defaultModifiedCache,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.writableCache < 1 {
		c.writableCache = defaultModifiedCache
	}
	return c
}
