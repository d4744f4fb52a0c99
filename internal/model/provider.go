/*
MIT License

Copyright (c) 2025 fluidos-contrib

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.
*/

package model

import "context"

// ResourceProvider is a handle to a matched resource, local or remote. A
// provider is a result value tied to the finder call that produced it, not a
// long-lived cache entry.
type ResourceProvider interface {
	// ID identifies the matched resource within its origin (flavor name for
	// local matches, solver name for remote ones).
	ID() string

	// GetLabel returns the node label to steer workloads onto the provider,
	// empty when no labeling is needed.
	GetLabel() string

	// Acquire reserves the provider for use. It reports success; failures
	// are logged by the implementation rather than returned.
	Acquire(ctx context.Context) bool

	// Flavor returns the capacity offer backing this provider.
	Flavor() Flavor
}

// ResourceFinder locates providers able to satisfy a request.
type ResourceFinder interface {
	FindBestMatch(ctx context.Context, request Request, namespace string) ([]ResourceProvider, error)
	ListAllFlavors(ctx context.Context, namespace string) ([]Flavor, error)
}

// FindBestValidation ranks providers against the given intents and returns
// the preferred one, or nil when there are no providers. Ranking beyond
// discovery order is not implemented yet.
func FindBestValidation(providers []ResourceProvider, intents []Intent) ResourceProvider {
	if len(providers) == 0 {
		return nil
	}
	return providers[0]
}
