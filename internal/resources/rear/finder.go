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

package rear

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/fluidos-contrib/rear-orchestrator/internal/config"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

// Finder is the REAR implementation of model.ResourceFinder: it composes the
// local catalog with a negotiation session and returns the union of their
// matches, local ones first, in discovery order.
type Finder struct {
	cl     client.Client
	scheme *runtime.Scheme
	cfg    *config.Config
	owner  client.Object

	catalog *LocalCatalog
}

// NewFinder builds a finder on top of the given client and configuration.
func NewFinder(cl client.Client, scheme *runtime.Scheme, cfg *config.Config) *Finder {
	return &Finder{
		cl:      cl,
		scheme:  scheme,
		cfg:     cfg,
		catalog: NewLocalCatalog(cl),
	}
}

// WithOwner returns a finder whose negotiation objects are ownership-linked
// to the given caller object.
func (f *Finder) WithOwner(owner client.Object) *Finder {
	clone := *f
	clone.owner = owner
	return &clone
}

// FindBestMatch returns every provider able to satisfy the request.
//
// Intent requests are not supported yet and return no matches; this is a
// documented limitation of the negotiation path, not an error. Infrastructure
// failures likewise degrade to an empty result. Only contract violations, a
// malformed quantity string or an unknown request type, surface as errors.
func (f *Finder) FindBestMatch(ctx context.Context, request model.Request, namespace string) ([]model.ResourceProvider, error) {
	logger := logf.FromContext(ctx)
	logger.Info("Retrieving best match with REAR")

	var resource model.Resource
	switch req := request.(type) {
	case model.Resource:
		resource = req
	case model.Intent:
		logger.Info("Request is for an intent resource, not supported yet")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown request type %T", request)
	}

	if err := validateResource(resource); err != nil {
		return nil, err
	}

	local, err := f.catalog.ListCompatible(ctx, resource, namespace)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		logger.Info("Found local matches", "count", len(local))
	}

	session := NewNegotiationSession(f.cl, f.scheme, f.cfg, f.owner)
	remote := session.FindRemote(ctx, resource, namespace)
	logger.Info("Remote search finished", "count", len(remote))

	return append(local, remote...), nil
}

// ListAllFlavors concatenates local and remote catalog listings for
// inventory use. The remote side is empty until the protocol grows a remote
// catalog exchange.
func (f *Finder) ListAllFlavors(ctx context.Context, namespace string) ([]model.Flavor, error) {
	logger := logf.FromContext(ctx)
	logger.Info("Retrieving all flavours")

	local, err := f.catalog.ListFlavors(ctx, namespace)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("Retrieved local flavours", "count", len(local))

	remote := f.remoteFlavors(ctx, namespace)
	logger.V(1).Info("Retrieved remote flavours", "count", len(remote))

	return append(local, remote...), nil
}

// remoteFlavors is a placeholder until REAR v2 adds a remote catalog
// listing.
func (f *Finder) remoteFlavors(_ context.Context, _ string) []model.Flavor {
	return nil
}

// validateResource rejects malformed quantity strings before anything
// crosses the boundary to the control plane.
func validateResource(resource model.Resource) error {
	if resource.CPU != "" {
		if _, err := model.NormalizeCPU(resource.CPU); err != nil {
			return err
		}
	}
	if resource.Memory != "" {
		if _, err := model.NormalizeMemory(resource.Memory); err != nil {
			return err
		}
	}
	return nil
}
