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

	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

// LocalCatalog lists the Flavours advertised within the local cluster and
// filters them against a capacity request.
type LocalCatalog struct {
	cl client.Client
}

// NewLocalCatalog returns a catalog reading from the given client.
func NewLocalCatalog(cl client.Client) *LocalCatalog {
	return &LocalCatalog{cl: cl}
}

// ListCompatible returns a provider handle for every local K8Slice Flavour
// the request can run on. An unreachable catalog is a normal "no local
// capacity" outcome and yields an empty result; a malformed quantity in the
// request or a flavor is a contract violation and is returned as an error.
func (c *LocalCatalog) ListCompatible(ctx context.Context, resource model.Resource, namespace string) ([]model.ResourceProvider, error) {
	logger := logf.FromContext(ctx)

	flavors, err := c.ListFlavors(ctx, namespace)
	if err != nil {
		return nil, err
	}

	var fitting []model.ResourceProvider
	for _, flavor := range flavors {
		if flavor.Type != model.FlavorK8Slice {
			logger.V(1).Info("Skipping flavour of unmatchable type", "flavour", flavor.ID, "type", flavor.Type)
			continue
		}

		ok, err := resource.CanRunOn(flavor)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		logger.Info("Local flavour is compatible", "flavour", flavor.ID)
		fitting = append(fitting, NewLocalResourceProvider(flavor.ID, flavor))
	}

	return fitting, nil
}

// ListFlavors returns every Flavour visible in the namespace. Transport
// failures degrade to an empty list with a warning, never to an error.
func (c *LocalCatalog) ListFlavors(ctx context.Context, namespace string) ([]model.Flavor, error) {
	logger := logf.FromContext(ctx)

	flavours := &nodecorev1alpha1.FlavourList{}
	if err := c.cl.List(ctx, flavours, client.InNamespace(namespace)); err != nil {
		logger.Error(err, "Failed to retrieve local flavours, is the node available?")
		return nil, nil
	}

	flavors := make([]model.Flavor, 0, len(flavours.Items))
	for i := range flavours.Items {
		flavors = append(flavors, flavorFromAPI(&flavours.Items[i]))
	}

	return flavors, nil
}
