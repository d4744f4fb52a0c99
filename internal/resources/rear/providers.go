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

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	reservationv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/reservation/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

// LocalResourceProvider wraps a Flavour already owned by the local cluster.
// Acquisition is a no-op: the capacity is already here.
type LocalResourceProvider struct {
	id     string
	flavor model.Flavor
}

// NewLocalResourceProvider returns a provider handle for a local flavor.
func NewLocalResourceProvider(id string, flavor model.Flavor) *LocalResourceProvider {
	return &LocalResourceProvider{id: id, flavor: flavor}
}

// ID implements model.ResourceProvider.
func (p *LocalResourceProvider) ID() string { return p.id }

// GetLabel implements model.ResourceProvider. Local capacity needs no
// steering label.
func (p *LocalResourceProvider) GetLabel() string { return "" }

// Acquire implements model.ResourceProvider.
func (p *LocalResourceProvider) Acquire(ctx context.Context) bool { return true }

// Flavor implements model.ResourceProvider.
func (p *LocalResourceProvider) Flavor() model.Flavor { return p.flavor }

// RemoteResourceProvider is a handle to a peering candidate reserved during a
// negotiation session. It stays valid only as long as the reservation it
// references.
type RemoteResourceProvider struct {
	cl client.Client

	solverID         string
	flavor           model.Flavor
	peeringCandidate string
	reservation      string
	namespace        string
	remoteNodeKey    string
}

// ID implements model.ResourceProvider; remote providers are identified by
// the solver that negotiated them.
func (p *RemoteResourceProvider) ID() string { return p.solverID }

// GetLabel returns the label selecting the virtual node backed by the seller.
func (p *RemoteResourceProvider) GetLabel() string {
	return fmt.Sprintf("%s=%s", p.remoteNodeKey, p.flavor.Owner.NodeID)
}

// Flavor implements model.ResourceProvider.
func (p *RemoteResourceProvider) Flavor() model.Flavor { return p.flavor }

// PeeringCandidate returns the name of the candidate this provider reserved.
func (p *RemoteResourceProvider) PeeringCandidate() string { return p.peeringCandidate }

// Reservation returns the name of the reservation backing this provider.
func (p *RemoteResourceProvider) Reservation() string { return p.reservation }

// Acquire promotes the soft reservation to a purchase. The contract manager
// observes the flipped flag and completes the transaction; failures degrade
// to false and are logged, the reservation itself stays in place.
func (p *RemoteResourceProvider) Acquire(ctx context.Context) bool {
	logger := logf.FromContext(ctx)

	reservation := &reservationv1alpha1.Reservation{}
	key := types.NamespacedName{Name: p.reservation, Namespace: p.namespace}
	if err := p.cl.Get(ctx, key, reservation); err != nil {
		logger.Error(err, "Unable to retrieve reservation", "reservation", p.reservation)
		return false
	}

	if reservation.Spec.Purchase {
		return true
	}

	reservation.Spec.Purchase = true
	if err := p.cl.Update(ctx, reservation); err != nil {
		logger.Error(err, "Unable to promote reservation to purchase", "reservation", p.reservation)
		return false
	}

	logger.Info("Reservation promoted to purchase", "reservation", p.reservation)
	return true
}
