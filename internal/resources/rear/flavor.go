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

// Package rear drives the REAR negotiation protocol: it matches capacity
// requests against locally advertised Flavours and, through the Solver,
// Discovery and Reservation custom resources, against remote clusters.
package rear

import (
	"maps"

	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

// flavorFromAPI builds the immutable domain Flavor from a catalog Flavour.
// This is the only place domain flavors are constructed.
func flavorFromAPI(flavour *nodecorev1alpha1.Flavour) model.Flavor {
	spec := flavour.Spec

	return model.Flavor{
		ID:         flavour.Name,
		Type:       model.FlavorType(spec.Type),
		ProviderID: spec.ProviderID,
		Characteristics: model.FlavorCharacteristics{
			CPU:               spec.Characteristics.CPU,
			Architecture:      spec.Characteristics.Architecture,
			Memory:            spec.Characteristics.Memory,
			GPU:               spec.Characteristics.GPU,
			Pods:              spec.Characteristics.Pods,
			EphemeralStorage:  spec.Characteristics.EphemeralStorage,
			PersistentStorage: spec.Characteristics.PersistentStorage,
		},
		Owner: model.Owner{
			Domain: spec.Owner.Domain,
			IP:     spec.Owner.IP,
			NodeID: spec.Owner.NodeID,
		},
		OptionalFields: maps.Clone(spec.OptionalFields),
		Policy: model.PolicyDescriptor{
			Partitionable: spec.Policy.Partitionable != nil,
			Aggregatable:  spec.Policy.Aggregatable != nil,
		},
		Price: model.PriceDescriptor{
			Amount:   spec.Price.Amount,
			Currency: spec.Price.Currency,
			Period:   spec.Price.Period,
		},
	}
}
