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

import (
	"fmt"
	"strconv"
)

// Request is a capacity need presented to a ResourceFinder. It is either a
// Resource (raw capacity dimensions) or an Intent (a named, higher-order
// requirement).
type Request interface {
	RequestID() string
}

// Resource is a partially specified capacity request. An empty field means
// the dimension is unconstrained on issuance; unconstrained CPU and memory
// can never match a flavor that does not advertise them (see CanRunOn).
// A Resource is treated as immutable once constructed.
type Resource struct {
	ID                string
	CPU               string
	Memory            string
	Architecture      string
	GPU               string
	EphemeralStorage  string
	PersistentStorage string
	Region            string
}

// RequestID implements Request.
func (r Resource) RequestID() string { return r.ID }

// Flavor is a capacity offer built from an advertised catalog entry. It is
// immutable once built; see the rear package for the catalog-side builder.
type Flavor struct {
	ID              string
	Type            FlavorType
	ProviderID      string
	Characteristics FlavorCharacteristics
	Owner           Owner
	OptionalFields  map[string]string
	Policy          PolicyDescriptor
	Price           PriceDescriptor
}

// Owner identifies the node advertising a Flavor.
type Owner struct {
	Domain string
	IP     string
	NodeID string
}

// PolicyDescriptor summarizes how an offer may be consumed.
type PolicyDescriptor struct {
	Partitionable bool
	Aggregatable  bool
}

// PriceDescriptor is the advertised cost of an offer.
type PriceDescriptor struct {
	Amount   string
	Currency string
	Period   string
}

// FlavorCharacteristics are the capacity dimensions of a Flavor.
type FlavorCharacteristics struct {
	CPU               string
	Architecture      string
	Memory            string
	GPU               string
	Pods              string
	EphemeralStorage  string
	PersistentStorage string
}

// FlavorType enumerates the known flavor kinds. Only K8Slice flavors are
// matchable today.
type FlavorType string

const (
	FlavorK8Slice FlavorType = "k8s-fluidos"
)

// CanRunOn reports whether the flavor satisfies the request.
//
// CPU and memory require mutual presence: a flavor that does not advertise a
// dimension counts as unknown capacity, never as infinite, so either side
// missing fails the match. Architecture and GPU are checked only when the
// request constrains them. Storage dimensions are not compared yet.
func (r Resource) CanRunOn(flavor Flavor) (bool, error) {
	ok, err := cpuCompatible(r.CPU, flavor.Characteristics.CPU)
	if err != nil || !ok {
		return false, err
	}

	ok, err = memoryCompatible(r.Memory, flavor.Characteristics.Memory)
	if err != nil || !ok {
		return false, err
	}

	if r.Architecture != "" && r.Architecture != flavor.Characteristics.Architecture {
		return false, nil
	}

	if r.GPU != "" {
		requested, err := strconv.Atoi(r.GPU)
		if err != nil {
			return false, fmt.Errorf("%w: gpu count %q", ErrInvalidQuantity, r.GPU)
		}
		offered, err := strconv.Atoi(flavor.Characteristics.GPU)
		if err != nil {
			return false, fmt.Errorf("%w: gpu count %q", ErrInvalidQuantity, flavor.Characteristics.GPU)
		}
		if requested > offered {
			return false, nil
		}
	}

	// TODO: compare ephemeral and persistent storage once flavors advertise
	// them consistently; both dimensions pass unconditionally until then.

	return true, nil
}

func cpuCompatible(requested, offered string) (bool, error) {
	if requested == "" || offered == "" {
		return false, nil
	}

	want, err := NormalizeCPU(requested)
	if err != nil {
		return false, err
	}
	have, err := NormalizeCPU(offered)
	if err != nil {
		return false, err
	}

	return have >= want, nil
}

func memoryCompatible(requested, offered string) (bool, error) {
	if requested == "" || offered == "" {
		return false, nil
	}

	want, err := NormalizeMemory(requested)
	if err != nil {
		return false, err
	}
	have, err := NormalizeMemory(offered)
	if err != nil {
		return false, err
	}

	return have >= want, nil
}
