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

// Package config holds the orchestrator configuration: cluster identity,
// well-known label keys and the negotiation timing knobs. A Config is built
// once at startup and treated as immutable afterwards.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/yaml"

	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
)

// IdentityConfigMapName is the ConfigMap the network manager publishes the
// node identity in.
const IdentityConfigMapName = "fluidos-network-manager-identity"

// Config is the immutable-after-construction orchestrator configuration.
type Config struct {
	// LocalNodeKey labels nodes contributing local capacity.
	LocalNodeKey string `json:"localNodeKey,omitempty"`

	// RemoteNodeKey labels virtual nodes backed by a peered cluster.
	RemoteNodeKey string `json:"remoteNodeKey,omitempty"`

	// Namespace is the namespace negotiation objects are created in.
	Namespace string `json:"namespace,omitempty"`

	// SolverPollInterval is the fixed cadence of the solver poll loop.
	SolverPollInterval metav1.Duration `json:"solverPollInterval,omitempty"`

	// SolverPollBudget bounds the number of poll ticks; the total wall-clock
	// wait is SolverPollBudget * SolverPollInterval.
	SolverPollBudget int `json:"solverPollBudget,omitempty"`

	// Identity is this node's identity, as published by the network manager.
	Identity nodecorev1alpha1.NodeIdentity `json:"identity,omitempty"`
}

// Default returns the configuration used when no overrides are given.
func Default() *Config {
	return &Config{
		LocalNodeKey:       "fluidos.eu/resource-node",
		RemoteNodeKey:      "liqo.io/remote-cluster-id",
		Namespace:          "fluidos",
		SolverPollInterval: metav1.Duration{Duration: 200 * time.Millisecond},
		SolverPollBudget:   25,
	}
}

// Load reads a YAML override file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.SolverPollBudget <= 0 {
		return nil, fmt.Errorf("solverPollBudget must be positive, got %d", cfg.SolverPollBudget)
	}
	if cfg.SolverPollInterval.Duration <= 0 {
		return nil, fmt.Errorf("solverPollInterval must be positive, got %s", cfg.SolverPollInterval.Duration)
	}

	return cfg, nil
}

// SolverDeadline is the maximum wall-clock time a negotiation may spend
// waiting for a solver to reach a terminal phase.
func (c *Config) SolverDeadline() time.Duration {
	return time.Duration(c.SolverPollBudget) * c.SolverPollInterval.Duration
}

// DiscoverIdentity fills in the node identity from the network manager's
// ConfigMap, searched across all namespaces. Running without an identity is
// not viable, so absence is an error.
func (c *Config) DiscoverIdentity(ctx context.Context, reader client.Reader) error {
	logger := logf.FromContext(ctx)

	configMaps := &corev1.ConfigMapList{}
	if err := reader.List(ctx, configMaps); err != nil {
		return fmt.Errorf("listing config maps: %w", err)
	}

	for i := range configMaps.Items {
		item := &configMaps.Items[i]
		if item.Name != IdentityConfigMapName {
			continue
		}

		logger.Info("Node identity ConfigMap found", "namespace", item.Namespace)
		c.Identity = nodecorev1alpha1.NodeIdentity{
			Domain: item.Data["domain"],
			IP:     item.Data["ip"],
			NodeID: item.Data["nodeID"],
		}
		if c.Identity.NodeID == "" {
			return fmt.Errorf("config map %s/%s carries no nodeID", item.Namespace, item.Name)
		}
		return nil
	}

	return fmt.Errorf("unable to retrieve node identity: config map %q not found", IdentityConfigMapName)
}
