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
	"strings"
)

// IntentKeyPrefix prefixes every intent annotation key on the wire.
const IntentKeyPrefix = "fluidos-intent-"

// KnownIntent is one of the closed set of intent names the orchestrator
// understands. Anything outside the set is rejected at parse time.
type KnownIntent string

const (
	// k8s resource dimensions
	IntentCPU    KnownIntent = "cpu"
	IntentMemory KnownIntent = "memory"

	// higher-order requests
	IntentLatency    KnownIntent = "latency"
	IntentLocation   KnownIntent = "location"
	IntentThroughput KnownIntent = "throughput"
	IntentCompliance KnownIntent = "compliance"
	IntentEnergy     KnownIntent = "energy"
	IntentBattery    KnownIntent = "battery"

	// service requests need capacity outside the local cluster
	IntentService KnownIntent = "service"
)

var knownIntents = map[KnownIntent]bool{
	IntentCPU:        false,
	IntentMemory:     false,
	IntentLatency:    false,
	IntentLocation:   false,
	IntentThroughput: false,
	IntentCompliance: false,
	IntentEnergy:     false,
	IntentBattery:    false,
	IntentService:    true,
}

// Key returns the annotation key carrying this intent.
func (k KnownIntent) Key() string {
	return IntentKeyPrefix + string(k)
}

// HasExternalRequirement reports whether satisfying the intent requires
// looking beyond the local cluster.
func (k KnownIntent) HasExternalRequirement() bool {
	return knownIntents[k]
}

// IsSupportedIntent reports whether name, bare or prefixed, is a known intent.
func IsSupportedIntent(name string) bool {
	_, err := ParseKnownIntent(name)
	return err == nil
}

// ParseKnownIntent resolves an intent name against the closed set. The
// fluidos-intent- prefix is stripped when present; matching is exact apart
// from case folding, never partial.
func ParseKnownIntent(name string) (KnownIntent, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(name), IntentKeyPrefix)

	candidate := KnownIntent(trimmed)
	if _, ok := knownIntents[candidate]; !ok {
		return "", fmt.Errorf("unsupported intent %q", name)
	}

	return candidate, nil
}

// Intent pairs a known intent name with its requested value.
type Intent struct {
	Name  KnownIntent
	Value string
}

// RequestID implements Request.
func (i Intent) RequestID() string { return i.Name.Key() }

// HasExternalRequirement reports whether the intent requires remote capacity.
func (i Intent) HasExternalRequirement() bool {
	return i.Name.HasExternalRequirement()
}

// ExtractIntents collects the supported intents declared in an object's
// annotations, ignoring anything it does not recognize.
func ExtractIntents(annotations map[string]string) []Intent {
	var intents []Intent

	for key, value := range annotations {
		lower := strings.ToLower(key)
		if !strings.HasPrefix(lower, IntentKeyPrefix) {
			continue
		}
		name, err := ParseKnownIntent(lower)
		if err != nil {
			continue
		}
		intents = append(intents, Intent{Name: name, Value: strings.ToLower(value)})
	}

	return intents
}
