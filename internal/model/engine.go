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
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// DefaultArchitecture is assumed when a request does not constrain one.
const DefaultArchitecture = "amd64"

// ContainerImageEmbedding carries a container image reference together with
// its precomputed embedding, when one is available.
type ContainerImageEmbedding struct {
	Image     string
	Embedding string
}

// ModelPredictRequest is the input to a prediction engine: the workload to
// place plus the intents declared for it.
type ModelPredictRequest struct {
	ID                       string
	Namespace                string
	PodTemplate              *corev1.PodTemplateSpec
	ContainerImageEmbeddings []ContainerImageEmbedding
	Intents                  []Intent
}

// ModelPredictResponse is the resource profile an engine predicts for a
// request.
type ModelPredictResponse struct {
	ID              string
	ResourceProfile Resource
}

// ToResource returns the predicted capacity request.
func (r *ModelPredictResponse) ToResource() Resource {
	return r.ResourceProfile
}

// Engine maps a workload description to a resource profile. The trained
// models living behind this contract are external collaborators; this module
// only consumes the contract.
type Engine interface {
	Predict(ctx context.Context, request *ModelPredictRequest, architecture string) (*ModelPredictResponse, error)
}

// RequestBasedEngine is the baseline Engine: it derives the profile from the
// container resource requests declared in the pod template, without any
// learned component.
type RequestBasedEngine struct{}

// NewRequestBasedEngine returns the baseline prediction engine.
func NewRequestBasedEngine() *RequestBasedEngine {
	return &RequestBasedEngine{}
}

// Predict sums the container requests of the template into a Resource. CPU is
// expressed in millicores and memory in kibibytes so the result always fits
// the quantity grammar the matcher accepts.
func (e *RequestBasedEngine) Predict(ctx context.Context, request *ModelPredictRequest, architecture string) (*ModelPredictResponse, error) {
	if request == nil || request.PodTemplate == nil {
		return nil, fmt.Errorf("predict request carries no pod template")
	}

	var milliCPU, memoryKi int64
	for i := range request.PodTemplate.Spec.Containers {
		requests := request.PodTemplate.Spec.Containers[i].Resources.Requests
		if cpu, ok := requests[corev1.ResourceCPU]; ok {
			milliCPU += cpu.MilliValue()
		}
		if memory, ok := requests[corev1.ResourceMemory]; ok {
			memoryKi += memory.Value() / 1024
		}
	}

	profile := Resource{
		ID:           request.ID,
		Architecture: architecture,
	}
	if milliCPU > 0 {
		profile.CPU = fmt.Sprintf("%dm", milliCPU)
	}
	if memoryKi > 0 {
		profile.Memory = fmt.Sprintf("%dKi", memoryKi)
	}

	for _, intent := range request.Intents {
		switch intent.Name {
		case IntentCPU:
			profile.CPU = intent.Value
		case IntentMemory:
			profile.Memory = intent.Value
		}
	}

	return &ModelPredictResponse{ID: request.ID, ResourceProfile: profile}, nil
}

// ExtractResourceIntents lifts cpu and memory requests out of a container's
// resource list into explicit intents.
func ExtractResourceIntents(requests corev1.ResourceList) []Intent {
	var intents []Intent

	if cpu, ok := requests[corev1.ResourceCPU]; ok {
		intents = append(intents, Intent{Name: IntentCPU, Value: cpu.String()})
	}
	if memory, ok := requests[corev1.ResourceMemory]; ok {
		intents = append(intents, Intent{Name: IntentMemory, Value: memory.String()})
	}

	return intents
}
