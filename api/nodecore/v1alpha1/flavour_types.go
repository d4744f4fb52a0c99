/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// FlavourType categorizes the kind of capacity a Flavour advertises.
// Only the K8Slice type participates in matching today.
type FlavourType string

const (
	// FlavourTypeK8Slice is a slice of Kubernetes compute capacity.
	FlavourTypeK8Slice FlavourType = "k8s-fluidos"
)

// NodeIdentity identifies a FLUIDOS node taking part in a transaction.
type NodeIdentity struct {
	Domain string `json:"domain"`

	// +optional
	IP string `json:"ip,omitempty"`

	NodeID string `json:"nodeID"`
}

// Characteristics describes the capacity dimensions advertised by a Flavour.
// CPU and memory are Kubernetes-style quantity strings (e.g. "2", "500m", "16Gi").
type Characteristics struct {
	// +optional
	CPU string `json:"cpu,omitempty"`

	// +optional
	Architecture string `json:"architecture,omitempty"`

	// +optional
	Memory string `json:"memory,omitempty"`

	// +optional
	GPU string `json:"gpu,omitempty"`

	// Pods is the maximum number of pods schedulable on this slice.
	// +optional
	Pods string `json:"pods,omitempty"`

	// +optional
	EphemeralStorage string `json:"ephemeral-storage,omitempty"`

	// +optional
	PersistentStorage string `json:"persistent-storage,omitempty"`
}

// Price describes the cost of a Flavour for the given period.
type Price struct {
	// +optional
	Amount string `json:"amount,omitempty"`

	// +optional
	Currency string `json:"currency,omitempty"`

	// +optional
	Period string `json:"period,omitempty"`
}

// Partitionable expresses how a Flavour can be subdivided.
type Partitionable struct {
	// +optional
	CPUMin string `json:"cpuMin,omitempty"`

	// +optional
	MemoryMin string `json:"memoryMin,omitempty"`

	// +optional
	CPUStep string `json:"cpuStep,omitempty"`

	// +optional
	MemoryStep string `json:"memoryStep,omitempty"`
}

// Aggregatable expresses how many instances of a Flavour can be combined.
type Aggregatable struct {
	// +optional
	MinCount int `json:"minCount,omitempty"`

	// +optional
	MaxCount int `json:"maxCount,omitempty"`
}

// Policy collects the partitioning and aggregation rules of a Flavour.
type Policy struct {
	// +optional
	Partitionable *Partitionable `json:"partitionable,omitempty"`

	// +optional
	Aggregatable *Aggregatable `json:"aggregatable,omitempty"`
}

// FlavourSpec defines the capacity offer advertised by a provider.
type FlavourSpec struct {
	Type FlavourType `json:"type"`

	ProviderID string `json:"providerID"`

	Characteristics Characteristics `json:"characteristics"`

	Owner NodeIdentity `json:"owner"`

	// OptionalFields carries provider-specific extensions that are not part
	// of the matching contract.
	// +optional
	OptionalFields map[string]string `json:"optionalFields,omitempty"`

	// +optional
	Policy Policy `json:"policy,omitempty"`

	// +optional
	Price Price `json:"price,omitempty"`
}

// FlavourStatus defines the observed state of Flavour.
type FlavourStatus struct {
	// CreationTime records when the offer was first advertised.
	// +optional
	CreationTime string `json:"creationTime,omitempty"`

	// +optional
	ExpirationTime string `json:"expirationTime,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Type",type="string",JSONPath=".spec.type"
// +kubebuilder:printcolumn:name="Provider",type="string",JSONPath=".spec.providerID"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Flavour is the Schema for the flavours API
type Flavour struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   FlavourSpec   `json:"spec,omitempty"`
	Status FlavourStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// FlavourList contains a list of Flavour
type FlavourList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Flavour `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Flavour{}, &FlavourList{})
}
