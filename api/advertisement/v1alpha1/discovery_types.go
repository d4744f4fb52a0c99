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

	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
)

// PeeringCandidateSpec holds the remote Flavour offer found for a Solver.
type PeeringCandidateSpec struct {
	// +optional
	SolverID string `json:"solverID,omitempty"`

	// +optional
	Available bool `json:"available,omitempty"`

	// Flavour is the remote capacity offer, spelled the way the seller
	// advertised it.
	Flavour nodecorev1alpha1.Flavour `json:"flavour"`
}

// PeeringCandidate is a remote offer discovered for a Solver, not yet reserved.
type PeeringCandidate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec PeeringCandidateSpec `json:"spec,omitempty"`
}

// PeeringCandidateList is the list of candidates embedded in a Discovery status.
type PeeringCandidateList struct {
	// +optional
	Items []PeeringCandidate `json:"items,omitempty"`
}

// DiscoverySpec defines the desired state of Discovery.
type DiscoverySpec struct {
	// SolverID names the Solver this discovery serves.
	SolverID string `json:"solverID"`

	// Subscribe keeps the discovery open for late offers.
	// +optional
	Subscribe bool `json:"subscribe,omitempty"`
}

// DiscoveryStatus defines the observed state of Discovery.
type DiscoveryStatus struct {
	// +optional
	Phase nodecorev1alpha1.PhaseStatus `json:"phase,omitempty"`

	// PeeringCandidateList collects the offers found so far.
	// +optional
	PeeringCandidateList PeeringCandidateList `json:"peeringCandidateList,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Solver",type="string",JSONPath=".spec.solverID"
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase.phase"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Discovery is the Schema for the discoveries API. Its name is derived from
// the Solver it serves as "discovery-<solverName>".
type Discovery struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DiscoverySpec   `json:"spec,omitempty"`
	Status DiscoveryStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DiscoveryList contains a list of Discovery
type DiscoveryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Discovery `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Discovery{}, &DiscoveryList{})
}
