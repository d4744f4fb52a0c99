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

// SolverPhase is the lifecycle phase of a Solver as driven by the node
// controllers. "Timed Out" carries a space on the wire.
type SolverPhase string

const (
	SolverPhasePending  SolverPhase = "Pending"
	SolverPhaseRunning  SolverPhase = "Running"
	SolverPhaseSolved   SolverPhase = "Solved"
	SolverPhaseFailed   SolverPhase = "Failed"
	SolverPhaseTimedOut SolverPhase = "Timed Out"
)

// RangeSelector expresses the minimum capacity a candidate Flavour must offer.
type RangeSelector struct {
	// +optional
	MinCPU string `json:"minCpu,omitempty"`

	// +optional
	MinMemory string `json:"minMemory,omitempty"`

	// +optional
	MinGPU string `json:"minGpu,omitempty"`
}

// FlavourSelector restricts which Flavours a Solver may match.
type FlavourSelector struct {
	Type FlavourType `json:"type"`

	// +optional
	Architecture string `json:"architecture,omitempty"`

	// +optional
	RangeSelector *RangeSelector `json:"rangeSelector,omitempty"`
}

// SolverSpec defines a request to find, and optionally reserve, capacity
// matching the selector.
type SolverSpec struct {
	// IntentID ties the Solver back to the intent that originated it.
	IntentID string `json:"intentID"`

	// FindCandidate asks the discovery manager to look for matching offers.
	// +optional
	FindCandidate bool `json:"findCandidate,omitempty"`

	// ReserveAndBuy asks the contract manager to reserve and purchase the
	// best candidate once found.
	// +optional
	ReserveAndBuy bool `json:"reserveAndBuy,omitempty"`

	// EnstablishPeering asks the network manager to peer with the seller
	// after purchase. Field name is normative, typo included.
	// +optional
	EnstablishPeering bool `json:"enstablishPeering,omitempty"`

	// +optional
	Selector *FlavourSelector `json:"selector,omitempty"`
}

// PhaseStatus reports a phase together with bookkeeping timestamps.
type PhaseStatus struct {
	// +optional
	Phase SolverPhase `json:"phase,omitempty"`

	// +optional
	Message string `json:"message,omitempty"`

	// +optional
	StartTime string `json:"startTime,omitempty"`

	// +optional
	LastChangeTime string `json:"lastChangeTime,omitempty"`
}

// SolverStatus defines the observed state of Solver.
type SolverStatus struct {
	// SolverPhase summarizes the overall progress of the request.
	// +optional
	SolverPhase PhaseStatus `json:"solverPhase,omitempty"`

	// FindCandidate reports the progress of the discovery sub-task.
	// +optional
	FindCandidate SolverPhase `json:"findCandidate,omitempty"`

	// ReserveAndBuy reports the progress of the reservation sub-task.
	// +optional
	ReserveAndBuy SolverPhase `json:"reserveAndBuy,omitempty"`

	// +optional
	DiscoveryPhase SolverPhase `json:"discoveryPhase,omitempty"`

	// +optional
	ReservationPhase SolverPhase `json:"reservationPhase,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Intent",type="string",JSONPath=".spec.intentID"
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.solverPhase.phase"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Solver is the Schema for the solvers API
type Solver struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SolverSpec   `json:"spec,omitempty"`
	Status SolverStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SolverList contains a list of Solver
type SolverList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Solver `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Solver{}, &SolverList{})
}
