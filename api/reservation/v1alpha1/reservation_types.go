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

// GenericRef names another object, optionally in a different namespace.
type GenericRef struct {
	Name string `json:"name"`

	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// ReservationSpec claims a peering candidate on behalf of a buyer.
// Reserve and Purchase are independent gates: a reservation is soft until
// purchase is flipped by the acquisition step.
type ReservationSpec struct {
	// SolverID names the Solver that originated this reservation.
	SolverID string `json:"solverID"`

	Buyer nodecorev1alpha1.NodeIdentity `json:"buyer"`

	Seller nodecorev1alpha1.NodeIdentity `json:"seller"`

	// +optional
	Reserve bool `json:"reserve,omitempty"`

	// +optional
	Purchase bool `json:"purchase,omitempty"`

	PeeringCandidate GenericRef `json:"peeringCandidate"`
}

// ReservationStatus defines the observed state of Reservation. It is written
// by the contract manager, not by this module.
type ReservationStatus struct {
	// +optional
	Phase nodecorev1alpha1.PhaseStatus `json:"phase,omitempty"`

	// +optional
	ReservePhase nodecorev1alpha1.SolverPhase `json:"reservePhase,omitempty"`

	// +optional
	PurchasePhase nodecorev1alpha1.SolverPhase `json:"purchasePhase,omitempty"`

	// TransactionID is assigned by the seller once the reserve succeeds.
	// +optional
	TransactionID string `json:"transactionID,omitempty"`

	// Contract references the contract created after purchase.
	// +optional
	Contract GenericRef `json:"contract,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Solver",type="string",JSONPath=".spec.solverID"
// +kubebuilder:printcolumn:name="Candidate",type="string",JSONPath=".spec.peeringCandidate.name"
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase.phase"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Reservation is the Schema for the reservations API
type Reservation struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ReservationSpec   `json:"spec,omitempty"`
	Status ReservationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ReservationList contains a list of Reservation
type ReservationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Reservation `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Reservation{}, &ReservationList{})
}
