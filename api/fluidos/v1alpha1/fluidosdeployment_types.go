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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// FLUIDOSDeployment phases.
const (
	DeploymentPhasePending = "Pending"
	DeploymentPhaseSolved  = "Solved"
	DeploymentPhaseFailed  = "Failed"
	DeploymentPhaseNoMatch = "NoMatch"
)

// FLUIDOSDeploymentSpec embeds the workload whose placement is requested.
// Intents ride on the object's annotations using the fluidos-intent-<name>
// convention; resource intents are derived from the container requests.
type FLUIDOSDeploymentSpec struct {
	// Template is the pod template of the workload to place.
	Template corev1.PodTemplateSpec `json:"template"`

	// Architecture constrains the target architecture when set.
	// +optional
	Architecture string `json:"architecture,omitempty"`
}

// FLUIDOSDeploymentStatus defines the observed state of FLUIDOSDeployment.
type FLUIDOSDeploymentStatus struct {
	// +optional
	Phase string `json:"phase,omitempty"`

	// +optional
	Message string `json:"message,omitempty"`

	// Provider identifies the resource provider the workload was matched to.
	// +optional
	Provider string `json:"provider,omitempty"`

	// +optional
	LastUpdateTime metav1.Time `json:"lastUpdateTime,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Provider",type="string",JSONPath=".status.provider"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// FLUIDOSDeployment is the Schema for the fluidosdeployments API
type FLUIDOSDeployment struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   FLUIDOSDeploymentSpec   `json:"spec,omitempty"`
	Status FLUIDOSDeploymentStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// FLUIDOSDeploymentList contains a list of FLUIDOSDeployment
type FLUIDOSDeploymentList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []FLUIDOSDeployment `json:"items"`
}

func init() {
	SchemeBuilder.Register(&FLUIDOSDeployment{}, &FLUIDOSDeploymentList{})
}
