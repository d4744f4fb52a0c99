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
	"context"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	fluidosv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/fluidos/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

// nolint:unused
// log is for logging in this package.
var fluidosdeploymentlog = logf.Log.WithName("fluidosdeployment-resource")

// SetupFLUIDOSDeploymentWebhookWithManager registers the webhook for FLUIDOSDeployment in the manager.
func SetupFLUIDOSDeploymentWebhookWithManager(mgr ctrl.Manager) error {
	return ctrl.NewWebhookManagedBy(mgr).For(&fluidosv1alpha1.FLUIDOSDeployment{}).
		WithValidator(&FLUIDOSDeploymentCustomValidator{}).
		WithDefaulter(&FLUIDOSDeploymentCustomDefaulter{}).
		Complete()
}

// +kubebuilder:webhook:path=/mutate-fluidos-eu-v1alpha1-fluidosdeployment,mutating=true,failurePolicy=fail,sideEffects=None,groups=fluidos.eu,resources=fluidosdeployments,verbs=create;update,versions=v1alpha1,name=mfluidosdeployment-v1alpha1.kb.io,admissionReviewVersions=v1

// FLUIDOSDeploymentCustomDefaulter sets default values on FLUIDOSDeployment
// resources when they are created or updated.
type FLUIDOSDeploymentCustomDefaulter struct{}

var _ webhook.CustomDefaulter = &FLUIDOSDeploymentCustomDefaulter{}

// Default implements webhook.CustomDefaulter so a webhook will be registered for the Kind FLUIDOSDeployment.
func (d *FLUIDOSDeploymentCustomDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	deployment, ok := obj.(*fluidosv1alpha1.FLUIDOSDeployment)
	if !ok {
		return fmt.Errorf("expected a FLUIDOSDeployment object but got %T", obj)
	}
	fluidosdeploymentlog.Info("Defaulting for FLUIDOSDeployment", "name", deployment.GetName(), "namespace", deployment.GetNamespace())

	if deployment.Spec.Architecture == "" {
		deployment.Spec.Architecture = model.DefaultArchitecture
	}

	return nil
}

// +kubebuilder:webhook:path=/validate-fluidos-eu-v1alpha1-fluidosdeployment,mutating=false,failurePolicy=fail,sideEffects=None,groups=fluidos.eu,resources=fluidosdeployments,verbs=create;update,versions=v1alpha1,name=vfluidosdeployment-v1alpha1.kb.io,admissionReviewVersions=v1

// FLUIDOSDeploymentCustomValidator validates FLUIDOSDeployment resources when
// they are created or updated. It rejects malformed placement input before it
// reaches the reconciler, where it would fail every attempt.
type FLUIDOSDeploymentCustomValidator struct{}

var _ webhook.CustomValidator = &FLUIDOSDeploymentCustomValidator{}

// ValidateCreate implements webhook.CustomValidator so a webhook will be registered for the type FLUIDOSDeployment.
func (v *FLUIDOSDeploymentCustomValidator) ValidateCreate(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	deployment, ok := obj.(*fluidosv1alpha1.FLUIDOSDeployment)
	if !ok {
		return nil, fmt.Errorf("expected a FLUIDOSDeployment object but got %T", obj)
	}
	fluidosdeploymentlog.Info("Validation for FLUIDOSDeployment upon creation", "name", deployment.GetName(), "namespace", deployment.GetNamespace())

	return validateDeployment(deployment)
}

// ValidateUpdate implements webhook.CustomValidator so a webhook will be registered for the type FLUIDOSDeployment.
func (v *FLUIDOSDeploymentCustomValidator) ValidateUpdate(ctx context.Context, oldObj, newObj runtime.Object) (admission.Warnings, error) {
	deployment, ok := newObj.(*fluidosv1alpha1.FLUIDOSDeployment)
	if !ok {
		return nil, fmt.Errorf("expected a FLUIDOSDeployment object for the newObj but got %T", newObj)
	}
	fluidosdeploymentlog.Info("Validation for FLUIDOSDeployment upon update", "name", deployment.GetName(), "namespace", deployment.GetNamespace())

	return validateDeployment(deployment)
}

// ValidateDelete implements webhook.CustomValidator so a webhook will be registered for the type FLUIDOSDeployment.
func (v *FLUIDOSDeploymentCustomValidator) ValidateDelete(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	return nil, nil
}

func validateDeployment(deployment *fluidosv1alpha1.FLUIDOSDeployment) (admission.Warnings, error) {
	if len(deployment.Spec.Template.Spec.Containers) == 0 {
		return nil, fmt.Errorf("spec.template must declare at least one container")
	}

	var warnings admission.Warnings
	for key, value := range deployment.Annotations {
		lower := strings.ToLower(key)
		if !strings.HasPrefix(lower, model.IntentKeyPrefix) {
			continue
		}

		intent, err := model.ParseKnownIntent(lower)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("annotation %q does not name a known intent and will be ignored", key))
			continue
		}

		switch intent {
		case model.IntentCPU:
			if _, err := model.NormalizeCPU(value); err != nil {
				return warnings, fmt.Errorf("annotation %q: %w", key, err)
			}
		case model.IntentMemory:
			if _, err := model.NormalizeMemory(value); err != nil {
				return warnings, fmt.Errorf("annotation %q: %w", key, err)
			}
		}
	}

	return warnings, nil
}
