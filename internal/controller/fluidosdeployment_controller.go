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

package controller

import (
	"context"

	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	fluidosv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/fluidos/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/config"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
	"github.com/fluidos-contrib/rear-orchestrator/internal/resources/rear"
)

// FLUIDOSDeploymentReconciler dispatches placement requests: it converts a
// FLUIDOSDeployment into a predict request, runs the prediction engine and
// asks the resource finder to locate and reserve matching capacity.
type FLUIDOSDeploymentReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Config *config.Config
	Engine model.Engine
}

// +kubebuilder:rbac:groups=fluidos.eu,resources=fluidosdeployments,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=fluidos.eu,resources=fluidosdeployments/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=nodecore.fluidos.eu,resources=flavours,verbs=get;list;watch
// +kubebuilder:rbac:groups=nodecore.fluidos.eu,resources=solvers,verbs=get;list;watch;create
// +kubebuilder:rbac:groups=advertisement.fluidos.eu,resources=discoveries,verbs=get;list;watch
// +kubebuilder:rbac:groups=reservation.fluidos.eu,resources=reservations,verbs=get;list;watch;create;update;patch

// Reconcile drives one placement attempt for a FLUIDOSDeployment.
func (r *FLUIDOSDeploymentReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := logf.FromContext(ctx)

	deployment := &fluidosv1alpha1.FLUIDOSDeployment{}
	if err := r.Get(ctx, req.NamespacedName, deployment); err != nil {
		if errors.IsNotFound(err) {
			logger.Info("FLUIDOSDeployment not found, assuming deleted")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get FLUIDOSDeployment")
		return ctrl.Result{}, err
	}

	if deployment.Status.Phase == fluidosv1alpha1.DeploymentPhaseSolved {
		return ctrl.Result{}, nil
	}

	// Annotation intents come last: the engine resolves duplicates last-wins,
	// and explicit intents take precedence over request-derived ones.
	var intents []model.Intent
	for i := range deployment.Spec.Template.Spec.Containers {
		intents = append(intents,
			model.ExtractResourceIntents(deployment.Spec.Template.Spec.Containers[i].Resources.Requests)...)
	}
	intents = append(intents, model.ExtractIntents(deployment.Annotations)...)

	predictRequest := &model.ModelPredictRequest{
		ID:          deployment.Name,
		Namespace:   deployment.Namespace,
		PodTemplate: &deployment.Spec.Template,
		Intents:     intents,
	}
	for i := range deployment.Spec.Template.Spec.Containers {
		predictRequest.ContainerImageEmbeddings = append(predictRequest.ContainerImageEmbeddings,
			model.ContainerImageEmbedding{Image: deployment.Spec.Template.Spec.Containers[i].Image})
	}

	architecture := deployment.Spec.Architecture
	if architecture == "" {
		architecture = model.DefaultArchitecture
	}

	prediction, err := r.Engine.Predict(ctx, predictRequest, architecture)
	if err != nil {
		logger.Error(err, "Prediction failed")
		return r.updateStatus(ctx, deployment, fluidosv1alpha1.DeploymentPhaseFailed, err.Error(), "")
	}

	finder := rear.NewFinder(r.Client, r.Scheme, r.Config).WithOwner(deployment)
	providers, err := finder.FindBestMatch(ctx, prediction.ToResource(), deployment.Namespace)
	if err != nil {
		logger.Error(err, "Resource matching failed")
		return r.updateStatus(ctx, deployment, fluidosv1alpha1.DeploymentPhaseFailed, err.Error(), "")
	}

	best := model.FindBestValidation(providers, intents)
	if best == nil {
		logger.Info("No matching providers found")
		return r.updateStatus(ctx, deployment, fluidosv1alpha1.DeploymentPhaseNoMatch, "no matching providers", "")
	}

	if !best.Acquire(ctx) {
		logger.Info("Unable to acquire provider", "provider", best.ID())
		return r.updateStatus(ctx, deployment, fluidosv1alpha1.DeploymentPhaseFailed, "provider acquisition failed", "")
	}

	logger.Info("Workload placed", "provider", best.ID(), "flavour", best.Flavor().ID)
	return r.updateStatus(ctx, deployment, fluidosv1alpha1.DeploymentPhaseSolved, "", best.ID())
}

func (r *FLUIDOSDeploymentReconciler) updateStatus(ctx context.Context, deployment *fluidosv1alpha1.FLUIDOSDeployment, phase, message, provider string) (ctrl.Result, error) {
	logger := logf.FromContext(ctx)

	deployment.Status.Phase = phase
	deployment.Status.Message = message
	deployment.Status.Provider = provider
	deployment.Status.LastUpdateTime = metav1.Now()

	if err := r.Status().Update(ctx, deployment); err != nil {
		logger.Error(err, "Failed to update FLUIDOSDeployment status")
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *FLUIDOSDeploymentReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&fluidosv1alpha1.FLUIDOSDeployment{}).
		Named("fluidosdeployment").
		Complete(r)
}
