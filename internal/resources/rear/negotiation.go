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

package rear

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	advertisementv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/advertisement/v1alpha1"
	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	reservationv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/reservation/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/config"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
	"github.com/fluidos-contrib/rear-orchestrator/internal/stringutil"
)

// NegotiationSession drives one solve/discover/reserve exchange with the
// negotiation control plane. Sessions share no mutable state with each other;
// many may run concurrently for different requests.
type NegotiationSession struct {
	cl     client.Client
	scheme *runtime.Scheme
	cfg    *config.Config

	// owner, when set, parents every object the session creates so that
	// garbage collection follows the originating caller object.
	owner client.Object
}

// NewNegotiationSession builds a session. The owner may be nil, in which case
// created objects are not ownership-linked.
func NewNegotiationSession(cl client.Client, scheme *runtime.Scheme, cfg *config.Config, owner client.Object) *NegotiationSession {
	return &NegotiationSession{cl: cl, scheme: scheme, cfg: cfg, owner: owner}
}

// FindRemote runs the full protocol for the given request and returns a
// provider handle per successfully reserved peering candidate. Every
// infrastructure failure degrades to an empty result: an absent resource is a
// valid outcome the caller must handle regardless of cause.
func (s *NegotiationSession) FindRemote(ctx context.Context, resource model.Resource, namespace string) []model.ResourceProvider {
	logger := logf.FromContext(ctx)
	logger.Info("Retrieving remote flavours", "namespace", namespace)

	solverName, err := s.submit(ctx, resource, namespace)
	if err != nil {
		logger.Error(err, "Unable to submit solver request")
		return nil
	}

	if !s.awaitSolver(ctx, solverName, namespace) {
		return nil
	}

	candidates, err := s.retrievePeeringCandidates(ctx, solverName, namespace)
	if err != nil {
		logger.Error(err, "Error retrieving peering candidates from Discovery")
		return nil
	}
	if len(candidates) == 0 {
		logger.Info("No valid peering candidates found")
		return nil
	}

	return s.reserveAll(ctx, solverName, candidates, namespace)
}

// submit creates the Solver for the request, or adopts an existing one with
// the same name so that caller retries never spawn duplicate searches.
func (s *NegotiationSession) submit(ctx context.Context, resource model.Resource, namespace string) (string, error) {
	logger := logf.FromContext(ctx)

	intentID := resource.ID
	if intentID == "" {
		intentID = uuid.NewString()
	}
	solverName := stringutil.SanitizeName(fmt.Sprintf("%s-solver", intentID))

	existing := &nodecorev1alpha1.Solver{}
	err := s.cl.Get(ctx, types.NamespacedName{Name: solverName, Namespace: namespace}, existing)
	if err == nil {
		logger.V(1).Info("Solver already existing", "solver", solverName)
		return solverName, nil
	}
	if !apierrors.IsNotFound(err) {
		logger.V(1).Info("Error retrieving solver, submitting a new one", "solver", solverName, "reason", err.Error())
	}

	solver := &nodecorev1alpha1.Solver{
		ObjectMeta: metav1.ObjectMeta{
			Name:      solverName,
			Namespace: namespace,
		},
		Spec: nodecorev1alpha1.SolverSpec{
			IntentID:          intentID,
			FindCandidate:     true,
			ReserveAndBuy:     false,
			EnstablishPeering: false,
			Selector:          buildFlavourSelector(resource),
		},
	}

	if err := s.adopt(solver); err != nil {
		return "", err
	}

	if err := s.cl.Create(ctx, solver); err != nil {
		if apierrors.IsAlreadyExists(err) {
			logger.V(1).Info("Solver created concurrently, adopting it", "solver", solverName)
			return solverName, nil
		}
		return "", fmt.Errorf("creating solver %s: %w", solverName, err)
	}

	logger.Info("Solver submitted", "solver", solverName, "intentID", intentID)
	return solverName, nil
}

// awaitSolver polls the solver status on a fixed cadence until it reaches a
// terminal phase, the tick budget runs out, or the context is cancelled. Only
// the Solved phase yields true.
//
// A solver that exists but exposes no phase aborts immediately: an empty
// status is a protocol violation, not a transient condition. A failed status
// fetch, by contrast, is retried on the next tick within the remaining
// budget.
func (s *NegotiationSession) awaitSolver(ctx context.Context, solverName, namespace string) bool {
	logger := logf.FromContext(ctx)

	interval := s.cfg.SolverPollInterval.Duration
	for tick := 0; tick < s.cfg.SolverPollBudget; tick++ {
		select {
		case <-ctx.Done():
			logger.Info("Solver wait cancelled", "solver", solverName, "reason", ctx.Err())
			return false
		case <-time.After(interval):
		}

		solver := &nodecorev1alpha1.Solver{}
		if err := s.cl.Get(ctx, types.NamespacedName{Name: solverName, Namespace: namespace}, solver); err != nil {
			logger.Error(err, "Unable to retrieve solver status, retrying", "solver", solverName)
			continue
		}

		switch phase := solver.Status.SolverPhase.Phase; phase {
		case nodecorev1alpha1.SolverPhaseSolved:
			return true
		case nodecorev1alpha1.SolverPhaseFailed, nodecorev1alpha1.SolverPhaseTimedOut:
			logger.Info("Unable to find matching flavour", "solver", solverName, "phase", phase)
			return false
		case nodecorev1alpha1.SolverPhasePending, nodecorev1alpha1.SolverPhaseRunning:
			logger.V(1).Info("Solver still processing", "solver", solverName, "phase", phase)
		default:
			logger.Info("Solver carries no status, aborting", "solver", solverName)
			return false
		}
	}

	logger.Error(nil, "Solver did not finish within the allocated time", "solver", solverName,
		"budget", s.cfg.SolverDeadline())
	return false
}

// retrievePeeringCandidates reads the Discovery associated with the solver.
// An absent or unreadable Discovery is an abort; an empty candidate list is a
// legitimate "no match found".
func (s *NegotiationSession) retrievePeeringCandidates(ctx context.Context, solverName, namespace string) ([]advertisementv1alpha1.PeeringCandidate, error) {
	logger := logf.FromContext(ctx)
	logger.Info("Retrieving discovery", "solver", solverName, "namespace", namespace)

	discovery := &advertisementv1alpha1.Discovery{}
	key := types.NamespacedName{Name: discoveryName(solverName), Namespace: namespace}
	if err := s.cl.Get(ctx, key, discovery); err != nil {
		return nil, fmt.Errorf("retrieving discovery %s: %w", key.Name, err)
	}

	return discovery.Status.PeeringCandidateList.Items, nil
}

// reserveAll attempts a soft reservation for every discovered candidate, not
// just the preferred one: reservations are cheap, and concurrent local
// consumers may race for the same candidate set. Each attempt is independent
// and a failure only drops that candidate.
func (s *NegotiationSession) reserveAll(ctx context.Context, solverName string, candidates []advertisementv1alpha1.PeeringCandidate, namespace string) []model.ResourceProvider {
	logger := logf.FromContext(ctx)
	logger.Info("Reserving all peering candidates, just in case", "count", len(candidates))

	var reserved []model.ResourceProvider
	for i := range candidates {
		if provider := s.reserveCandidate(ctx, solverName, &candidates[i], namespace); provider != nil {
			reserved = append(reserved, provider)
		}
	}

	return reserved
}

func (s *NegotiationSession) reserveCandidate(ctx context.Context, solverName string, candidate *advertisementv1alpha1.PeeringCandidate, namespace string) *RemoteResourceProvider {
	logger := logf.FromContext(ctx)
	logger.Info("Reserving peering candidate", "candidate", candidate.Name)

	reservation := &reservationv1alpha1.Reservation{
		ObjectMeta: metav1.ObjectMeta{
			Name:      reservationName(candidate.Name),
			Namespace: namespace,
		},
		Spec: reservationv1alpha1.ReservationSpec{
			SolverID: solverName,
			Buyer:    s.cfg.Identity,
			Seller:   candidate.Spec.Flavour.Spec.Owner,
			Reserve:  true,
			Purchase: false,
			PeeringCandidate: reservationv1alpha1.GenericRef{
				Name: candidate.Name,
			},
		},
	}

	if err := s.adopt(reservation); err != nil {
		logger.Error(err, "Unable to link reservation to owner", "candidate", candidate.Name)
		return nil
	}

	if err := s.cl.Create(ctx, reservation); err != nil {
		if !apierrors.IsAlreadyExists(err) {
			logger.Error(err, "Unable to reserve candidate", "candidate", candidate.Name)
			return nil
		}
		logger.V(1).Info("Reservation already existing, adopting it", "candidate", candidate.Name)
	}

	return &RemoteResourceProvider{
		cl:               s.cl,
		solverID:         solverName,
		flavor:           flavorFromAPI(&candidate.Spec.Flavour),
		peeringCandidate: candidate.Name,
		reservation:      reservation.Name,
		namespace:        namespace,
		remoteNodeKey:    s.cfg.RemoteNodeKey,
	}
}

// adopt parents the object to the session owner, when one is set.
func (s *NegotiationSession) adopt(obj client.Object) error {
	if s.owner == nil {
		return nil
	}
	return controllerutil.SetOwnerReference(s.owner, obj, s.scheme)
}

// buildFlavourSelector translates the request into the range selector that
// crosses the boundary to the negotiation plane. Unconstrained dimensions
// fall back to the loosest acceptable minimum.
func buildFlavourSelector(resource model.Resource) *nodecorev1alpha1.FlavourSelector {
	rangeSelector := &nodecorev1alpha1.RangeSelector{
		MinCPU:    resource.CPU,
		MinMemory: resource.Memory,
	}
	if rangeSelector.MinCPU == "" {
		rangeSelector.MinCPU = "0n"
	}
	if rangeSelector.MinMemory == "" {
		rangeSelector.MinMemory = "1Ki"
	}
	if resource.GPU != "" {
		rangeSelector.MinGPU = resource.GPU
	}

	architecture := resource.Architecture
	if architecture == "" {
		architecture = model.DefaultArchitecture
	}

	return &nodecorev1alpha1.FlavourSelector{
		Type:          nodecorev1alpha1.FlavourTypeK8Slice,
		Architecture:  architecture,
		RangeSelector: rangeSelector,
	}
}

func discoveryName(solverName string) string {
	return stringutil.SanitizeName(fmt.Sprintf("discovery-%s", solverName))
}

func reservationName(candidateName string) string {
	return stringutil.SanitizeName(fmt.Sprintf("%s-reservation", candidateName))
}
