package rear

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	advertisementv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/advertisement/v1alpha1"
	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	reservationv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/reservation/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/config"
)

// MockClient is a client.Client wrapper that lets single methods be
// overridden for failure injection while everything else hits the fake.
type MockClient struct {
	client.Client
	getFunc    func(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error
	createFunc func(ctx context.Context, obj client.Object, opts ...client.CreateOption) error
	updateFunc func(ctx context.Context, obj client.Object, opts ...client.UpdateOption) error
	listFunc   func(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error
}

func (m *MockClient) Get(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
	if m.getFunc != nil {
		return m.getFunc(ctx, key, obj, opts...)
	}
	return m.Client.Get(ctx, key, obj, opts...)
}

func (m *MockClient) Create(ctx context.Context, obj client.Object, opts ...client.CreateOption) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, obj, opts...)
	}
	return m.Client.Create(ctx, obj, opts...)
}

func (m *MockClient) Update(ctx context.Context, obj client.Object, opts ...client.UpdateOption) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, obj, opts...)
	}
	return m.Client.Update(ctx, obj, opts...)
}

func (m *MockClient) List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	if m.listFunc != nil {
		return m.listFunc(ctx, list, opts...)
	}
	return m.Client.List(ctx, list, opts...)
}

const testNamespace = "fluidos"

func newTestScheme(t *testing.T) *runtime.Scheme {
	t.Helper()

	scheme := runtime.NewScheme()
	require.NoError(t, corev1.AddToScheme(scheme))
	require.NoError(t, nodecorev1alpha1.AddToScheme(scheme))
	require.NoError(t, advertisementv1alpha1.AddToScheme(scheme))
	require.NoError(t, reservationv1alpha1.AddToScheme(scheme))
	return scheme
}

func newFakeClient(t *testing.T, scheme *runtime.Scheme, objects ...client.Object) client.Client {
	t.Helper()
	return fake.NewClientBuilder().WithScheme(scheme).WithObjects(objects...).Build()
}

// testConfig keeps poll timing tight so protocol tests finish in
// milliseconds.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.SolverPollInterval = metav1.Duration{Duration: time.Millisecond}
	cfg.SolverPollBudget = 10
	cfg.Identity = nodecorev1alpha1.NodeIdentity{
		Domain: "buyer.example.com",
		IP:     "10.0.0.1",
		NodeID: "buyer-1",
	}
	return cfg
}

func newFlavour(name, cpu, memory, architecture string) *nodecorev1alpha1.Flavour {
	return &nodecorev1alpha1.Flavour{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: testNamespace,
		},
		Spec: nodecorev1alpha1.FlavourSpec{
			Type:       nodecorev1alpha1.FlavourTypeK8Slice,
			ProviderID: "provider-1",
			Characteristics: nodecorev1alpha1.Characteristics{
				CPU:          cpu,
				Memory:       memory,
				Architecture: architecture,
				GPU:          "0",
			},
			Owner: nodecorev1alpha1.NodeIdentity{
				Domain: "seller.example.com",
				NodeID: "seller-1",
			},
		},
	}
}

func newCandidate(name string, flavour *nodecorev1alpha1.Flavour) advertisementv1alpha1.PeeringCandidate {
	return advertisementv1alpha1.PeeringCandidate{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: testNamespace,
		},
		Spec: advertisementv1alpha1.PeeringCandidateSpec{
			Available: true,
			Flavour:   *flavour,
		},
	}
}

func newDiscovery(solverName string, candidates ...advertisementv1alpha1.PeeringCandidate) *advertisementv1alpha1.Discovery {
	return &advertisementv1alpha1.Discovery{
		ObjectMeta: metav1.ObjectMeta{
			Name:      discoveryName(solverName),
			Namespace: testNamespace,
		},
		Spec: advertisementv1alpha1.DiscoverySpec{SolverID: solverName},
		Status: advertisementv1alpha1.DiscoveryStatus{
			PeeringCandidateList: advertisementv1alpha1.PeeringCandidateList{Items: candidates},
		},
	}
}

// solverPhaseSequence makes successive solver fetches observe the given
// phases, holding the last one once the sequence runs out.
func solverPhaseSequence(base client.Client, phases ...nodecorev1alpha1.SolverPhase) *MockClient {
	var observed int
	return &MockClient{
		Client: base,
		getFunc: func(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
			err := base.Get(ctx, key, obj, opts...)
			if err != nil {
				return err
			}
			if solver, ok := obj.(*nodecorev1alpha1.Solver); ok && len(phases) > 0 {
				idx := observed
				if idx >= len(phases) {
					idx = len(phases) - 1
				}
				solver.Status.SolverPhase.Phase = phases[idx]
				observed++
			}
			return nil
		},
	}
}
