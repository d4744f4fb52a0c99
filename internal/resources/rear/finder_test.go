package rear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
)

func TestFindBestMatchLocalFirst(t *testing.T) {
	scheme := newTestScheme(t)
	base := newFakeClient(t, scheme,
		newFlavour("flavour-local", "4", "16777216Ki", "amd64"),
		newDiscovery("req-1-solver", newCandidate("pc-1", newFlavour("flavour-remote", "8", "33554432Ki", "amd64"))),
	)
	cl := solverPhaseSequence(base, nodecorev1alpha1.SolverPhaseSolved)

	finder := NewFinder(cl, scheme, testConfig())
	providers, err := finder.FindBestMatch(context.Background(), model.Resource{
		ID:     "req-1",
		CPU:    "2",
		Memory: "4194304Ki",
	}, testNamespace)
	require.NoError(t, err)

	require.Len(t, providers, 2)
	assert.IsType(t, &LocalResourceProvider{}, providers[0], "local matches come first")
	assert.IsType(t, &RemoteResourceProvider{}, providers[1])
	assert.Equal(t, "flavour-local", providers[0].ID())
}

func TestFindBestMatchIntentUnsupported(t *testing.T) {
	scheme := newTestScheme(t)
	finder := NewFinder(newFakeClient(t, scheme), scheme, testConfig())

	providers, err := finder.FindBestMatch(context.Background(), model.Intent{Name: model.IntentLatency, Value: "50ms"}, testNamespace)

	assert.NoError(t, err)
	assert.Empty(t, providers)
}

type bogusRequest struct{}

func (bogusRequest) RequestID() string { return "bogus" }

func TestFindBestMatchUnknownRequestType(t *testing.T) {
	scheme := newTestScheme(t)
	finder := NewFinder(newFakeClient(t, scheme), scheme, testConfig())

	_, err := finder.FindBestMatch(context.Background(), bogusRequest{}, testNamespace)
	assert.Error(t, err)
}

func TestFindBestMatchRejectsMalformedQuantities(t *testing.T) {
	scheme := newTestScheme(t)
	finder := NewFinder(newFakeClient(t, scheme), scheme, testConfig())

	_, err := finder.FindBestMatch(context.Background(), model.Resource{ID: "req-1", CPU: "5x"}, testNamespace)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = finder.FindBestMatch(context.Background(), model.Resource{ID: "req-1", Memory: "1KB"}, testNamespace)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestFindBestMatchNoCapacityAnywhere(t *testing.T) {
	scheme := newTestScheme(t)
	base := newFakeClient(t, scheme, newDiscovery("req-2-solver"))
	cl := solverPhaseSequence(base, nodecorev1alpha1.SolverPhaseSolved)

	finder := NewFinder(cl, scheme, testConfig())
	providers, err := finder.FindBestMatch(context.Background(), model.Resource{
		ID:     "req-2",
		CPU:    "2",
		Memory: "4194304Ki",
	}, testNamespace)

	assert.NoError(t, err)
	assert.Empty(t, providers)
}

func TestWithOwnerClones(t *testing.T) {
	scheme := newTestScheme(t)
	finder := NewFinder(newFakeClient(t, scheme), scheme, testConfig())

	derived := finder.WithOwner(newFlavour("flavour-owner", "1", "1Ki", "amd64"))

	assert.Nil(t, finder.owner, "the original finder must stay ownerless")
	assert.NotNil(t, derived.owner)
}

func TestListAllFlavors(t *testing.T) {
	scheme := newTestScheme(t)
	cl := newFakeClient(t, scheme,
		newFlavour("flavour-1", "4", "16777216Ki", "amd64"),
		newFlavour("flavour-2", "8", "33554432Ki", "arm64"),
	)

	finder := NewFinder(cl, scheme, testConfig())
	flavors, err := finder.ListAllFlavors(context.Background(), testNamespace)
	require.NoError(t, err)
	assert.Len(t, flavors, 2)
}
