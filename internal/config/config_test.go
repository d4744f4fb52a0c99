package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "fluidos.eu/resource-node", cfg.LocalNodeKey)
	assert.Equal(t, "liqo.io/remote-cluster-id", cfg.RemoteNodeKey)
	assert.Equal(t, "fluidos", cfg.Namespace)
	assert.Equal(t, 25, cfg.SolverPollBudget)
	assert.Equal(t, 200*time.Millisecond, cfg.SolverPollInterval.Duration)
	assert.Equal(t, 5*time.Second, cfg.SolverDeadline())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
namespace: fluidos-system
solverPollInterval: 50ms
solverPollBudget: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fluidos-system", cfg.Namespace)
	assert.Equal(t, 50*time.Millisecond, cfg.SolverPollInterval.Duration)
	assert.Equal(t, 10, cfg.SolverPollBudget)
	// untouched fields keep their defaults
	assert.Equal(t, "fluidos.eu/resource-node", cfg.LocalNodeKey)
	assert.Equal(t, 500*time.Millisecond, cfg.SolverDeadline())
}

func TestLoadRejectsBadTiming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solverPollBudget: -1\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDiscoverIdentity(t *testing.T) {
	scheme := runtime.NewScheme()
	require.NoError(t, corev1.AddToScheme(scheme))

	identityMap := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      IdentityConfigMapName,
			Namespace: "fluidos",
		},
		Data: map[string]string{
			"domain": "cluster.example.com",
			"ip":     "10.0.0.1",
			"nodeID": "node-42",
		},
	}
	cl := fake.NewClientBuilder().WithScheme(scheme).WithObjects(identityMap).Build()

	cfg := Default()
	require.NoError(t, cfg.DiscoverIdentity(context.Background(), cl))

	assert.Equal(t, "cluster.example.com", cfg.Identity.Domain)
	assert.Equal(t, "10.0.0.1", cfg.Identity.IP)
	assert.Equal(t, "node-42", cfg.Identity.NodeID)
}

func TestDiscoverIdentityMissing(t *testing.T) {
	scheme := runtime.NewScheme()
	require.NoError(t, corev1.AddToScheme(scheme))

	cl := fake.NewClientBuilder().WithScheme(scheme).Build()

	cfg := Default()
	err := cfg.DiscoverIdentity(context.Background(), cl)
	assert.Error(t, err)
}

func TestDiscoverIdentityWithoutNodeID(t *testing.T) {
	scheme := runtime.NewScheme()
	require.NoError(t, corev1.AddToScheme(scheme))

	broken := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: IdentityConfigMapName, Namespace: "fluidos"},
		Data:       map[string]string{"domain": "cluster.example.com"},
	}
	cl := fake.NewClientBuilder().WithScheme(scheme).WithObjects(broken).Build()

	cfg := Default()
	assert.Error(t, cfg.DiscoverIdentity(context.Background(), cl))
}
