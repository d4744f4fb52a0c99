package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlavor(cpu, memory, architecture, gpu string) Flavor {
	return Flavor{
		ID:         "test-flavour",
		Type:       FlavorK8Slice,
		ProviderID: "provider-1",
		Characteristics: FlavorCharacteristics{
			CPU:          cpu,
			Memory:       memory,
			Architecture: architecture,
			GPU:          gpu,
		},
	}
}

func TestCanRunOnCompatible(t *testing.T) {
	request := Resource{ID: "req-1", CPU: "500m", Memory: "512Mi"}
	flavor := testFlavor("2", "1Gi", "amd64", "0")

	ok, err := request.CanRunOn(flavor)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanRunOnInsufficientCPU(t *testing.T) {
	request := Resource{ID: "req-1", CPU: "4", Memory: "1Gi"}
	flavor := testFlavor("2", "4Gi", "amd64", "0")

	ok, err := request.CanRunOn(flavor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanRunOnInsufficientMemory(t *testing.T) {
	request := Resource{ID: "req-1", CPU: "1", Memory: "8Gi"}
	flavor := testFlavor("2", "4Gi", "amd64", "0")

	ok, err := request.CanRunOn(flavor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanRunOnMutualPresence(t *testing.T) {
	// A missing dimension means unknown capacity, never infinite: the match
	// fails whichever side omits it.
	tests := []struct {
		name    string
		request Resource
		flavor  Flavor
	}{
		{
			name:    "request without cpu",
			request: Resource{ID: "r", Memory: "512Mi"},
			flavor:  testFlavor("2", "1Gi", "", ""),
		},
		{
			name:    "flavor without cpu",
			request: Resource{ID: "r", CPU: "500m", Memory: "512Mi"},
			flavor:  testFlavor("", "1Gi", "", ""),
		},
		{
			name:    "request without memory",
			request: Resource{ID: "r", CPU: "500m"},
			flavor:  testFlavor("2", "1Gi", "", ""),
		},
		{
			name:    "flavor without memory",
			request: Resource{ID: "r", CPU: "500m", Memory: "512Mi"},
			flavor:  testFlavor("2", "", "", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.request.CanRunOn(tt.flavor)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCanRunOnArchitecture(t *testing.T) {
	flavor := testFlavor("2", "1Gi", "arm64", "")

	constrained := Resource{ID: "r", CPU: "1", Memory: "512Mi", Architecture: "amd64"}
	ok, err := constrained.CanRunOn(flavor)
	require.NoError(t, err)
	assert.False(t, ok, "architecture mismatch must fail")

	unconstrained := Resource{ID: "r", CPU: "1", Memory: "512Mi"}
	ok, err = unconstrained.CanRunOn(flavor)
	require.NoError(t, err)
	assert.True(t, ok, "unset architecture is unconstrained")
}

func TestCanRunOnGPU(t *testing.T) {
	flavor := testFlavor("2", "1Gi", "", "2")

	satisfied := Resource{ID: "r", CPU: "1", Memory: "512Mi", GPU: "1"}
	ok, err := satisfied.CanRunOn(flavor)
	require.NoError(t, err)
	assert.True(t, ok)

	exceeded := Resource{ID: "r", CPU: "1", Memory: "512Mi", GPU: "4"}
	ok, err = exceeded.CanRunOn(flavor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanRunOnMalformedQuantity(t *testing.T) {
	request := Resource{ID: "r", CPU: "lots", Memory: "512Mi"}
	flavor := testFlavor("2", "1Gi", "", "")

	_, err := request.CanRunOn(flavor)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	request = Resource{ID: "r", CPU: "1", Memory: "512MB"}
	_, err = request.CanRunOn(flavor)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCanRunOnStorageUnconstrained(t *testing.T) {
	// Storage comparison is an open gap: it must pass whatever the values
	// are so behavior stays reproducible until semantics are defined.
	request := Resource{ID: "r", CPU: "1", Memory: "512Mi", EphemeralStorage: "100Gi", PersistentStorage: "1Gi"}
	flavor := testFlavor("2", "1Gi", "", "")

	ok, err := request.CanRunOn(flavor)
	require.NoError(t, err)
	assert.True(t, ok)
}
