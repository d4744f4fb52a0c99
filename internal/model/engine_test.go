package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

func podTemplateWithRequests(requests ...corev1.ResourceList) *corev1.PodTemplateSpec {
	template := &corev1.PodTemplateSpec{}
	for i, rl := range requests {
		template.Spec.Containers = append(template.Spec.Containers, corev1.Container{
			Name:      "c" + string(rune('0'+i)),
			Image:     "registry.example.com/demo:latest",
			Resources: corev1.ResourceRequirements{Requests: rl},
		})
	}
	return template
}

func TestRequestBasedEnginePredict(t *testing.T) {
	engine := NewRequestBasedEngine()

	template := podTemplateWithRequests(
		corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("500m"),
			corev1.ResourceMemory: resource.MustParse("512Mi"),
		},
		corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("250m"),
			corev1.ResourceMemory: resource.MustParse("512Mi"),
		},
	)

	response, err := engine.Predict(context.Background(), &ModelPredictRequest{
		ID:          "demo",
		Namespace:   "default",
		PodTemplate: template,
	}, DefaultArchitecture)
	require.NoError(t, err)

	profile := response.ToResource()
	assert.Equal(t, "demo", profile.ID)
	assert.Equal(t, "750m", profile.CPU)
	assert.Equal(t, "1048576Ki", profile.Memory)
	assert.Equal(t, "amd64", profile.Architecture)

	// the predicted profile must always survive the matcher's grammar
	_, err = NormalizeCPU(profile.CPU)
	assert.NoError(t, err)
	_, err = NormalizeMemory(profile.Memory)
	assert.NoError(t, err)
}

func TestRequestBasedEngineIntentOverride(t *testing.T) {
	engine := NewRequestBasedEngine()

	template := podTemplateWithRequests(corev1.ResourceList{
		corev1.ResourceCPU: resource.MustParse("100m"),
	})

	response, err := engine.Predict(context.Background(), &ModelPredictRequest{
		ID:          "demo",
		PodTemplate: template,
		Intents: []Intent{
			{Name: IntentCPU, Value: "2"},
			{Name: IntentMemory, Value: "4Gi"},
			{Name: IntentLatency, Value: "50ms"},
		},
	}, "arm64")
	require.NoError(t, err)

	profile := response.ToResource()
	assert.Equal(t, "2", profile.CPU)
	assert.Equal(t, "4Gi", profile.Memory)
	assert.Equal(t, "arm64", profile.Architecture)
}

func TestRequestBasedEngineNoTemplate(t *testing.T) {
	engine := NewRequestBasedEngine()

	_, err := engine.Predict(context.Background(), &ModelPredictRequest{ID: "demo"}, DefaultArchitecture)
	assert.Error(t, err)
}

func TestExtractResourceIntents(t *testing.T) {
	intents := ExtractResourceIntents(corev1.ResourceList{
		corev1.ResourceCPU:    resource.MustParse("500m"),
		corev1.ResourceMemory: resource.MustParse("1Gi"),
	})
	require.Len(t, intents, 2)
	assert.Equal(t, IntentCPU, intents[0].Name)
	assert.Equal(t, "500m", intents[0].Value)
	assert.Equal(t, IntentMemory, intents[1].Name)
	assert.Equal(t, "1Gi", intents[1].Value)

	assert.Empty(t, ExtractResourceIntents(nil))
}

func TestFindBestValidation(t *testing.T) {
	assert.Nil(t, FindBestValidation(nil, nil))
}
