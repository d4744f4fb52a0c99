package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCPU(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want int64
	}{
		{name: "nanocores pass through", spec: "1500n", want: 1500},
		{name: "millicores scale by 1000", spec: "500m", want: 500000},
		{name: "bare cores scale by a million", spec: "2", want: 2000000},
		{name: "zero nanocores", spec: "0n", want: 0},
		{name: "single millicore", spec: "1m", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCPU(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCPUInvalid(t *testing.T) {
	for _, spec := range []string{"", "abc", "2.5", "100k", "m", "500mi"} {
		t.Run(spec, func(t *testing.T) {
			_, err := NormalizeCPU(spec)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		})
	}
}

func TestNormalizeMemory(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want int64
	}{
		{name: "kibibytes are the base unit", spec: "512Ki", want: 512},
		{name: "mebibytes scale by 1024", spec: "512Mi", want: 524288},
		{name: "gibibytes scale by 1024 squared", spec: "1Gi", want: 1048576},
		{name: "zero", spec: "0Ki", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMemory(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMemoryInvalid(t *testing.T) {
	// Decimal SI units are deliberately rejected: binary scaling only.
	for _, spec := range []string{"", "Ki", "512", "512K", "512M", "1G", "1Ti", "xyzKi"} {
		t.Run(spec, func(t *testing.T) {
			_, err := NormalizeMemory(spec)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		})
	}
}
