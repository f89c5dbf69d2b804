package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shade string

const (
	shadeLight shade = "light"
	shadeDark  shade = "dark"
)

func newShades() *Normalizer[shade] {
	return NewNormalizer(map[string]shade{
		"light": shadeLight,
		"dark":  shadeDark,
		"night": shadeDark,
	}, shadeLight)
}

func TestNormalize(t *testing.T) {
	n := newShades()
	tests := []struct {
		input string
		want  shade
	}{
		{"dark", shadeDark},
		{"  DARK ", shadeDark},
		{"Night", shadeDark},
		{"unknown", shadeLight},
		{"", shadeLight},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	n := newShades()

	got, err := n.Parse(" Light")
	require.NoError(t, err)
	assert.Equal(t, shadeLight, got)

	got, err = n.Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, shadeLight, got)

	_, err = n.Parse("purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dark, light, night")
}

func TestValidKeysReturnsCopy(t *testing.T) {
	n := newShades()
	keys := n.ValidKeys()
	keys[0] = "changed"
	assert.Equal(t, []string{"dark", "light", "night"}, n.ValidKeys())
}
