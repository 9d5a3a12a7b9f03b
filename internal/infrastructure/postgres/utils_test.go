package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStringList(t *testing.T) {
	casos := []struct {
		raw      string
		esperado []string
	}{
		{`["cocinas","obra gris"]`, []string{"cocinas", "obra gris"}},
		{`[]`, []string{}},
		{``, []string{}},
		{`null`, []string{}},
		{`{"a":1}`, []string{}},
		{`[1,2,3]`, []string{}},
		{`no es json`, []string{}},
	}
	for _, c := range casos {
		got := decodeStringList(c.raw)
		assert.NotNil(t, got, "raw=%q", c.raw)
		assert.Equal(t, c.esperado, got, "raw=%q", c.raw)
	}
}

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, `["a","b"]`, encodeStringList([]string{"a", "b"}))
	assert.Equal(t, `[]`, encodeStringList(nil))
	assert.Equal(t, `[]`, encodeStringList([]string{}))
}

func TestEncodeDecodeIdaYVuelta(t *testing.T) {
	original := []string{"baños", "enchapes", "diseño 3D"}
	assert.Equal(t, original, decodeStringList(encodeStringList(original)))
}
