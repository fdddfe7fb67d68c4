package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("ab, max_depth=3,,eval=kernel,expr=a=b")
	assert.Equal(t, Params{"ab": "", "max_depth": "3", "eval": "kernel", "expr": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("ab,keep_tree=false,max_depth=3,sigma=1.5,max_time=2s,seed,name=x")

	ab, err := GetParamOr(params, "ab", false)
	require.NoError(t, err)
	assert.True(t, ab)

	keepTree, err := GetParamOr(params, "keep_tree", true)
	require.NoError(t, err)
	assert.False(t, keepTree)

	depth, err := GetParamOr(params, "max_depth", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	sigma, err := GetParamOr(params, "sigma", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), sigma)

	maxTime, err := GetParamOr(params, "max_time", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, maxTime)

	// Numeric key without value keeps the default.
	seed, err := GetParamOr(params, "seed", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, seed)

	missing, err := GetParamOr(params, "missing", 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, missing)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	// GetParamOr doesn't consume the parameters.
	assert.Len(t, params, 7)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("max_depth=two,sigma=2")
	_, err := PopParamOr(params, "max_depth", 3)
	require.Error(t, err)
	assert.Contains(t, params, "max_depth", "failed parsing should not remove the parameter")

	sigma, err := PopParamOr(params, "sigma", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sigma)
	assert.NotContains(t, params, "sigma")

	_, err = PopParamOr(NewFromConfigString("ab=maybe"), "ab", false)
	require.Error(t, err)
}
