package registry

import (
	"errors"
	"testing"

	"github.com/nilsbloom/binser/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRegistry_RegisterAndLookup(t *testing.T) {
	r := NewResourceRegistry()
	obj := &struct{ N int }{N: 1}

	require.NoError(t, r.Register("conn", obj))

	byName, ok := r.ByName("conn")
	require.True(t, ok)
	assert.Equal(t, obj, byName.Value)

	byObj, ok := r.ByObject(obj)
	require.True(t, ok)
	assert.Equal(t, "conn", byObj.Name)
}

func TestResourceRegistry_DuplicateName(t *testing.T) {
	r := NewResourceRegistry()
	require.NoError(t, r.Register("conn", 1))

	err := r.Register("conn", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDuplicateRegistration))
}

func TestResourceRegistry_DuplicateObject(t *testing.T) {
	r := NewResourceRegistry()
	require.NoError(t, r.Register("conn", 1))

	err := r.Register("other", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDuplicateRegistration))
}

func TestResourceRegistry_Unregister(t *testing.T) {
	r := NewResourceRegistry()
	require.NoError(t, r.Register("conn", 1))
	require.NoError(t, r.Unregister("conn"))

	_, ok := r.ByName("conn")
	assert.False(t, ok)
}
