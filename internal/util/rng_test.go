package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skirmish/internal/util"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a := util.New(99)
	b := util.New(99)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNew_ZeroSeedMapsToOne(t *testing.T) {
	assert.Equal(t, util.New(1).Int63(), util.New(0).Int63())
}

func TestNewSeed_NonZero(t *testing.T) {
	seed, err := util.NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
