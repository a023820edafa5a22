package rounds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	current, e := Current(context.Background(), 15, 1603366002)
	if e != nil {
		t.Error(e)
	}

	t.Log("current round:", current)
}

func TestAt(t *testing.T) {
	genesis := int64(1603366002)
	base := time.Unix(genesis, 0)

	round, err := At(context.Background(), 15, genesis, base.Add(30*time.Second))
	assert.Nil(t, err)
	assert.Equal(t, int64(2), round)

	// non-decreasing inside a window
	again, err := At(context.Background(), 15, genesis, base.Add(44*time.Second))
	assert.Nil(t, err)
	assert.Equal(t, int64(2), again)

	next, err := At(context.Background(), 15, genesis, base.Add(45*time.Second))
	assert.Nil(t, err)
	assert.Equal(t, int64(3), next)
}

func TestAtInvalid(t *testing.T) {
	_, err := At(context.Background(), 0, 1603366002, time.Now())
	assert.NotNil(t, err)

	_, err = At(context.Background(), 15, time.Now().Unix()+3600, time.Now())
	assert.NotNil(t, err)
}
