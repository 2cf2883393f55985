package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsEverySubmittedTask(t *testing.T) {
	p := NewPool(4)
	var n atomic.Int64
	for i := 0; i < 100; i++ {
		assert.True(t, p.Submit(func() { n.Add(1) }))
	}
	p.Stop()
	assert.Equal(t, int64(100), n.Load())
}

func TestPoolSurvivesPanickingTask(t *testing.T) {
	p := NewPool(1)
	var ran atomic.Bool
	p.Submit(func() { panic("bad task") })
	p.Submit(func() { ran.Store(true) })
	p.Stop()
	assert.True(t, ran.Load())
}

func TestSubmitAfterStop(t *testing.T) {
	p := NewPool(0)
	p.Stop()
	p.Stop()
	assert.False(t, p.Submit(func() {}))
}
