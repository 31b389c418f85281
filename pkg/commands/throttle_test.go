package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThrottled_DeniesAfterBurst(t *testing.T) {
	d, _ := newTestDispatcher()
	th := NewThrottled(d, 0.001, 1)

	assert.Equal(t, "found no testTwo, 1", th.Execute(".test 1"))
	assert.Equal(t, throttledMessage, th.Execute(".test 1"))
}

func TestThrottled_PlainTextIsFree(t *testing.T) {
	d, _ := newTestDispatcher()
	th := NewThrottled(d, 0.001, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, `Supplied command does not start with catalyst, ".".`, th.Execute("hello"))
	}
	assert.Equal(t, "found no testTwo, 2", th.Execute(".test 2"))
}

func TestThrottled_UsesDispatcherCatalyst(t *testing.T) {
	d, _ := newTestDispatcher(WithCatalyst("!"))
	th := NewThrottled(d, 0.001, 1)
	assert.Equal(t, "!", th.Catalyst())

	assert.Equal(t, "found no testTwo, 1", th.Execute("!test 1"))
	assert.Equal(t, throttledMessage, th.Execute("!test 1"))
	assert.Equal(t, `Supplied command does not start with catalyst, "!".`, th.Execute(".test 1"))
}
