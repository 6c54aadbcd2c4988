package foreman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalListenerOrder(t *testing.T) {
	bus := newSignalBus()
	sig := bus.Signal("damage")

	var order []string
	sig.Connect(func(args ...any) { order = append(order, "L1") })
	sig.Connect(func(args ...any) { order = append(order, "L2") })
	sig.Connect(func(args ...any) { order = append(order, "L3") })

	sig.Emit()
	sig.Emit()

	assert.Equal(t, []string{"L1", "L2", "L3", "L1", "L2", "L3"}, order)
}

func TestSignalPayload(t *testing.T) {
	bus := newSignalBus()

	var got []any
	bus.Signal("hit").Connect(func(args ...any) {
		got = args
	})
	bus.Signal("hit").Emit(Entity(4), 12)

	assert.Equal(t, []any{Entity(4), 12}, got)
}

func TestSignalLazyCreation(t *testing.T) {
	bus := newSignalBus()

	first := bus.Signal("spawned")
	second := bus.Signal("spawned")
	assert.Same(t, first, second, "same name must yield the same signal")
	assert.Equal(t, "spawned", first.Name())

	other := bus.Signal("despawned")
	assert.NotSame(t, first, other)
}

func TestSignalBusIsolation(t *testing.T) {
	appA := Factory.NewApp()
	appB := Factory.NewApp()

	fired := 0
	appA.Signal("tick").Connect(func(args ...any) { fired++ })
	appB.Signal("tick").Emit()

	assert.Zero(t, fired, "signals must not leak across Apps")
}
