/*
Package foreman provides a phase-scheduled Entity-Component-System (ECS)
runtime for games and simulations.

Foreman decouples what an object is (components: plain data) from what
happens to it (systems: functions over queried data) and when it happens
(ordered phases). Systems never mutate storage directly; they queue changes
on a command buffer that the App applies at the end of each phase, so every
system within a phase observes the same consistent world.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data value attached to an entity, keyed by its type.
  - Commands: The deferred-mutation buffer, the only write path.
  - Query: A read-only view for filtering and fetching components.
  - Signal: A named channel dispatched synchronously on emit.
  - Event: A typed value queued FIFO and drained once per tick.
  - Phase: One of six ordered buckets deciding when a system runs.

Basic Usage:

	app := foreman.Factory.NewApp()

	position := foreman.FactoryNewKind[Position]()
	velocity := foreman.FactoryNewKind[Velocity]()

	spawnPlayer := func(cmd *foreman.Commands, q *foreman.Query, events *foreman.EventBus) {
		cmd.Spawn(Position{X: 0, Y: 0}, Velocity{X: 1, Y: 2})
	}

	move := func(cmd *foreman.Commands, q *foreman.Query, events *foreman.EventBus) {
		for _, e := range q.Filter(position.Kind, velocity.Kind) {
			pos, _ := position.GetFrom(q, e)
			vel, _ := velocity.GetFrom(q, e)
			cmd.AddComponent(e, Position{X: pos.X + vel.X, Y: pos.Y + vel.Y})
		}
	}

	app.AddSystems(foreman.PhaseInit, spawnPlayer).
		AddSystems(foreman.PhaseUpdate, move)

	app.Init()
	app.Update()

Foreman is single-threaded by design: systems run to completion one at a
time and all queued commands become visible together after the phase.
*/
package foreman
