package foreman

import "fmt"

type spawnOp struct {
	entity Entity
	comps  []Component
}

type componentOp struct {
	entity Entity
	comp   Component
	kind   Kind
}

// Commands is the command buffer: the only write path into an App's
// registry and storage. Every method only enqueues; no mutation is visible
// to queries until the App applies the buffer at the end of the phase, so a
// system never observes a half-updated world mid-phase.
type Commands struct {
	registry *entityRegistry
	sto      *storage
	signals  *SignalBus

	spawns   []spawnOp
	despawns []Entity
	adds     []componentOp
	removes  []componentOp

	hooks StorageEvents
}

func newCommands(registry *entityRegistry, sto *storage, signals *SignalBus) *Commands {
	return &Commands{
		registry: registry,
		sto:      sto,
		signals:  signals,
	}
}

// Spawn allocates a fresh entity immediately, so the identity can be
// referenced within the same tick, and queues its components for attachment
// on apply.
func (c *Commands) Spawn(components ...Component) Entity {
	e := c.registry.allocate()
	c.spawns = append(c.spawns, spawnOp{entity: e, comps: components})
	return e
}

// Despawn queues removal of the entity from the registry and storage.
// Despawning an entity that is not live surfaces as an error when the
// buffer applies.
func (c *Commands) Despawn(e Entity) {
	c.despawns = append(c.despawns, e)
}

// AddComponent queues a component attachment. Attaching a second component
// of the same kind overwrites the first.
func (c *Commands) AddComponent(e Entity, component Component) {
	c.adds = append(c.adds, componentOp{entity: e, comp: component})
}

// RemoveComponent queues removal of one kind from the entity. Removing a
// kind that is not present is a no-op.
func (c *Commands) RemoveComponent(e Entity, k Kind) {
	c.removes = append(c.removes, componentOp{entity: e, kind: k})
}

// Signal returns the named signal from the bus owned by this App, creating
// it on first use.
func (c *Commands) Signal(name string) *Signal {
	return c.signals.Signal(name)
}

// apply commits queued commands in a fixed order: spawns, despawns, adds,
// removes. Each queue fully drains before the next starts, so a despawn
// queued in the same tick as adds or removes targeting that entity wins and
// the later commands become no-ops.
func (c *Commands) apply() error {
	for _, op := range c.spawns {
		for _, comp := range op.comps {
			if err := c.sto.attach(op.entity, comp); err != nil {
				return fmt.Errorf("failed to apply queued spawn: %w", err)
			}
		}
		if c.hooks.OnSpawn != nil {
			c.hooks.OnSpawn(op.entity)
		}
	}
	c.spawns = c.spawns[:0]

	for _, e := range c.despawns {
		if err := c.registry.release(e); err != nil {
			return fmt.Errorf("failed to apply queued despawn: %w", err)
		}
		if c.sto.hasRecord(e) {
			c.sto.detachAll(e)
		}
		if c.hooks.OnDespawn != nil {
			c.hooks.OnDespawn(e)
		}
	}
	c.despawns = c.despawns[:0]

	for _, op := range c.adds {
		// Attach would resurrect the record of an entity despawned earlier
		// in this apply, so dead targets are skipped.
		if !c.registry.alive(op.entity) {
			continue
		}
		if err := c.sto.attach(op.entity, op.comp); err != nil {
			return fmt.Errorf("failed to apply queued add: %w", err)
		}
	}
	c.adds = c.adds[:0]

	for _, op := range c.removes {
		if !c.registry.alive(op.entity) {
			continue
		}
		c.sto.detachOne(op.entity, op.kind)
	}
	c.removes = c.removes[:0]

	return nil
}
