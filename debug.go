package foreman

import (
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DebugSystem wraps a system with input/output logging. The wrapper
// preserves the system contract: same signature, same side effects.
func DebugSystem(log zerolog.Logger, system System) System {
	name := SystemName(system)
	return func(cmd *Commands, q *Query, events *EventBus) {
		entry := log.Debug().
			Str("system", name).
			Int("entities", len(q.Filter()))
		if pending := events.pendingKinds(); len(pending) > 0 {
			entry = entry.Strs("pending_events", pending)
		}
		entry.Msg("system starting")

		system(cmd, q, events)

		log.Debug().Str("system", name).Msg("system finished")
	}
}

// DumpEntity renders an entity's components as JSON keyed by kind name. A
// nil result with a nil error means the entity has no record.
func DumpEntity(q *Query, e Entity) ([]byte, error) {
	comps, ok := q.sto.componentsOf(e)
	if !ok {
		return nil, nil
	}
	return json.Marshal(comps)
}
