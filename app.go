package foreman

import (
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// App owns one instance of every runtime collaborator and drives registered
// systems through the phase protocol: run the phase's systems in
// registration order, then apply the commands they queued. Independent Apps
// share no state.
type App struct {
	registry *entityRegistry
	sto      *storage
	commands *Commands
	query    *Query
	events   *EventBus
	signals  *SignalBus

	systems [numPhases][]System

	log zerolog.Logger
}

func newApp(opts ...Option) *App {
	schema := newSchema()
	sto := newStorage(schema)
	registry := newEntityRegistry()
	signals := newSignalBus()

	app := &App{
		registry: registry,
		sto:      sto,
		commands: newCommands(registry, sto, signals),
		query:    newQuery(sto),
		events:   newEventBus(),
		signals:  signals,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// AddSystems appends systems to the phase's bucket, preserving registration
// order. It returns the App for chaining.
func (app *App) AddSystems(phase Phase, systems ...System) *App {
	app.systems[phase] = append(app.systems[phase], systems...)
	return app
}

// Init runs every PhaseInit system once, then applies queued commands.
func (app *App) Init() error {
	return app.RunPhase(PhaseInit)
}

// Update drains the event bus, runs every PhaseUpdate system in
// registration order, then applies queued commands. Events emitted by
// update systems dispatch at the start of the next Update.
func (app *App) Update() error {
	app.events.Process()
	return app.RunPhase(PhaseUpdate)
}

// Draw runs every PhaseDraw system, then applies queued commands.
func (app *App) Draw() error {
	return app.RunPhase(PhaseDraw)
}

// RunPhase runs one phase under the standard protocol: systems in
// registration order, then a single command apply. Init, Update, and Draw
// build on it; callers drive the reserved phases (PhasePreUpdate,
// PhasePostUpdate, PhaseUnload) with it directly.
func (app *App) RunPhase(phase Phase) error {
	if !phase.valid() {
		return eris.Errorf("unknown phase %d", int(phase))
	}
	for _, system := range app.systems[phase] {
		app.log.Debug().
			Str("phase", phase.String()).
			Str("system", SystemName(system)).
			Msg("running system")
		system(app.commands, app.query, app.events)
	}
	if err := app.commands.apply(); err != nil {
		return eris.Wrapf(err, "%s phase failed to apply commands", phase.String())
	}
	return nil
}

// EventBus exposes the App's event bus so callers outside systems can
// subscribe and emit.
func (app *App) EventBus() *EventBus {
	return app.events
}

// Signal returns the named signal from the App's signal bus, creating it on
// first use.
func (app *App) Signal(name string) *Signal {
	return app.signals.Signal(name)
}

// Query exposes read-only access to current storage state.
func (app *App) Query() *Query {
	return app.query
}

// SystemName derives a human-readable name for a system function.
func SystemName(system System) string {
	return filepath.Base(runtime.FuncForPC(reflect.ValueOf(system).Pointer()).Name())
}
