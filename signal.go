package foreman

// Signal is a named, synchronous notification channel. Listeners run in
// connection order on every Emit; a panicking listener propagates to the
// emitter and aborts the remaining dispatch.
type Signal struct {
	name      string
	listeners []SignalListener
}

// Name returns the name the signal was registered under.
func (s *Signal) Name() string { return s.name }

// Connect appends a listener. Connection order is dispatch order.
func (s *Signal) Connect(listener SignalListener) {
	s.listeners = append(s.listeners, listener)
}

// Emit invokes every connected listener synchronously with args.
func (s *Signal) Emit(args ...any) {
	for _, listener := range s.listeners {
		listener(args...)
	}
}

// SignalBus hands out named signals, creating each on first use. Signals
// live for the lifetime of the owning App; independent Apps never share a
// bus.
type SignalBus struct {
	signals map[string]*Signal
}

func newSignalBus() *SignalBus {
	return &SignalBus{signals: make(map[string]*Signal)}
}

// Signal returns the signal registered under name, creating it if needed.
func (b *SignalBus) Signal(name string) *Signal {
	s, ok := b.signals[name]
	if !ok {
		s = &Signal{name: name}
		b.signals[name] = s
	}
	return s
}
