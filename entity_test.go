package foreman

import (
	"errors"
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func TestEntityAllocation(t *testing.T) {
	registry := newEntityRegistry()

	seen := make(map[Entity]bool)
	var prev Entity
	for i := 0; i < 1000; i++ {
		e := registry.allocate()
		if seen[e] {
			t.Fatalf("allocate() returned duplicate identity %d", e)
		}
		seen[e] = true
		if e <= prev {
			t.Fatalf("allocate() returned %d after %d, want strictly increasing", e, prev)
		}
		prev = e

		if !registry.alive(e) {
			t.Errorf("entity %d not live after allocation", e)
		}
	}
}

func TestEntityRelease(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(r *entityRegistry) Entity
		wantError bool
	}{
		{
			name: "release live entity",
			setup: func(r *entityRegistry) Entity {
				return r.allocate()
			},
			wantError: false,
		},
		{
			name: "double release",
			setup: func(r *entityRegistry) Entity {
				e := r.allocate()
				if err := r.release(e); err != nil {
					t.Fatalf("first release failed: %v", err)
				}
				return e
			},
			wantError: true,
		},
		{
			name: "release never-allocated entity",
			setup: func(r *entityRegistry) Entity {
				return Entity(42)
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newEntityRegistry()
			e := tt.setup(registry)

			err := registry.release(e)
			if (err != nil) != tt.wantError {
				t.Fatalf("release() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				var notFound EntityNotFoundError
				if !errors.As(err, &notFound) {
					t.Errorf("release() error = %v, want EntityNotFoundError", err)
				}
			}
			if registry.alive(e) {
				t.Errorf("entity %d still live after release path", e)
			}
		})
	}
}

func TestEntityIdentityNotReused(t *testing.T) {
	registry := newEntityRegistry()

	first := registry.allocate()
	if err := registry.release(first); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	second := registry.allocate()
	if second == first {
		t.Errorf("identity %d reused after release", first)
	}
	if second <= first {
		t.Errorf("allocate() after release returned %d, want > %d", second, first)
	}
}
