package foreman

import "testing"

func TestAttachOverwrites(t *testing.T) {
	sto := newStorage(newSchema())
	e := Entity(1)

	if err := sto.attach(e, Position{X: 1, Y: 1}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := sto.attach(e, Position{X: 5, Y: 9}); err != nil {
		t.Fatalf("second attach failed: %v", err)
	}

	comps, ok := sto.componentsOf(e)
	if !ok {
		t.Fatal("componentsOf() missing record after attach")
	}
	if len(comps) != 1 {
		t.Fatalf("record holds %d components, want 1", len(comps))
	}
	pos := comps[KindOf[Position]().Name()].(Position)
	if pos.X != 5 || pos.Y != 9 {
		t.Errorf("got %+v, want the second attached value", pos)
	}
}

func TestAttachCreatesRecord(t *testing.T) {
	sto := newStorage(newSchema())
	e := Entity(7)

	if sto.hasRecord(e) {
		t.Fatal("fresh storage should hold no records")
	}
	if err := sto.attach(e, Health{Current: 10, Max: 10}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if !sto.hasRecord(e) {
		t.Error("attach did not create the entity's record")
	}
}

func TestDetach(t *testing.T) {
	posKind := KindOf[Position]()
	velKind := KindOf[Velocity]()

	tests := []struct {
		name       string
		detach     func(sto *storage, e Entity)
		wantRecord bool
		wantKinds  []Kind
	}{
		{
			name: "detachOne removes only the kind",
			detach: func(sto *storage, e Entity) {
				sto.detachOne(e, velKind)
			},
			wantRecord: true,
			wantKinds:  []Kind{posKind},
		},
		{
			name: "detachOne of absent kind is a no-op",
			detach: func(sto *storage, e Entity) {
				sto.detachOne(e, KindOf[Health]())
			},
			wantRecord: true,
			wantKinds:  []Kind{posKind, velKind},
		},
		{
			name: "detachOne on unknown entity is a no-op",
			detach: func(sto *storage, e Entity) {
				sto.detachOne(Entity(999), posKind)
			},
			wantRecord: true,
			wantKinds:  []Kind{posKind, velKind},
		},
		{
			name: "detachAll deletes the record",
			detach: func(sto *storage, e Entity) {
				sto.detachAll(e)
			},
			wantRecord: false,
		},
		{
			name: "detachAll on unknown entity is a no-op",
			detach: func(sto *storage, e Entity) {
				sto.detachAll(Entity(999))
			},
			wantRecord: true,
			wantKinds:  []Kind{posKind, velKind},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sto := newStorage(newSchema())
			e := Entity(1)
			if err := sto.attach(e, Position{}); err != nil {
				t.Fatalf("attach failed: %v", err)
			}
			if err := sto.attach(e, Velocity{}); err != nil {
				t.Fatalf("attach failed: %v", err)
			}

			tt.detach(sto, e)

			if sto.hasRecord(e) != tt.wantRecord {
				t.Fatalf("hasRecord() = %v, want %v", sto.hasRecord(e), tt.wantRecord)
			}
			if !tt.wantRecord {
				return
			}
			comps, _ := sto.componentsOf(e)
			if len(comps) != len(tt.wantKinds) {
				t.Fatalf("record holds %d components, want %d", len(comps), len(tt.wantKinds))
			}
			for _, k := range tt.wantKinds {
				if _, ok := comps[k.Name()]; !ok {
					t.Errorf("record missing kind %s", k.Name())
				}
			}
		})
	}
}

func TestStorageIterationOrder(t *testing.T) {
	sto := newStorage(newSchema())

	// First-record-creation order, not entity id order.
	for _, e := range []Entity{3, 1, 2} {
		if err := sto.attach(e, Position{}); err != nil {
			t.Fatalf("attach failed: %v", err)
		}
	}
	// A second attach must not move the entity.
	if err := sto.attach(Entity(3), Velocity{}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	want := []Entity{3, 1, 2}
	if len(sto.order) != len(want) {
		t.Fatalf("order holds %d entities, want %d", len(sto.order), len(want))
	}
	for i, e := range want {
		if sto.order[i] != e {
			t.Errorf("order[%d] = %d, want %d", i, sto.order[i], e)
		}
	}

	sto.detachAll(Entity(1))
	want = []Entity{3, 2}
	for i, e := range want {
		if sto.order[i] != e {
			t.Errorf("after detachAll, order[%d] = %d, want %d", i, sto.order[i], e)
		}
	}
}

func TestKindCapacity(t *testing.T) {
	s := newSchema()
	for i := 0; i < maxKinds; i++ {
		if _, err := s.registerKind(Kind{name: string(rune('a' + i))}); err != nil {
			t.Fatalf("registerKind failed at %d: %v", i, err)
		}
	}
	_, err := s.registerKind(Kind{name: "overflow"})
	if err == nil {
		t.Fatal("registerKind succeeded past capacity")
	}
	if _, ok := err.(KindCapacityError); !ok {
		t.Errorf("got %T, want KindCapacityError", err)
	}

	// Re-registering an existing kind still succeeds at capacity.
	if _, err := s.registerKind(Kind{name: "a"}); err != nil {
		t.Errorf("re-registering existing kind failed: %v", err)
	}
}
