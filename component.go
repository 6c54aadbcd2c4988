package foreman

import "reflect"

// Kind is the type identity used as the storage and lookup key for a
// component. Kinds are equal iff they name the same Go type. Names are
// package-path qualified, so two component types sharing a short name in
// different packages never collide.
type Kind struct {
	name string
}

// Name returns the qualified type name backing this kind.
func (k Kind) Name() string { return k.name }

// KindOf resolves the kind for component type T.
func KindOf[T any]() Kind {
	return Kind{name: typeName(reflect.TypeFor[T]())}
}

// kindOf resolves the kind of a component value from its dynamic type.
func kindOf(c Component) Kind {
	return Kind{name: typeName(reflect.TypeOf(c))}
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "*" + typeName(t.Elem())
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// maxKinds bounds the distinct component kinds per App. Bits past the mask
// width would silently misfilter, so registration fails hard instead.
const maxKinds = 64

// schema assigns each component kind a stable bit position used by record
// and query masks.
type schema struct {
	kinds Cache[Kind]
}

func newSchema() *schema {
	return &schema{kinds: FactoryNewCache[Kind](maxKinds)}
}

// bitFor reports the kind's bit position, if the kind was ever registered.
func (s *schema) bitFor(k Kind) (uint32, bool) {
	idx, ok := s.kinds.GetIndex(k.name)
	if !ok {
		return 0, false
	}
	return uint32(idx), true
}

// registerKind returns the kind's bit position, assigning the next free one
// on first sight.
func (s *schema) registerKind(k Kind) (uint32, error) {
	if idx, ok := s.kinds.GetIndex(k.name); ok {
		return uint32(idx), nil
	}
	idx, err := s.kinds.Register(k.name, k)
	if err != nil {
		return 0, KindCapacityError{Capacity: maxKinds}
	}
	return uint32(idx), nil
}
