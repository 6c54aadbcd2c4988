package foreman

// StorageEvents carries optional callbacks fired while queued commands are
// applied, after the mutation they describe. Configure per App with
// WithStorageEvents.
type StorageEvents struct {
	OnSpawn   func(Entity)
	OnDespawn func(Entity)
}
