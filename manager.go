package tipview

// Manager maps host screens to their overlays. A host passes the same key
// (usually a pointer to its screen or game object) to bind and unbind.
// There is no global instance; the host's top-level controller owns one.
type Manager[K comparable] struct {
	overlays map[K]*Overlay
}

// NewManager returns an empty manager keyed by K.
func NewManager[K comparable]() *Manager[K] {
	return &Manager[K]{overlays: make(map[K]*Overlay)}
}

// Bind returns the overlay for key, creating it with the given screen size
// on first use. Binding an already bound key returns the existing overlay
// unchanged.
func (m *Manager[K]) Bind(key K, width, height int) *Overlay {
	if o, ok := m.overlays[key]; ok {
		return o
	}
	o := NewOverlay(width, height)
	m.overlays[key] = o
	logger.Debug("overlay bind", "overlays", len(m.overlays))
	return o
}

// Unbind releases the overlay for key along with all of its tips and
// pending callbacks. Unbinding an unbound key does nothing.
func (m *Manager[K]) Unbind(key K) {
	o, ok := m.overlays[key]
	if !ok {
		return
	}
	delete(m.overlays, key)
	o.Release()
	logger.Debug("overlay unbind", "overlays", len(m.overlays))
}

// UnbindAll releases every overlay.
func (m *Manager[K]) UnbindAll() {
	for key := range m.overlays {
		m.Unbind(key)
	}
}

// Lookup returns the overlay for key, or nil.
func (m *Manager[K]) Lookup(key K) *Overlay {
	return m.overlays[key]
}

// Len returns the number of bound overlays.
func (m *Manager[K]) Len() int { return len(m.overlays) }
