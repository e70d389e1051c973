package cmap

// Range iterates over all key-value pairs.
//
// The callback returns false to stop iteration. Locks are taken shard by
// shard, so the view is not a consistent snapshot across shards.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for _, s := range m.shards {
		s.mu.RLock()
		for k, v := range s.items {
			if !fn(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}

// Keys returns all keys.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.Count())
	m.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// SetIfAbsent sets the value only if the key does not exist.
// Returns true if the value was set.
func (m *Map[V]) SetIfAbsent(key string, value V) bool {
	s := m.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; ok {
		return false
	}

	s.items[key] = value
	return true
}

// Pop removes a key and returns its value.
func (m *Map[V]) Pop(key string) (V, bool) {
	s := m.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.items[key]
	if ok {
		delete(s.items, key)
	}
	return val, ok
}

// Compute runs fn on the current value for key while holding the shard's
// write lock, so the read, the decision and the write form one atomic step.
//
// If fn returns a nil error the returned value is stored; otherwise the map is
// left untouched and the error is returned to the caller.
func (m *Map[V]) Compute(key string, fn func(value V, exists bool) (V, error)) error {
	s := m.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.items[key]
	next, err := fn(existing, exists)
	if err != nil {
		return err
	}
	s.items[key] = next
	return nil
}

// View runs fn on the current value for key under the shard's read lock.
// fn must not retain or mutate value.
func (m *Map[V]) View(key string, fn func(value V, exists bool)) {
	s := m.getShard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	fn(v, ok)
}
