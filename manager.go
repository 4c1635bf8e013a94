package lfucache

import "sync"

// Manager is a registry of named caches with per-name configuration.
// Registry access is guarded; the caches it hands out are still
// single-owner structures.
type Manager struct {
	caches   sync.Map
	configs  map[string]Config
	configMu sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		configs: make(map[string]Config),
	}
}

var GlobalManager = NewManager()

// RegisterCache records config for name; the cache itself is built lazily
// on first GetCache.
func (m *Manager) RegisterCache(name string, config Config) error {
	m.configMu.Lock()
	defer m.configMu.Unlock()

	if _, exists := m.configs[name]; exists {
		return newCacheError("register", name, ErrCacheExists)
	}

	m.configs[name] = config
	return nil
}

// GetCache returns the named cache, building it from its registered config
// (or DefaultConfig) on first use. The type parameters must match across
// all callers for one name.
func GetCache[K comparable, V any](m *Manager, name string) (*Cache[K, V], error) {
	if cached, ok := m.caches.Load(name); ok {
		if c, ok := cached.(*Cache[K, V]); ok {
			return c, nil
		}
		return nil, newCacheError("get", name, ErrTypeMismatch)
	}

	m.configMu.RLock()
	config, exists := m.configs[name]
	m.configMu.RUnlock()

	if !exists {
		config = DefaultConfig()
	}

	c := NewWithConfig[K, V](config)
	if actual, loaded := m.caches.LoadOrStore(name, c); loaded {
		// another goroutine stored first; use the existing instance
		if existing, ok := actual.(*Cache[K, V]); ok {
			return existing, nil
		}
		return nil, newCacheError("get", name, ErrTypeMismatch)
	}

	return c, nil
}

// GetCacheStats returns per-name telemetry for all materialized caches.
func (m *Manager) GetCacheStats() map[string]Stats {
	stats := make(map[string]Stats)

	m.caches.Range(func(key, value interface{}) bool {
		if name, ok := key.(string); ok {
			if c, ok := value.(interface{ Stats() Stats }); ok {
				stats[name] = c.Stats()
			}
		}
		return true
	})

	return stats
}

// RemoveCache drops the named cache and its config.
func (m *Manager) RemoveCache(name string) {
	m.caches.Delete(name)

	m.configMu.Lock()
	delete(m.configs, name)
	m.configMu.Unlock()
}

// RemoveAll drops every cache and config from the registry.
func (m *Manager) RemoveAll() {
	m.caches.Range(func(key, value interface{}) bool {
		m.caches.Delete(key)
		return true
	})

	m.configMu.Lock()
	m.configs = make(map[string]Config)
	m.configMu.Unlock()
}

func RegisterGlobalCache(name string, config Config) error {
	return GlobalManager.RegisterCache(name, config)
}

func GetGlobalCache[K comparable, V any](name string) (*Cache[K, V], error) {
	return GetCache[K, V](GlobalManager, name)
}

func GetGlobalCacheStats() map[string]Stats {
	return GlobalManager.GetCacheStats()
}
