// Package assets resolves catalog model paths to mesh hierarchies and caches
// the results.
package assets

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/stance/internal/engine/scene"
)

// ErrNotFound is returned when no generator serves a model path.
var ErrNotFound = errors.New("mesh not found")

// Generator builds the mesh hierarchy for a model path.
type Generator func(path string) (*scene.Node, error)

type route struct {
	prefix string
	gen    Generator
}

// Manager hands out mesh instances by model path.
type Manager struct {
	routes []route
	cache  *Cache
	log    *zap.Logger
	mu     sync.RWMutex
}

// NewManager creates an empty manager. log may be nil.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		cache: NewCache(),
		log:   log,
	}
}

// Register serves every path starting with prefix from gen.
// Routes are searched in reverse order (last registered = highest priority).
func (m *Manager) Register(prefix string, gen Generator) {
	m.mu.Lock()
	m.routes = append(m.routes, route{prefix: prefix, gen: gen})
	m.mu.Unlock()
}

// Mesh returns an instance of the model at path. The hierarchy and its
// materials are private to the caller; geometry is shared and must not be
// modified.
func (m *Manager) Mesh(path string) (*scene.Node, error) {
	if node, ok := m.cache.Get(path); ok {
		return node.Instance(), nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.routes) - 1; i >= 0; i-- {
		r := m.routes[i]
		if !strings.HasPrefix(path, r.prefix) {
			continue
		}
		node, err := r.gen(path)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", path, err)
		}
		m.cache.Set(path, node)
		m.log.Debug("mesh built", zap.String("path", path), zap.String("root", node.Name))
		return node.Instance(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all routes and cached meshes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache of mesh prototypes.
type Cache struct {
	data map[string]*scene.Node
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*scene.Node),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*scene.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return node, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, node *scene.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = node
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*scene.Node)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
