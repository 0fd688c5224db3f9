package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory is a thread-safe in-memory ScenarioStore.
type Memory struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
	now       func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		scenarios: make(map[string]Scenario),
		now:       time.Now,
	}
}

func (m *Memory) Save(_ context.Context, s Scenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	if existing, ok := m.scenarios[s.ID]; ok {
		s.CreatedAt = existing.CreatedAt
	} else {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	// Copy the payload so callers can't mutate stored state.
	payload := make([]byte, len(s.Payload))
	copy(payload, s.Payload)
	s.Payload = payload

	m.scenarios[s.ID] = s
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.scenarios[id]
	if !ok {
		return Scenario{}, ErrScenarioNotFound
	}
	payload := make([]byte, len(s.Payload))
	copy(payload, s.Payload)
	s.Payload = payload
	return s, nil
}

func (m *Memory) List(_ context.Context) ([]Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Scenario, 0, len(m.scenarios))
	for _, s := range m.scenarios {
		payload := make([]byte, len(s.Payload))
		copy(payload, s.Payload)
		s.Payload = payload
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scenarios, id)
	return nil
}
