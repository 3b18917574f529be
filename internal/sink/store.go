package sink

import (
	"sort"
	"sync"

	"github.com/chestorix/dsmr-exporter/internal/models"
)

// gaugeStore хранит последнее значение каждого gauge.
type gaugeStore struct {
	gauges map[string]float64
	mu     sync.RWMutex
}

func newGaugeStore() *gaugeStore {
	return &gaugeStore{gauges: make(map[string]float64)}
}

func (s *gaugeStore) set(name string, value float64) {
	s.mu.Lock()
	s.gauges[name] = value
	s.mu.Unlock()
}

func (s *gaugeStore) get(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.gauges[name]
	return value, ok
}

func (s *gaugeStore) all() []models.GaugeUpdate {
	s.mu.RLock()
	gauges := make([]models.GaugeUpdate, 0, len(s.gauges))
	for name, value := range s.gauges {
		gauges = append(gauges, models.GaugeUpdate{Name: name, Value: value})
	}
	s.mu.RUnlock()

	sort.Slice(gauges, func(i, j int) bool {
		return gauges[i].Name < gauges[j].Name
	})
	return gauges
}
