package shipping

import "sync"

// Store owns the only mutable reference to the settings record.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

func NewStore() *Store {
	return &Store{settings: DefaultSettings()}
}

// Get returns a copy; the city map is cloned so callers cannot mutate the
// stored record behind the lock.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Update shallow-merges the patch onto the settings and returns the result.
func (s *Store) Update(patch Patch) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.FreeShippingThreshold != nil {
		s.settings.FreeShippingThreshold = *patch.FreeShippingThreshold
	}
	if patch.StandardShipping != nil {
		s.settings.StandardShipping = *patch.StandardShipping
	}
	if patch.ExpressShipping != nil {
		s.settings.ExpressShipping = *patch.ExpressShipping
	}
	if patch.CityWiseShipping != nil {
		s.settings.CityWiseShipping = patch.CityWiseShipping
	}
	return s.snapshot()
}

// CostForCity resolves the city rate, falling back to the "other" entry and
// then the standard rate.
func (s *Store) CostForCity(city string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rate, ok := s.settings.CityWiseShipping[city]; ok {
		return rate
	}
	if rate, ok := s.settings.CityWiseShipping["other"]; ok {
		return rate
	}
	return s.settings.StandardShipping
}

func (s *Store) snapshot() Settings {
	out := s.settings
	out.CityWiseShipping = make(map[string]float64, len(s.settings.CityWiseShipping))
	for city, rate := range s.settings.CityWiseShipping {
		out.CityWiseShipping[city] = rate
	}
	return out
}
