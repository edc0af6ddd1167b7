// ABOUTME: Hot-reloadable configuration store handing out value snapshots
// ABOUTME: Reload swaps the whole record; in-flight requests keep their copy

package config

import "sync"

// Store owns the live configuration. Readers get copies, so a Reload (for
// example after a settings-dialog save) can never partially affect a
// request that already started.
type Store struct {
	mu        sync.RWMutex
	path      string
	rulesPath string
	cfg       *Config
	rules     string
}

// NewStore loads the configuration and rules files and returns a store over
// them. Load errors are construction failures.
func NewStore(cfgPath, rulesPath string) (*Store, error) {
	cfg, err := Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return &Store{
		path:      cfgPath,
		rulesPath: rulesPath,
		cfg:       cfg,
		rules:     LoadPromptRules(rulesPath),
	}, nil
}

// NewStaticStore wraps an already-built configuration, for callers that
// manage the files themselves (and for tests).
func NewStaticStore(cfg *Config, rules string) *Store {
	return &Store{cfg: cfg, rules: rules}
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cfg
}

// Assistant returns the current assistant settings by value.
func (s *Store) Assistant() Assistant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Assistant
}

// PromptRules returns the current custom rules text.
func (s *Store) PromptRules() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

// SetAssistant replaces the assistant settings, taking effect for
// subsequent calls only.
func (s *Store) SetAssistant(a Assistant) {
	s.mu.Lock()
	s.cfg.Assistant = a
	s.mu.Unlock()
}

// Reload re-reads both files. On error the previous configuration stays
// active.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	rules := LoadPromptRules(s.rulesPath)

	s.mu.Lock()
	s.cfg = cfg
	s.rules = rules
	s.mu.Unlock()
	return nil
}
