// ABOUTME: Profile manager with mtime-based auto reload of the resume file

package profile

import (
	"os"
	"sync"
	"time"

	"github.com/overhearhq/overhear/internal/log"
)

// NoProfile is the placeholder summary when no resume is available.
const NoProfile = "No profile information available"

// Manager loads the resume file and serves its summary, re-reading when the
// file's mtime changes.
type Manager struct {
	mu      sync.RWMutex
	path    string
	profile Profile
	modTime time.Time
	loaded  bool
}

// NewManager creates a manager over the configured resume path and performs
// the initial load. A missing file is not an error; Summary degrades to the
// placeholder.
func NewManager(path string) *Manager {
	m := &Manager{path: path}
	m.reload()
	return m
}

func (m *Manager) reload() {
	if m.path == "" {
		return
	}
	info, err := os.Stat(m.path)
	if err != nil {
		return
	}
	m.mu.RLock()
	unchanged := m.loaded && info.ModTime().Equal(m.modTime)
	m.mu.RUnlock()
	if unchanged {
		return
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		log.Warn("profile: reading %s: %v", m.path, err)
		return
	}

	p := ParseResume(string(data))
	m.mu.Lock()
	m.profile = p
	m.modTime = info.ModTime()
	m.loaded = true
	m.mu.Unlock()
	log.Debug("profile: loaded %s (%s)", m.path, p.Name)
}

// Summary returns the profile summary block, or the documented placeholder
// when no usable resume exists.
func (m *Manager) Summary() string {
	m.reload()
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.profile.Summary == "" {
		return NoProfile
	}
	return m.profile.Summary
}
