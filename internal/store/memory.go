package store

import (
	"sync"

	"github.com/metal-toolbox/cookiejar/internal/jar"
)

// Memory is a process-local cookie store.
type Memory struct {
	mu  sync.Mutex
	jar *jar.Jar

	// ReadErr and WriteErr, when set, are returned by Read and Write
	// instead of touching the jar.
	ReadErr  error
	WriteErr error
}

// NewMemory returns a Memory store seeded with the given aggregate string.
func NewMemory(seed string) *Memory {
	return &Memory{jar: jar.Parse(seed)}
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return "", accessError(m.ReadErr, "memory read")
	}

	return m.jar.String(), nil
}

func (m *Memory) Write(fragment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return accessError(m.WriteErr, "memory write")
	}

	m.jar.Apply(fragment)

	return nil
}
