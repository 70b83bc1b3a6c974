package mocks

import (
	"errors"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// Env implements platform.Env from fixed values.
type Env struct {
	// Vars holds environment variables; missing keys read as "".
	Vars map[string]string
	// Home is returned by UserHomeDir unless HomeErr is set.
	Home    string
	HomeErr error
}

// NewEnv creates an Env rooted at home with no variables set.
func NewEnv(home string) *Env {
	return &Env{Vars: make(map[string]string), Home: home}
}

func (e *Env) Getenv(key string) string { return e.Vars[key] }

func (e *Env) UserHomeDir() (string, error) {
	if e.HomeErr != nil {
		return "", e.HomeErr
	}
	if e.Home == "" {
		return "", errors.New("$HOME is not defined")
	}
	return e.Home, nil
}

// Compile-time check that Env implements platform.Env.
var _ platform.Env = (*Env)(nil)
