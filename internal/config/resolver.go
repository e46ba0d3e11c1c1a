package config

import (
	"fmt"
	"os"

	"github.com/cheevodev/cheevo/internal/models"
)

// Store is the slice of the database the resolver needs.
type Store interface {
	GetUser() (*models.User, error)
	SaveUser(user *models.User) error
}

// LookupFunc reports an environment variable's value and whether it is
// defined, os.LookupEnv shaped so tests can inject their own environment.
type LookupFunc func(key string) (string, bool)

// Resolver layers the stored config row over environment fallbacks.
// Stored non-empty values are never overridden by the environment; the
// environment only fills values that were never set. Effective values are
// written back when they differ from what was stored, so the first call
// after exporting an env var locks that value in.
type Resolver struct {
	store  Store
	lookup LookupFunc
}

// NewResolver creates a resolver reading the real process environment.
func NewResolver(store Store) *Resolver {
	return NewResolverWithLookup(store, os.LookupEnv)
}

// NewResolverWithLookup creates a resolver with an injected environment.
func NewResolverWithLookup(store Store, lookup LookupFunc) *Resolver {
	return &Resolver{store: store, lookup: lookup}
}

// GetConfig returns the effective account configuration, persisting any
// newly filled values. Idempotent after the first call for a given
// environment.
func (r *Resolver) GetConfig() (*models.User, error) {
	stored, err := r.store.GetUser()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	effective := *stored
	if effective.SteamID == "" {
		effective.SteamID = r.firstNonEmpty(SteamIDEnvVars)
	}
	if effective.APIKey == "" {
		effective.APIKey = r.firstDefined(APIKeyEnvVars)
	}
	if effective.OpenRouterAPIKey == "" {
		effective.OpenRouterAPIKey = r.firstDefined(OpenRouterEnvVars)
	}

	if effective.SteamID != stored.SteamID ||
		effective.APIKey != stored.APIKey ||
		effective.OpenRouterAPIKey != stored.OpenRouterAPIKey {
		if err := r.store.SaveUser(&effective); err != nil {
			return nil, fmt.Errorf("persist config: %w", err)
		}
	}

	return &effective, nil
}

// Partial is a partial config update. Empty fields mean "keep existing";
// there is no way to clear a stored value back to empty through SetConfig.
type Partial struct {
	SteamID          string
	APIKey           string
	OpenRouterAPIKey string
}

// SetConfig overlays the partial update on the current effective config
// and writes the result.
func (r *Resolver) SetConfig(partial Partial) error {
	current, err := r.GetConfig()
	if err != nil {
		return err
	}

	if partial.SteamID != "" {
		current.SteamID = partial.SteamID
	}
	if partial.APIKey != "" {
		current.APIKey = partial.APIKey
	}
	if partial.OpenRouterAPIKey != "" {
		current.OpenRouterAPIKey = partial.OpenRouterAPIKey
	}

	if err := r.store.SaveUser(current); err != nil {
		return fmt.Errorf("persist config: %w", err)
	}
	return nil
}

// Require returns a MissingError when the fields needed for syncing are
// not configured, so callers can print targeted guidance.
func Require(user *models.User) error {
	missing := &MissingError{
		SteamID: !user.HasSteamID(),
		APIKey:  !user.HasAPIKey(),
	}
	if missing.SteamID || missing.APIKey {
		return missing
	}
	return nil
}

func (r *Resolver) firstNonEmpty(keys []string) string {
	for _, key := range keys {
		if value, ok := r.lookup(key); ok && value != "" {
			return value
		}
	}
	return ""
}

func (r *Resolver) firstDefined(keys []string) string {
	for _, key := range keys {
		if value, ok := r.lookup(key); ok {
			return value
		}
	}
	return ""
}
