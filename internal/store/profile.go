package store

import (
	"context"
	"log/slog"
	"sync"

	"socialite/internal/core"
)

// Profile caches the signed-in user's own entity. Each successful fetch
// overwrites the whole value, no partial merging.
type Profile struct {
	Logger *slog.Logger
	API    core.ProfileAPI

	mu      sync.RWMutex
	profile core.Profile
	loaded  bool

	fence *fence
}

func (p *Profile) Init(_ context.Context) error {
	p.Logger = p.Logger.With("component", "store.Profile")
	p.ensure()
	return nil
}

func (p *Profile) ensure() {
	if p.fence == nil {
		p.fence = newFence()
	}
}

func (p *Profile) Refresh(ctx context.Context) error {
	p.ensure()
	seq := p.fence.begin("profile")

	profile, err := p.API.Profile(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.fence.commit("profile", seq) {
		return nil
	}

	p.profile = profile
	p.loaded = true
	return nil
}

func (p *Profile) Get() (core.Profile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.profile, p.loaded
}

// Clear drops the cached profile, used on sign-out.
func (p *Profile) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = core.Profile{}
	p.loaded = false
}
