// internal/app/system/charting/registry.go
package charting

import (
	"sync"

	"go.uber.org/zap"
)

// Slot names one of the three fixed chart positions on the dashboard.
type Slot string

const (
	SlotClients Slot = "clients"
	SlotLeads   Slot = "leads"
	SlotTasks   Slot = "tasks"
)

// Slots returns the fixed slot names in display order.
func Slots() []Slot {
	return []Slot{SlotClients, SlotLeads, SlotTasks}
}

// Registry maps each slot to at most one live chart Handle.
//
// Install implicitly destroys the slot's previous handle, so a handle can
// never be orphaned by a replacement, and Destroy always clears the slot
// even when the handle's release fails; a failed release must never leave
// a dangling handle blocking the next creation.
//
// The registry is owned by the dashboard handler and shared across
// requests, so access is serialized with a mutex.
type Registry struct {
	mu    sync.Mutex
	slots map[Slot]Handle
	log   *zap.Logger
}

// NewRegistry creates an empty slot registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		slots: make(map[Slot]Handle, 3),
		log:   logger,
	}
}

// Install places a new handle in a slot, destroying any existing handle
// for that slot first.
func (r *Registry) Install(slot Slot, h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyLocked(slot)
	if h != nil {
		r.slots[slot] = h
	}
}

// Destroy releases the slot's handle, if any, and clears the slot. A
// release failure is logged, never propagated.
func (r *Registry) Destroy(slot Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyLocked(slot)
}

// DestroyAll releases every slot. Used on teardown.
func (r *Registry) DestroyAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slot := range r.slots {
		r.destroyLocked(slot)
	}
}

// IsActive reports whether a slot currently holds a live handle.
func (r *Registry) IsActive(slot Slot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.slots[slot]
	return ok
}

// ActiveSlots returns the slots that currently hold live handles, in
// display order.
func (r *Registry) ActiveSlots() []Slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Slot
	for _, slot := range Slots() {
		if _, ok := r.slots[slot]; ok {
			out = append(out, slot)
		}
	}
	return out
}

// Handle returns the live handle for a slot, if one is installed.
func (r *Registry) Handle(slot Slot) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.slots[slot]
	return h, ok
}

// destroyLocked releases and clears a slot. Callers must hold r.mu.
func (r *Registry) destroyLocked(slot Slot) {
	h, ok := r.slots[slot]
	if !ok {
		return
	}
	// Clear first: the slot must end up empty no matter what the
	// handle's release does.
	delete(r.slots, slot)

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Warn("chart handle release panicked",
					zap.String("slot", string(slot)),
					zap.Any("panic", rec))
			}
		}()
		if err := h.Destroy(); err != nil {
			r.log.Warn("chart handle release failed",
				zap.String("slot", string(slot)),
				zap.Error(err))
		}
	}()
}
