package charting_test

import (
	"errors"
	"testing"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"go.uber.org/zap"
)

// fakeHandle records lifecycle calls and can be made to fail or panic on
// release.
type fakeHandle struct {
	destroyed    int
	failRelease  bool
	panicRelease bool
}

func (h *fakeHandle) Destroy() error {
	h.destroyed++
	if h.panicRelease {
		panic("release blew up")
	}
	if h.failRelease {
		return errors.New("release failed")
	}
	return nil
}

func (h *fakeHandle) ToBase64Image() (string, error) {
	return "data:image/svg+xml;base64,Zm9v", nil
}

func TestRegistry_InstallReplacesAndReleasesPrevious(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())

	h1 := &fakeHandle{}
	h2 := &fakeHandle{}

	reg.Install(charting.SlotClients, h1)
	reg.Install(charting.SlotClients, h2)

	if h1.destroyed != 1 {
		t.Errorf("previous handle destroyed %d times, want 1", h1.destroyed)
	}
	if h2.destroyed != 0 {
		t.Errorf("new handle destroyed %d times, want 0", h2.destroyed)
	}
	got, ok := reg.Handle(charting.SlotClients)
	if !ok || got != charting.Handle(h2) {
		t.Error("slot should hold exactly the new handle")
	}
}

func TestRegistry_DestroyClearsSlotEvenWhenReleaseFails(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	h := &fakeHandle{failRelease: true}

	reg.Install(charting.SlotLeads, h)
	reg.Destroy(charting.SlotLeads)

	if h.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", h.destroyed)
	}
	if reg.IsActive(charting.SlotLeads) {
		t.Error("slot must be cleared even when release fails")
	}
}

func TestRegistry_DestroySurvivesReleasePanic(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	h := &fakeHandle{panicRelease: true}

	reg.Install(charting.SlotTasks, h)
	reg.Destroy(charting.SlotTasks)

	if reg.IsActive(charting.SlotTasks) {
		t.Error("slot must be cleared even when release panics")
	}
}

func TestRegistry_DestroyEmptySlotIsNoop(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	reg.Destroy(charting.SlotClients) // must not panic
	if reg.IsActive(charting.SlotClients) {
		t.Error("empty slot should stay inactive")
	}
}

func TestRegistry_DestroyAllRoundTrip(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	h1 := &fakeHandle{}
	h2 := &fakeHandle{failRelease: true}

	reg.Install(charting.SlotClients, h1)
	reg.Install(charting.SlotTasks, h2)

	reg.DestroyAll()

	if got := reg.ActiveSlots(); len(got) != 0 {
		t.Errorf("ActiveSlots after DestroyAll = %v, want empty", got)
	}
	if h1.destroyed != 1 || h2.destroyed != 1 {
		t.Errorf("releases attempted: h1=%d h2=%d, want 1 each", h1.destroyed, h2.destroyed)
	}

	// Idempotent on an already-empty registry.
	reg.DestroyAll()
	if got := reg.ActiveSlots(); len(got) != 0 {
		t.Errorf("second DestroyAll: ActiveSlots = %v", got)
	}
}

func TestRegistry_ActiveSlotsOrder(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	reg.Install(charting.SlotTasks, &fakeHandle{})
	reg.Install(charting.SlotClients, &fakeHandle{})

	got := reg.ActiveSlots()
	want := []charting.Slot{charting.SlotClients, charting.SlotTasks}
	if len(got) != len(want) {
		t.Fatalf("ActiveSlots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ActiveSlots[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegistry_InstallNilHandleJustClears(t *testing.T) {
	reg := charting.NewRegistry(zap.NewNop())
	h := &fakeHandle{}
	reg.Install(charting.SlotClients, h)
	reg.Install(charting.SlotClients, nil)

	if h.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", h.destroyed)
	}
	if reg.IsActive(charting.SlotClients) {
		t.Error("installing nil should leave the slot empty")
	}
}
