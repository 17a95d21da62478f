package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestAttachLog(t *testing.T) {
	var out bytes.Buffer
	bus := NewEventBus()
	s := NewGameSession(DefaultConfig(), bus)
	AttachLog(bus, s, log.New(&out, "", 0))

	s.Fire()
	bus.Emit(Event{Type: EventVolleyFired, Tick: 7, Data: 24})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "session="+s.ID.String()) {
		t.Errorf("Expected session ID in %q", lines[0])
	}
	if !strings.Contains(lines[0], "tick=7 volley_fired bullets=24") {
		t.Errorf("Unexpected log line %q", lines[0])
	}
}
