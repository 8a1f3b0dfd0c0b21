package formation

import (
	"errors"
	"testing"

	"matchday-service/pkg/common"
)

func TestPlayerCount(t *testing.T) {
	cases := map[string]int{
		"5v5":   5,
		"7v7":   7,
		"9v9":   9,
		"11v11": 11,
	}

	for format, want := range cases {
		got, err := PlayerCount(format)
		if err != nil {
			t.Fatalf("PlayerCount(%s) returned error: %v", format, err)
		}
		if got != want {
			t.Errorf("PlayerCount(%s) = %d, want %d", format, got, want)
		}
	}
}

func TestPlayerCountInvalid(t *testing.T) {
	for _, format := range []string{"", "eleven", "v11", "0v0"} {
		if _, err := PlayerCount(format); !errors.Is(err, common.ErrUnknownFormat) {
			t.Errorf("PlayerCount(%q) error = %v, want ErrUnknownFormat", format, err)
		}
	}
}

func TestSlotCountMatchesFormat(t *testing.T) {
	c := NewCatalog()

	for _, format := range c.Formats() {
		want, err := PlayerCount(format)
		if err != nil {
			t.Fatalf("PlayerCount(%s): %v", format, err)
		}

		formations, err := c.Formations(format)
		if err != nil {
			t.Fatalf("Formations(%s): %v", format, err)
		}
		if len(formations) == 0 {
			t.Fatalf("Expected at least one formation for %s", format)
		}

		for _, f := range formations {
			slots, err := c.Resolve(format, f.Name)
			if err != nil {
				t.Fatalf("Resolve(%s, %s): %v", format, f.Name, err)
			}
			if len(slots) != want {
				t.Errorf("Resolve(%s, %s) returned %d slots, want %d", format, f.Name, len(slots), want)
			}
		}
	}
}

func TestResolveUnknownFormationFallsBack(t *testing.T) {
	c := NewCatalog()

	def, err := c.Resolve("11v11", "")
	if err != nil {
		t.Fatalf("Resolve with empty name: %v", err)
	}

	got, err := c.Resolve("11v11", "9-0-1")
	if err != nil {
		t.Fatalf("Resolve with unknown name: %v", err)
	}

	if len(got) != len(def) {
		t.Fatalf("Fallback returned %d slots, default has %d", len(got), len(def))
	}
	for i := range got {
		if got[i].ID != def[i].ID {
			t.Errorf("Fallback slot %d = %s, default has %s", i, got[i].ID, def[i].ID)
		}
	}
}

func TestResolveUnknownFormat(t *testing.T) {
	c := NewCatalog()

	if _, err := c.Resolve("13v13", "4-4-2"); !errors.Is(err, common.ErrUnknownFormat) {
		t.Errorf("Resolve(13v13) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFiveASideFormation(t *testing.T) {
	c := NewCatalog()

	slots, err := c.Resolve("5v5", "2-1-1")
	if err != nil {
		t.Fatalf("Resolve(5v5, 2-1-1): %v", err)
	}
	if len(slots) != 5 {
		t.Fatalf("Expected 5 slots, got %d", len(slots))
	}

	goalkeepers := 0
	for _, s := range slots {
		if s.ID == "GK" {
			goalkeepers++
		}
	}
	if goalkeepers != 1 {
		t.Errorf("Expected exactly one GK slot, got %d", goalkeepers)
	}
}

func TestSlotIDsUniqueWithinFormation(t *testing.T) {
	c := NewCatalog()

	for _, format := range c.Formats() {
		formations, _ := c.Formations(format)
		for _, f := range formations {
			seen := make(map[string]bool)
			for _, s := range f.Slots {
				if seen[s.ID] {
					t.Errorf("%s %s: duplicate slot id %s", format, f.Name, s.ID)
				}
				seen[s.ID] = true
			}
		}
	}
}

func TestMirrorY(t *testing.T) {
	if got := MirrorY(6); got != 94 {
		t.Errorf("MirrorY(6) = %v, want 94", got)
	}
	if got := MirrorY(MirrorY(42)); got != 42 {
		t.Errorf("MirrorY is not an involution: got %v", got)
	}
}

func TestCoordinatesWithinPitch(t *testing.T) {
	c := NewCatalog()

	for _, format := range c.Formats() {
		formations, _ := c.Formations(format)
		for _, f := range formations {
			for _, s := range f.Slots {
				if s.X < 0 || s.X > 100 || s.Y < 0 || s.Y > 100 {
					t.Errorf("%s %s %s: coordinates (%v, %v) outside pitch", format, f.Name, s.ID, s.X, s.Y)
				}
			}
		}
	}
}
