package places

import "testing"

func TestNearbyKnownCategory(t *testing.T) {
	locations := Nearby("medicine")
	if len(locations) != 3 {
		t.Fatalf("expected 3 pharmacy suggestions, got %d", len(locations))
	}
	for _, loc := range locations {
		if loc.Name == "" || loc.Distance == "" {
			t.Fatalf("incomplete location entry: %+v", loc)
		}
	}
}

func TestNearbyFallsBackToDefault(t *testing.T) {
	locations := Nearby("fitness")
	if len(locations) != 1 {
		t.Fatalf("expected the default list, got %d entries", len(locations))
	}
	if locations[0].Name != "General Store" {
		t.Fatalf("unexpected default entry: %+v", locations[0])
	}

	// Unknown categories get the same fallback.
	if got := Nearby("nonsense"); len(got) != 1 || got[0].ID != locations[0].ID {
		t.Fatalf("unexpected fallback for unknown category: %+v", got)
	}
}
