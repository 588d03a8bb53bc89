package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBack(t *testing.T) {
	if IsValid("Not/AZone") {
		t.Fatal("expected invalid zone")
	}

	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone && loc != time.UTC {
		t.Fatalf("unexpected fallback location %s", loc)
	}
}

func TestDayBounds(t *testing.T) {
	start, err := StartOfDay("2025-03-10", "UTC")
	if err != nil {
		t.Fatalf("StartOfDay returned error: %v", err)
	}
	end, err := EndOfDay("2025-03-10", "UTC")
	if err != nil {
		t.Fatalf("EndOfDay returned error: %v", err)
	}

	if !start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %s", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("expected a 24h day, got %s", end.Sub(start))
	}

	if _, err := StartOfDay("10/03/2025", "UTC"); err == nil {
		t.Error("expected parse error for non ISO date")
	}
}
