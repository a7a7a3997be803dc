package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/engine"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

func testSnapshot(day int) engine.SimulationState {
	return engine.SimulationState{
		Day:  day,
		Date: time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Crop: engine.CropState{
			Type:      knowledge.CropRice,
			DVS:       0.2,
			BiomassKg: 450,
			StorageKg: 12,
			LAI:       1.1,
			Health:    88,
		},
		Soil:  engine.SoilState{MoisturePct: 61, NitrogenKg: 190},
		Funds: 950,
	}
}

func TestSeasonLogRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "season.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	const runID = "test-run"
	for day := 1; day <= 3; day++ {
		if err := db.RecordDay(runID, testSnapshot(day)); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	events := []engine.Event{
		{Day: 2, Category: "weather", Description: "rainy day"},
		{Day: 1, Category: "action", Description: "irrigated 30 mm"},
	}
	if err := db.RecordEvents(runID, events); err != nil {
		t.Fatalf("record events: %v", err)
	}

	rows, err := db.RecentDays(runID, 2)
	if err != nil {
		t.Fatalf("recent days: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("recent days returned %d rows, want 2", len(rows))
	}
	if rows[0].Day != 3 || rows[1].Day != 2 {
		t.Fatalf("expected newest-first rows, got days %d, %d", rows[0].Day, rows[1].Day)
	}
	if rows[0].Crop != "RICE" || rows[0].MoisturePct != 61 {
		t.Fatalf("row content mismatch: %+v", rows[0])
	}
}

func TestRecentDaysScopedToRun(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "season.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.RecordDay("run-a", testSnapshot(1)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := db.RecordDay("run-b", testSnapshot(1)); err != nil {
		t.Fatalf("record: %v", err)
	}

	rows, err := db.RecentDays("run-a", 10)
	if err != nil {
		t.Fatalf("recent days: %v", err)
	}
	if len(rows) != 1 || rows[0].RunID != "run-a" {
		t.Fatalf("run scoping broken: %+v", rows)
	}
}
