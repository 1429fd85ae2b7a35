package types

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

const sampleDataset = `{
  "foods": {
    "cooked_rice": {
      "states": ["cooked"],
      "storages": ["room_temp", "refrigerated"],
      "shelf_life_hours": {
        "cooked": {"room_temp": 4, "refrigerated": 72}
      }
    }
  },
  "modifiers": {"reheated_once": 0.5},
  "sensory_flags": {"off_odor": "Unusual or sour smell"},
  "notes": {"disclaimer": "Estimates only."}
}`

func TestDatasetUnmarshal(t *testing.T) {
	var ds RulesDataset
	if err := json.Unmarshal([]byte(sampleDataset), &ds); err != nil {
		t.Fatal(err)
	}

	t.Run("foods", func(t *testing.T) {
		food, ok := ds.Foods["cooked_rice"]
		if !ok {
			t.Fatal("expected cooked_rice")
		}
		hours, ok := food.BaseHours("cooked", "refrigerated")
		if !ok || hours != 72 {
			t.Fatalf("expected 72 hours, got %v (ok=%v)", hours, ok)
		}
	})

	t.Run("modifier labels derived from keys", func(t *testing.T) {
		mod, ok := ds.Modifiers["reheated_once"]
		if !ok {
			t.Fatal("expected reheated_once")
		}
		if mod.Label != "Reheated Once" {
			t.Fatalf("expected label %q, got %q", "Reheated Once", mod.Label)
		}
		if mod.Factor != 0.5 {
			t.Fatalf("expected factor 0.5, got %v", mod.Factor)
		}
	})

	t.Run("sensory flags keep stored labels", func(t *testing.T) {
		flag, ok := ds.SensoryFlags["off_odor"]
		if !ok {
			t.Fatal("expected off_odor")
		}
		if flag.Label != "Unusual or sour smell" {
			t.Fatalf("unexpected label %q", flag.Label)
		}
	})

	t.Run("notes", func(t *testing.T) {
		if ds.Notes.Disclaimer != "Estimates only." {
			t.Fatalf("unexpected disclaimer %q", ds.Notes.Disclaimer)
		}
	})
}

func TestDatasetRoundTrip(t *testing.T) {
	var ds RulesDataset
	if err := json.Unmarshal([]byte(sampleDataset), &ds); err != nil {
		t.Fatal(err)
	}

	first, err := json.Marshal(ds)
	if err != nil {
		t.Fatal(err)
	}

	var reloaded RulesDataset
	if err := json.Unmarshal(first, &reloaded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ds, reloaded) {
		t.Fatal("reloaded dataset differs from original")
	}

	second, err := json.Marshal(reloaded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("serialization is not byte-for-byte reproducible")
	}
}

func TestBaseHoursMissingData(t *testing.T) {
	food := FoodEntry{
		States:   []string{"raw"},
		Storages: []string{"frozen"},
		ShelfLifeHours: map[string]map[string]float64{
			"raw": {"frozen": 2160},
		},
	}

	t.Run("missing state", func(t *testing.T) {
		if _, ok := food.BaseHours("cooked", "frozen"); ok {
			t.Fatal("expected missing data for unknown state")
		}
	})

	t.Run("missing storage", func(t *testing.T) {
		if _, ok := food.BaseHours("raw", "room_temp"); ok {
			t.Fatal("expected missing data for unknown storage")
		}
	})

	t.Run("undeclared state in table is tolerated", func(t *testing.T) {
		food.ShelfLifeHours["pickled"] = map[string]float64{"frozen": 10}
		hours, ok := food.BaseHours("pickled", "frozen")
		if !ok || hours != 10 {
			t.Fatalf("expected 10 hours, got %v (ok=%v)", hours, ok)
		}
	})
}

func TestLabelForKey(t *testing.T) {
	cases := map[string]string{
		"reheated_once":     "Reheated Once",
		"hot_humid_climate": "Hot Humid Climate",
		"plain":             "Plain",
	}
	for key, want := range cases {
		if got := LabelForKey(key); got != want {
			t.Fatalf("LabelForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestSortedKeyAccessors(t *testing.T) {
	ds := RulesDataset{
		Foods: map[string]FoodEntry{"b": {}, "a": {}, "c": {}},
	}
	got := ds.FoodKeys()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
