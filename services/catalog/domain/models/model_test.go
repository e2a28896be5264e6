package models

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testModel() *Model {
	return &Model{
		ID:                 primitive.NewObjectID(),
		Name:               "AquaPure X1",
		Brand:              "AquaPure",
		Price:              12999.50,
		ImageURL:           "https://res.example.com/image/upload/v1/catalog/x1.jpg",
		AssetID:            "catalog/x1",
		TechnologyType:     "RO+UV",
		Capacity:           "8L",
		Warranty:           "2 years",
		PurificationStages: "7",
		EnergyConsumption:  "25W",
		ColorVariant:       "White",
		Weight:             "6.5kg",
		CreatedAt:          time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC),
	}
}

func TestSerialize(t *testing.T) {
	m := testModel()
	api := Serialize(m)

	if api.ID != m.ID.Hex() {
		t.Errorf("expected id %q, got %q", m.ID.Hex(), api.ID)
	}
	if len(api.ID) != 24 {
		t.Errorf("expected 24-char hex id, got %d chars", len(api.ID))
	}
	if api.CreatedAt != "2026-03-14T09:26:53.589Z" {
		t.Errorf("unexpected createdAt: %q", api.CreatedAt)
	}
	if api.Name != m.Name || api.Brand != m.Brand || api.Price != m.Price {
		t.Error("text fields not copied verbatim")
	}
	if api.ImageURL != m.ImageURL || api.AssetID != m.AssetID {
		t.Error("image fields not copied verbatim")
	}
	if api.TechnologyType != m.TechnologyType || api.Capacity != m.Capacity ||
		api.Warranty != m.Warranty || api.PurificationStages != m.PurificationStages ||
		api.EnergyConsumption != m.EnergyConsumption || api.ColorVariant != m.ColorVariant ||
		api.Weight != m.Weight {
		t.Error("detail fields not copied verbatim")
	}
}

func TestSerialize_NormalizesToUTC(t *testing.T) {
	m := testModel()
	loc := time.FixedZone("IST", 5*3600+1800)
	m.CreatedAt = time.Date(2026, 3, 14, 14, 56, 53, 0, loc)

	api := Serialize(m)
	if api.CreatedAt != "2026-03-14T09:26:53Z" {
		t.Errorf("expected UTC timestamp, got %q", api.CreatedAt)
	}
}

func TestSerialize_ZeroTimestamp(t *testing.T) {
	m := testModel()
	m.CreatedAt = time.Time{}

	if got := Serialize(m).CreatedAt; got != "" {
		t.Errorf("expected empty createdAt for zero time, got %q", got)
	}
}

func TestSerialize_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Serialize(testModel()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"id", "name", "brand", "price", "imageUrl", "assetId",
		"technologyType", "capacity", "warranty", "purificationStages",
		"energyConsumption", "colorVariant", "weight", "createdAt",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing json key %q", key)
		}
	}
}

func TestSerializeAll(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		first := testModel()
		first.Name = "first"
		second := testModel()
		second.Name = "second"

		out := SerializeAll([]*Model{first, second})
		if len(out) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out))
		}
		if out[0].Name != "first" || out[1].Name != "second" {
			t.Error("order not preserved")
		}
	})

	t.Run("empty input encodes as empty array", func(t *testing.T) {
		out := SerializeAll(nil)
		if out == nil {
			t.Fatal("expected non-nil slice")
		}

		data, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("expected [], got %s", data)
		}
	})
}
