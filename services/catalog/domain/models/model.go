package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model is the catalog aggregate: one purifier product with a hosted image.
type Model struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Brand              string             `bson:"brand"`
	Price              float64            `bson:"price"`
	ImageURL           string             `bson:"imageUrl"`
	AssetID            string             `bson:"assetId"`
	TechnologyType     string             `bson:"technologyType"`
	Capacity           string             `bson:"capacity"`
	Warranty           string             `bson:"warranty"`
	PurificationStages string             `bson:"purificationStages"`
	EnergyConsumption  string             `bson:"energyConsumption"`
	ColorVariant       string             `bson:"colorVariant"`
	Weight             string             `bson:"weight"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

// APIModel is the wire representation of a Model: the ObjectID becomes a hex
// string and the timestamp becomes ISO-8601 text. The asset ID rides along —
// both admin and public listings carry it.
type APIModel struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	ImageURL           string  `json:"imageUrl"`
	AssetID            string  `json:"assetId"`
	TechnologyType     string  `json:"technologyType"`
	Capacity           string  `json:"capacity"`
	Warranty           string  `json:"warranty"`
	PurificationStages string  `json:"purificationStages"`
	EnergyConsumption  string  `json:"energyConsumption"`
	ColorVariant       string  `json:"colorVariant"`
	Weight             string  `json:"weight"`
	CreatedAt          string  `json:"createdAt"`
}

// Serialize converts a stored Model to its wire form. Pure function: only the
// identifier and timestamp change representation, everything else is copied.
func Serialize(m *Model) APIModel {
	createdAt := ""
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return APIModel{
		ID:                 m.ID.Hex(),
		Name:               m.Name,
		Brand:              m.Brand,
		Price:              m.Price,
		ImageURL:           m.ImageURL,
		AssetID:            m.AssetID,
		TechnologyType:     m.TechnologyType,
		Capacity:           m.Capacity,
		Warranty:           m.Warranty,
		PurificationStages: m.PurificationStages,
		EnergyConsumption:  m.EnergyConsumption,
		ColorVariant:       m.ColorVariant,
		Weight:             m.Weight,
		CreatedAt:          createdAt,
	}
}

// SerializeAll maps a slice of stored Models to wire form, preserving order.
// Always returns a non-nil slice so listings encode as [] rather than null.
func SerializeAll(ms []*Model) []APIModel {
	out := make([]APIModel, 0, len(ms))
	for _, m := range ms {
		out = append(out, Serialize(m))
	}
	return out
}
