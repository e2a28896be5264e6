package handlers

import (
	"net/http"

	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
)

// modelFormFromRequest collects the model text fields from a parsed multipart
// form. Absent fields come back as empty strings and are stored verbatim.
func modelFormFromRequest(r *http.Request) appsvcs.ModelForm {
	return appsvcs.ModelForm{
		Name:               r.FormValue("name"),
		Price:              r.FormValue("price"),
		Brand:              r.FormValue("brand"),
		TechnologyType:     r.FormValue("technologyType"),
		Capacity:           r.FormValue("capacity"),
		Warranty:           r.FormValue("warranty"),
		PurificationStages: r.FormValue("purificationStages"),
		EnergyConsumption:  r.FormValue("energyConsumption"),
		ColorVariant:       r.FormValue("colorVariant"),
		Weight:             r.FormValue("weight"),
	}
}

// imageFromRequest extracts the optional "image" file part. Returns a nil
// upload when no file was attached, plus a cleanup func that is always safe
// to defer.
func imageFromRequest(r *http.Request) (*appsvcs.ImageUpload, func()) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, func() {}
	}
	if header.Filename == "" {
		_ = file.Close()
		return nil, func() {}
	}
	return &appsvcs.ImageUpload{Filename: header.Filename, File: file}, func() { _ = file.Close() }
}
