package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ghuser/aquacatalog/pkg/logger"
	catalogdomain "github.com/ghuser/aquacatalog/services/catalog/domain"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
	"github.com/ghuser/aquacatalog/services/catalog/domain/repositories"
)

// allowedExtensions are the accepted image filename extensions, compared
// case-insensitively.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ModelForm carries the text fields of a create/update request. Absent form
// fields arrive as empty strings and are stored verbatim; an omitted field on
// update therefore resets the stored value rather than preserving it.
type ModelForm struct {
	Name               string
	Price              string
	Brand              string
	TechnologyType     string
	Capacity           string
	Warranty           string
	PurificationStages string
	EnergyConsumption  string
	ColorVariant       string
	Weight             string
}

// ImageUpload is an image file attached to a create/update request.
type ImageUpload struct {
	Filename string
	File     io.Reader
}

// CatalogService orchestrates model CRUD across the record store and the
// asset host. The two calls in each mutation are independent steps with no
// atomicity guarantee; a crash between them can orphan a hosted asset.
type CatalogService struct {
	repo   repositories.ModelRepository
	assets repositories.AssetHost
	log    logger.Logger
}

// NewCatalogService returns a CatalogService wired with the given repository
// and asset host.
func NewCatalogService(repo repositories.ModelRepository, assets repositories.AssetHost, log logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, assets: assets, log: log}
}

// Create validates the form, uploads the image, and persists a new Model.
// The image is required.
func (s *CatalogService) Create(ctx context.Context, form ModelForm, image *ImageUpload) (*models.Model, error) {
	if image == nil || image.Filename == "" {
		return nil, catalogdomain.ErrMissingImage
	}
	if !allowedExtension(image.Filename) {
		return nil, catalogdomain.ErrUnsupportedFileType
	}

	price, err := validateForm(form)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.Upload(ctx, image.File, image.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrUploadFailed, err)
	}

	m := &models.Model{
		Name:               form.Name,
		Brand:              form.Brand,
		Price:              price,
		ImageURL:           asset.URL,
		AssetID:            asset.AssetID,
		TechnologyType:     form.TechnologyType,
		Capacity:           form.Capacity,
		Warranty:           form.Warranty,
		PurificationStages: form.PurificationStages,
		EnergyConsumption:  form.EnergyConsumption,
		ColorVariant:       form.ColorVariant,
		Weight:             form.Weight,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}
	return m, nil
}

// List returns all models, newest first. Serves both the admin and the
// public listing; no filtering, no pagination.
func (s *CatalogService) List(ctx context.Context) ([]*models.Model, error) {
	ms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return ms, nil
}

// Update overwrites an existing model's fields from the form. A replacement
// image is optional: when supplied, the new image is uploaded first and the
// previous asset is destroyed best-effort afterwards; when absent, the stored
// imageUrl/assetId pair is left untouched.
func (s *CatalogService) Update(ctx context.Context, id string, form ModelForm, image *ImageUpload) (*models.Model, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := validateForm(form)
	if err != nil {
		return nil, err
	}

	m.Name = form.Name
	m.Brand = form.Brand
	m.Price = price
	m.TechnologyType = form.TechnologyType
	m.Capacity = form.Capacity
	m.Warranty = form.Warranty
	m.PurificationStages = form.PurificationStages
	m.EnergyConsumption = form.EnergyConsumption
	m.ColorVariant = form.ColorVariant
	m.Weight = form.Weight

	if image != nil && image.Filename != "" {
		if !allowedExtension(image.Filename) {
			return nil, catalogdomain.ErrUnsupportedFileType
		}

		asset, err := s.assets.Upload(ctx, image.File, image.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", catalogdomain.ErrUploadFailed, err)
		}

		// Only destroy the old asset once the replacement is safely hosted.
		oldAssetID := m.AssetID
		m.ImageURL = asset.URL
		m.AssetID = asset.AssetID

		if oldAssetID != "" {
			if err := s.assets.Destroy(ctx, oldAssetID); err != nil {
				s.log.WarnContext(ctx, "old image delete failed", "asset_id", oldAssetID, "error", err)
			}
		}
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update model: %w", err)
	}
	return m, nil
}

// Delete removes a model. The hosted asset is destroyed best-effort first;
// the record is deleted regardless of the asset outcome.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if m.AssetID != "" {
		if err := s.assets.Destroy(ctx, m.AssetID); err != nil {
			s.log.WarnContext(ctx, "image delete failed", "asset_id", m.AssetID, "error", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// validateForm enforces the shared create/update rules: name and price are
// required and price must parse as a finite number. Returns the parsed price.
func validateForm(form ModelForm) (float64, error) {
	if form.Name == "" || form.Price == "" {
		return 0, catalogdomain.ErrMissingRequiredField
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, catalogdomain.ErrInvalidPrice
	}
	return price, nil
}

// allowedExtension reports whether the filename carries one of the accepted
// image extensions.
func allowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}
