package repositories

import (
	"context"

	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

// ModelRepository is the persistence interface for the Model aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations must map a malformed identifier to ErrInvalidModelID
// before touching the store, and a missing document to ErrModelNotFound.
type ModelRepository interface {
	// Insert persists a new Model and assigns its store-generated ID.
	Insert(ctx context.Context, m *models.Model) error

	// FindAll retrieves every model sorted by creation time descending.
	FindAll(ctx context.Context) ([]*models.Model, error)

	// FindByID retrieves a model by its hex identifier.
	FindByID(ctx context.Context, id string) (*models.Model, error)

	// Update overwrites the mutable fields of an existing Model.
	// CreatedAt and ID are never written.
	Update(ctx context.Context, m *models.Model) error

	// Delete removes a model by its hex identifier.
	Delete(ctx context.Context, id string) error
}
