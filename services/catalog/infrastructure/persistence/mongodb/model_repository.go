package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghuser/aquacatalog/pkg/database"
	catalogdomain "github.com/ghuser/aquacatalog/services/catalog/domain"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

const collectionName = "models"

// ModelRepository implements repositories.ModelRepository against MongoDB.
type ModelRepository struct {
	coll *mongo.Collection
}

// NewModelRepository returns a ModelRepository backed by the given database.
func NewModelRepository(db *database.Database) *ModelRepository {
	return &ModelRepository{coll: db.Collection(collectionName)}
}

// Insert persists a new Model and assigns the generated ObjectID.
func (r *ModelRepository) Insert(ctx context.Context, m *models.Model) error {
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("insert model: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert model: unexpected inserted id type %T", res.InsertedID)
	}
	m.ID = oid
	return nil
}

// FindAll retrieves every model sorted by createdAt descending.
func (r *ModelRepository) FindAll(ctx context.Context) ([]*models.Model, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find models: %w", err)
	}
	defer cur.Close(ctx)

	var out []*models.Model
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}
	return out, nil
}

// FindByID retrieves a model by its hex identifier. Returns ErrInvalidModelID
// for malformed ids and ErrModelNotFound for missing documents.
func (r *ModelRepository) FindByID(ctx context.Context, id string) (*models.Model, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var m models.Model
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogdomain.ErrModelNotFound
		}
		return nil, fmt.Errorf("query model: %w", err)
	}
	return &m, nil
}

// Update overwrites the mutable fields of an existing Model via $set.
// The _id and createdAt fields are never written.
func (r *ModelRepository) Update(ctx context.Context, m *models.Model) error {
	if m.ID.IsZero() {
		return catalogdomain.ErrInvalidModelID
	}

	fields := bson.M{
		"name":               m.Name,
		"brand":              m.Brand,
		"price":              m.Price,
		"imageUrl":           m.ImageURL,
		"assetId":            m.AssetID,
		"technologyType":     m.TechnologyType,
		"capacity":           m.Capacity,
		"warranty":           m.Warranty,
		"purificationStages": m.PurificationStages,
		"energyConsumption":  m.EnergyConsumption,
		"colorVariant":       m.ColorVariant,
		"weight":             m.Weight,
	}

	res, err := r.coll.UpdateByID(ctx, m.ID, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update model: %w", err)
	}
	if res.MatchedCount == 0 {
		return catalogdomain.ErrModelNotFound
	}
	return nil
}

// Delete removes a model by its hex identifier.
func (r *ModelRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// parseID converts a hex string to an ObjectID, mapping malformed input to
// the domain sentinel.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, catalogdomain.ErrInvalidModelID
	}
	return oid, nil
}
