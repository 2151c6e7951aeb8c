package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-backend/internal/models"
)

// ErrProjectNotFound is returned when an id names no stored project. A
// malformed id also maps here: it cannot name a document either.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService manages the projects collection.
type ProjectService struct {
	collection *mongo.Collection
}

func NewProjectService(db *mongo.Database) *ProjectService {
	return &ProjectService{collection: db.Collection("projects")}
}

// EnsureIndexes creates the compound index backing the listing order.
func (s *ProjectService) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// List returns projects sorted by order ascending, then created_at descending.
// An empty or "All" category returns everything; otherwise the category must
// match exactly. The result is never nil.
func (s *ProjectService) List(ctx context.Context, category string) ([]models.Project, error) {
	filter := bson.M{}
	if category != "" && category != models.CategorySentinel {
		filter["category"] = category
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns one project by identity.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	var project models.Project
	if err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create validates the input and inserts a new project with defaults applied.
// Nothing is persisted when validation fails.
func (s *ProjectService) Create(ctx context.Context, input *models.ProjectInput) (*models.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	project := models.NewProject(input)
	if _, err := s.collection.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies a field-level merge to one project and returns the result.
func (s *ProjectService) Update(ctx context.Context, id string, update *models.ProjectUpdate) (*models.Project, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(project)

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project permanently. Deleting an unknown or already
// deleted id is ErrProjectNotFound, never a silent success.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProjectNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
