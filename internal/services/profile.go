package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/portfolio-backend/internal/models"
)

// ProfileService manages the singleton profile document.
type ProfileService struct {
	collection *mongo.Collection
}

func NewProfileService(db *mongo.Database) *ProfileService {
	return &ProfileService{collection: db.Collection("profiles")}
}

// GetProfile returns the singleton profile, creating it with defaults when
// the collection is empty. Sequential calls always return the same document;
// no guard exists against a concurrent first-create race (single-admin scale).
func (s *ProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := s.collection.FindOne(ctx, bson.M{}).Decode(&profile)
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	seed := models.DefaultProfile()
	if _, err := s.collection.InsertOne(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// UpdateProfile applies a field-level merge to the singleton and returns the
// updated document. Arrays present in the update replace the stored arrays
// wholesale. Last write wins; there is no version field.
func (s *ProfileService) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	update.Apply(profile)

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateSkills replaces the skills array and returns the new value.
func (s *ProfileService) UpdateSkills(ctx context.Context, skills []models.Skill) ([]models.Skill, error) {
	if err := models.ValidateSkills(skills); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{"skills": skills, "updated_at": time.Now()}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": profile.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return skills, nil
}

// UpdateServices replaces the services array and returns the new value.
func (s *ProfileService) UpdateServices(ctx context.Context, services []models.Service) ([]models.Service, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{"services": services, "updated_at": time.Now()}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": profile.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return services, nil
}
