package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories
const (
	CategoryWebApp   = "Web App"
	CategoryAIRobots = "AI/Robotics"
	CategoryPWA      = "PWA"
	CategoryOther    = "Other"
	CategorySentinel = "All" // query sentinel, never stored
)

// DefaultProjectImage is used when no image URL is provided.
const DefaultProjectImage = "/placeholder-project.png"

// Project is a single portfolio entry. Projects reference nothing and are
// referenced by nothing; deletes need no cleanup.
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	TechStack   []string `bson:"tech_stack" json:"tech_stack"`
	ImageURL    string   `bson:"image_url" json:"image_url"`
	LiveLink    string   `bson:"live_link" json:"live_link"`
	RepoLink    string   `bson:"repo_link" json:"repo_link"`
	Featured    bool     `bson:"featured" json:"featured"`
	Order       int      `bson:"order" json:"order"` // manual sort key, ascending
}

// ValidCategory reports whether c is a storable category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWebApp, CategoryAIRobots, CategoryPWA, CategoryOther:
		return true
	}
	return false
}

// ProjectInput carries the fields accepted when creating a project.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	TechStack   []string `json:"tech_stack"`
	ImageURL    string   `json:"image_url"`
	LiveLink    string   `json:"live_link"`
	RepoLink    string   `json:"repo_link"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

// Validate aggregates all field-level problems so the admin sees every
// missing field at once, not just the first.
func (in *ProjectInput) Validate() error {
	var errs []string
	if in.Title == "" {
		errs = append(errs, "Project title is required")
	}
	if in.Description == "" {
		errs = append(errs, "Project description is required")
	}
	if in.Category != "" && !ValidCategory(in.Category) {
		errs = append(errs, "Invalid project category")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// NewProject builds a Project from validated input, applying defaults.
func NewProject(in *ProjectInput) *Project {
	now := time.Now()
	p := &Project{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		TechStack:   in.TechStack,
		ImageURL:    in.ImageURL,
		LiveLink:    in.LiveLink,
		RepoLink:    in.RepoLink,
		Featured:    in.Featured,
		Order:       in.Order,
	}
	if p.Category == "" {
		p.Category = CategoryWebApp
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.ImageURL == "" {
		p.ImageURL = DefaultProjectImage
	}
	return p
}

// ProjectUpdate carries a partial project update. Nil fields are left
// unchanged; tech_stack replaces the stored array wholesale when present.
type ProjectUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	TechStack   []string `json:"tech_stack"`
	ImageURL    *string  `json:"image_url"`
	LiveLink    *string  `json:"live_link"`
	RepoLink    *string  `json:"repo_link"`
	Featured    *bool    `json:"featured"`
	Order       *int     `json:"order"`
}

// Validate checks the fields present in the update.
func (u *ProjectUpdate) Validate() error {
	var errs []string
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "Project title is required")
	}
	if u.Description != nil && *u.Description == "" {
		errs = append(errs, "Project description is required")
	}
	if u.Category != nil && !ValidCategory(*u.Category) {
		errs = append(errs, "Invalid project category")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Apply merges the update into p.
func (u *ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.TechStack != nil {
		p.TechStack = u.TechStack
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.LiveLink != nil {
		p.LiveLink = *u.LiveLink
	}
	if u.RepoLink != nil {
		p.RepoLink = *u.RepoLink
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Order != nil {
		p.Order = *u.Order
	}
	p.UpdatedAt = time.Now()
}
