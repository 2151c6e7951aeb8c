package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestProjectInputValidateAggregates(t *testing.T) {
	input := ProjectInput{}
	err := input.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty input")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(vErr.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %v", vErr.Errors)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Project title is required") || !strings.Contains(msg, "Project description is required") {
		t.Errorf("expected both messages aggregated, got %q", msg)
	}
}

func TestProjectInputValidateMissingTitleOnly(t *testing.T) {
	input := ProjectInput{Description: "x"}
	err := input.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Error() != "Project title is required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestProjectInputValidateCategory(t *testing.T) {
	input := ProjectInput{Title: "t", Description: "d", Category: "Desktop"}
	if err := input.Validate(); err == nil {
		t.Error("expected unknown category to fail")
	}

	for _, c := range []string{CategoryWebApp, CategoryAIRobots, CategoryPWA, CategoryOther, ""} {
		input.Category = c
		if err := input.Validate(); err != nil {
			t.Errorf("category %q should validate, got %v", c, err)
		}
	}
}

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject(&ProjectInput{Title: "Demo", Description: "desc"})

	if p.Category != CategoryWebApp {
		t.Errorf("expected default category %q, got %q", CategoryWebApp, p.Category)
	}
	if p.ImageURL != DefaultProjectImage {
		t.Errorf("expected placeholder image, got %q", p.ImageURL)
	}
	if p.TechStack == nil || len(p.TechStack) != 0 {
		t.Errorf("expected empty tech stack slice, got %#v", p.TechStack)
	}
	if p.Featured {
		t.Error("expected featured false by default")
	}
	if p.Order != 0 {
		t.Errorf("expected order 0, got %d", p.Order)
	}
	if p.ID.IsZero() || p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected id and timestamps set")
	}
}

func TestProjectUpdateMerge(t *testing.T) {
	p := NewProject(&ProjectInput{Title: "Demo", Description: "desc"})

	var update ProjectUpdate
	if err := json.Unmarshal([]byte(`{"featured":true}`), &update); err != nil {
		t.Fatal(err)
	}
	update.Apply(p)

	if !p.Featured {
		t.Error("expected featured true")
	}
	if p.Title != "Demo" {
		t.Errorf("expected title unchanged, got %q", p.Title)
	}
}

func TestProjectUpdateReplacesTechStack(t *testing.T) {
	p := NewProject(&ProjectInput{Title: "Demo", Description: "desc", TechStack: []string{"Go"}})

	var update ProjectUpdate
	if err := json.Unmarshal([]byte(`{"tech_stack":["React","MongoDB"]}`), &update); err != nil {
		t.Fatal(err)
	}
	update.Apply(p)

	if len(p.TechStack) != 2 || p.TechStack[0] != "React" {
		t.Errorf("expected tech stack replaced, got %v", p.TechStack)
	}
}

func TestProjectUpdateValidate(t *testing.T) {
	empty := ""
	bad := "Desktop"
	if err := (&ProjectUpdate{Title: &empty}).Validate(); err == nil {
		t.Error("expected empty title to fail")
	}
	if err := (&ProjectUpdate{Category: &bad}).Validate(); err == nil {
		t.Error("expected unknown category to fail")
	}
	if err := (&ProjectUpdate{}).Validate(); err != nil {
		t.Errorf("expected empty update to validate, got %v", err)
	}
}
