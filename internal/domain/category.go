package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CategoryProps are the mutable properties used to build a Category.
// Nil pointers take the entity defaults.
type CategoryProps struct {
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   *time.Time
}

// Category is the aggregate served by this service. Its identifier is fixed at
// construction; every other property goes through the mutators so the
// validation rules always hold.
type Category struct {
	id          string
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

type categoryRules struct {
	Name string `json:"name" validate:"required,max=255"`
}

// NewCategory validates props and returns a new Category. An empty id
// generates a fresh UUID v4.
func NewCategory(props CategoryProps, id string) (*Category, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, &InvalidUUIDError{Value: id}
	}

	c := &Category{
		id:          id,
		name:        props.Name,
		description: cloneString(props.Description),
		isActive:    true,
		createdAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if props.IsActive != nil {
		c.isActive = *props.IsActive
	}
	if props.CreatedAt != nil {
		c.createdAt = props.CreatedAt.UTC()
	}

	if err := validateCategory(c.name); err != nil {
		return nil, err
	}
	return c, nil
}

func validateCategory(name string) error {
	fields, err := validateStruct(categoryRules{Name: name})
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &EntityValidationError{Errors: fields}
	}
	return nil
}

func (c *Category) ID() string           { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() *string { return cloneString(c.description) }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Update replaces name and description. The category is left untouched when
// the new values are rejected.
func (c *Category) Update(name string, description *string) error {
	if err := validateCategory(name); err != nil {
		return err
	}
	c.name = name
	c.description = cloneString(description)
	return nil
}

func (c *Category) Activate()   { c.isActive = true }
func (c *Category) Deactivate() { c.isActive = false }

// Clone returns a deep copy so repositories never share state with callers.
func (c *Category) Clone() *Category {
	cp := *c
	cp.description = cloneString(c.description)
	return &cp
}

func (c *Category) ToMap() map[string]any {
	var description any
	if c.description != nil {
		description = *c.description
	}
	return map[string]any{
		"id":          c.id,
		"name":        c.name,
		"description": description,
		"is_active":   c.isActive,
		"created_at":  c.createdAt,
	}
}

func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
