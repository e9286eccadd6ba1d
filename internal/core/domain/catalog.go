package domain

import (
	"fmt"
	"time"
)

// Company is the organization a responder represents. Read-only from the
// client's perspective.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Company) Validate() error {
	if c.ID == 0 {
		return fmt.Errorf("%w: company missing id", ErrMalformedEntity)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: company missing name", ErrMalformedEntity)
	}
	return nil
}

// ServiceCategory classifies assistance requests. Flat lookup catalog.
type ServiceCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *ServiceCategory) Validate() error {
	if c.ID == 0 {
		return fmt.Errorf("%w: category missing id", ErrMalformedEntity)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: category missing name", ErrMalformedEntity)
	}
	return nil
}
