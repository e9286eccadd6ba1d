package domain

import (
	"fmt"
	"time"
)

// RequesterProfile is the care profile attached to a requester account
// (wire name "pin"). Created after registration, mutated only by its owner.
type RequesterProfile struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	User             User      `json:"user"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	DateOfBirth      string    `json:"date_of_birth,omitempty"`
	EmergencyContact string    `json:"emergency_contact"`
	MedicalInfo      string    `json:"medical_info"`
	SpecialNeeds     string    `json:"special_needs"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *RequesterProfile) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("%w: requester profile missing id", ErrMalformedEntity)
	}
	if p.UserID == 0 {
		return fmt.Errorf("%w: requester profile missing user_id", ErrMalformedEntity)
	}
	return nil
}

// ResponderProfile is the representative profile attached to a responder
// account (wire name "csr_rep"). Belongs to exactly one company.
type ResponderProfile struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	User       User      `json:"user"`
	CompanyID  int64     `json:"company_id"`
	Company    Company   `json:"company"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *ResponderProfile) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("%w: responder profile missing id", ErrMalformedEntity)
	}
	if p.CompanyID == 0 {
		return fmt.Errorf("%w: responder profile missing company_id", ErrMalformedEntity)
	}
	return nil
}
