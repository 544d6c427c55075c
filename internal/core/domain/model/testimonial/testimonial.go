// Package testimonial implements the customer testimonial aggregate.
// Testimonials are submitted by customers with a 1-5 rating and are hidden
// from the public listing until staff approve them.
package testimonial

import (
	"errors"
	"strings"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
)

const (
	// MinRating is the lowest accepted star rating.
	MinRating = 1
	// MaxRating is the highest accepted star rating.
	MaxRating = 5
)

// ErrTestimonialIsNotConstructed is returned when a Testimonial was not
// created through NewTestimonial or RestoreTestimonial.
var ErrTestimonialIsNotConstructed = errors.New(
	"Testimonial must be created via NewTestimonial or RestoreTestimonial constructors")

// Testimonial is a customer review awaiting or holding staff approval.
type Testimonial struct {
	id           kernel.UUID
	customerName string
	rating       int
	comment      string
	approved     bool
	createdAt    time.Time

	isConstructed bool
}

// NewTestimonial creates an unapproved testimonial with validation.
func NewTestimonial(id kernel.UUID, customerName string, rating int, comment string) (*Testimonial, error) {
	t := &Testimonial{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setCustomerName(customerName),
		t.setRating(rating),
		t.setComment(comment),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTestimonial reconstructs a testimonial from persistence.
func RestoreTestimonial(id kernel.UUID, customerName string, rating int, comment string, approved bool, createdAt time.Time) (*Testimonial, error) {
	t, err := NewTestimonial(id, customerName, rating, comment)
	if err != nil {
		return nil, err
	}
	t.approved = approved
	t.createdAt = createdAt
	return t, nil
}

// Validate ensures the Testimonial was created through a factory method.
func (t *Testimonial) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTestimonialIsNotConstructed
	}
	return nil
}

// ID returns the testimonial's unique identifier.
func (t *Testimonial) ID() kernel.UUID { return t.id }

// CustomerName returns the reviewer's name.
func (t *Testimonial) CustomerName() string { return t.customerName }

// Rating returns the star rating between MinRating and MaxRating.
func (t *Testimonial) Rating() int { return t.rating }

// Comment returns the review text.
func (t *Testimonial) Comment() string { return t.comment }

// Approved reports whether staff approved the testimonial for display.
func (t *Testimonial) Approved() bool { return t.approved }

// CreatedAt returns when the testimonial was submitted.
func (t *Testimonial) CreatedAt() time.Time { return t.createdAt }

// SetApproval marks the testimonial as approved or revokes approval.
func (t *Testimonial) SetApproval(approved bool) {
	t.approved = approved
}

func (t *Testimonial) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Testimonial) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	t.customerName = customerName
	return nil
}

func (t *Testimonial) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	t.rating = rating
	return nil
}

func (t *Testimonial) setComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return errs.NewValueIsRequiredError("comment")
	}
	t.comment = comment
	return nil
}
