package commands

import (
	"errors"
	"strings"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"
)

var (
	ErrCreateTestimonialCommandIsNotConstructed = errors.New(
		"CreateTestimonialCommand must be created via NewCreateTestimonialCommand constructor",
	)
)

// CreateTestimonialCommand represents a customer review submission.
type CreateTestimonialCommand struct { //nolint:recvcheck //using for validation
	testimonialID kernel.UUID
	customerName  string
	rating        int
	comment       string

	guard guard.ConstructorGuard
}

// NewCreateTestimonialCommand creates a command to submit a review.
// The rating range is enforced by the testimonial aggregate.
func NewCreateTestimonialCommand(
	testimonialID kernel.UUID,
	customerName string,
	rating int,
	comment string,
) (CreateTestimonialCommand, error) {
	testimonialCommand := CreateTestimonialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		testimonialCommand.setTestimonialID(testimonialID),
		testimonialCommand.setContent(customerName, rating, comment),
	); err != nil {
		return CreateTestimonialCommand{}, err
	}

	return testimonialCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTestimonialCommand) Validate() error {
	return c.guard.Validate(ErrCreateTestimonialCommandIsNotConstructed)
}

// TestimonialID returns the identifier assigned to the new testimonial.
func (c CreateTestimonialCommand) TestimonialID() kernel.UUID {
	return c.testimonialID
}

// CustomerName returns the reviewer's name.
func (c CreateTestimonialCommand) CustomerName() string {
	return c.customerName
}

// Rating returns the star rating.
func (c CreateTestimonialCommand) Rating() int {
	return c.rating
}

// Comment returns the review text.
func (c CreateTestimonialCommand) Comment() string {
	return c.comment
}

func (c *CreateTestimonialCommand) setTestimonialID(testimonialID kernel.UUID) error {
	if err := testimonialID.Validate(); err != nil {
		return err
	}
	c.testimonialID = testimonialID
	return nil
}

func (c *CreateTestimonialCommand) setContent(customerName string, rating int, comment string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if strings.TrimSpace(comment) == "" {
		return errs.NewValueIsRequiredError("comment")
	}
	c.customerName = customerName
	c.rating = rating
	c.comment = comment
	return nil
}
