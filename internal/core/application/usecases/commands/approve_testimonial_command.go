package commands

import (
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/guard"
)

var (
	ErrApproveTestimonialCommandIsNotConstructed = errors.New(
		"ApproveTestimonialCommand must be created via NewApproveTestimonialCommand constructor",
	)
)

// ApproveTestimonialCommand represents a moderation decision on a review.
// Approval makes the review visible on the public site; revoking approval
// hides it again.
type ApproveTestimonialCommand struct { //nolint:recvcheck //using for validation
	testimonialID kernel.UUID
	approved      bool

	guard guard.ConstructorGuard
}

// NewApproveTestimonialCommand creates a command to set a testimonial's
// approval flag.
func NewApproveTestimonialCommand(testimonialID kernel.UUID, approved bool) (ApproveTestimonialCommand, error) {
	approveCommand := ApproveTestimonialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := approveCommand.setTestimonialID(testimonialID); err != nil {
		return ApproveTestimonialCommand{}, err
	}
	approveCommand.approved = approved

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveTestimonialCommand) Validate() error {
	return c.guard.Validate(ErrApproveTestimonialCommandIsNotConstructed)
}

// TestimonialID returns the identifier of the review to moderate.
func (c ApproveTestimonialCommand) TestimonialID() kernel.UUID {
	return c.testimonialID
}

// Approved returns the requested visibility.
func (c ApproveTestimonialCommand) Approved() bool {
	return c.approved
}

func (c *ApproveTestimonialCommand) setTestimonialID(testimonialID kernel.UUID) error {
	if err := testimonialID.Validate(); err != nil {
		return err
	}
	c.testimonialID = testimonialID
	return nil
}
