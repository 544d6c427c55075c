package commands

import (
	"context"

	"trattoria/internal/core/domain/model/testimonial"
)

// CreateTestimonialCommandHandler handles customer review submissions.
// New testimonials stay unapproved until moderation signs off on them.
type CreateTestimonialCommandHandler struct {
	uowFactory TestimonialUoWFactory
}

// NewCreateTestimonialCommandHandler creates a handler for review submissions.
func NewCreateTestimonialCommandHandler(uowFactory TestimonialUoWFactory) CreateTestimonialCommandHandler {
	return CreateTestimonialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h *CreateTestimonialCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTestimonialCommand,
) (*testimonial.Testimonial, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newTestimonial, err := testimonial.NewTestimonial(
		cmd.TestimonialID(),
		cmd.CustomerName(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TestimonialRepository().Add(ctx, newTestimonial); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newTestimonial, nil
}
