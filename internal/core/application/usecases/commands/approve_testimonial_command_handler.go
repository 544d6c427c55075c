package commands

import (
	"context"

	"trattoria/internal/core/domain/model/testimonial"
)

// ApproveTestimonialCommandHandler handles moderation decisions on reviews.
type ApproveTestimonialCommandHandler struct {
	uowFactory TestimonialUoWFactory
}

// NewApproveTestimonialCommandHandler creates a handler for review moderation.
func NewApproveTestimonialCommandHandler(uowFactory TestimonialUoWFactory) ApproveTestimonialCommandHandler {
	return ApproveTestimonialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the moderation command.
// Returns errs.ObjectNotFoundError when the testimonial does not exist.
func (h *ApproveTestimonialCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveTestimonialCommand,
) (*testimonial.Testimonial, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	testimonialRepo := uow.TestimonialRepository()
	testimonialAggregate, err := testimonialRepo.Get(ctx, cmd.TestimonialID())
	if err != nil {
		return nil, err
	}

	testimonialAggregate.SetApproval(cmd.Approved())

	if err = testimonialRepo.Update(ctx, testimonialAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return testimonialAggregate, nil
}
