package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// POST /api/send-email
// POST /api/contact/send
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contactapi.Submission
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	// req.RecipientEmail is ignored; the mailbox is fixed server-side.
	receipt, err := h.svc.Deliver(c.Context(), contact.DeliverRequest{
		Name:           req.Name,
		Company:        req.Company,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		WantsReply:     req.WantsReply,
		Phone:          req.Phone,
		IdempotencyKey: c.Get(contactapi.HeaderIdempotencyKey),
	})
	if err != nil {
		var inFlight contact.ErrInFlight
		if errors.As(err, &inFlight) {
			return conflict(c, err.Error())
		}
		switch contact.KindOf(err) {
		case contactapi.KindMalformedPayload:
			return badRequest(c, err.Error())
		case contactapi.KindTimeout:
			return gatewayTimeout(c, "Failed to send email: "+err.Error())
		default:
			return internalError(c, "Failed to send email: "+err.Error())
		}
	}

	return ok(c, contactapi.SuccessResponse{
		Message:         receipt.Message,
		DevelopmentMode: receipt.DevelopmentMode,
		Duplicate:       receipt.Duplicate,
	})
}
