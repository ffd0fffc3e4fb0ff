package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

func ok(c fiber.Ctx, body contactapi.SuccessResponse) error {
	body.RequestID, _ = middleware.RequestIDFromFiber(c)
	return c.Status(fiber.StatusOK).JSON(body)
}

func failure(c fiber.Ctx, status int, kind contactapi.Kind, msg string) error {
	rid, _ := middleware.RequestIDFromFiber(c)
	return c.Status(status).JSON(contactapi.ErrorResponse{Error: msg, Kind: kind, RequestID: rid})
}

func badRequest(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusBadRequest, contactapi.KindMalformedPayload, msg)
}

func gatewayTimeout(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusGatewayTimeout, contactapi.KindTimeout, msg)
}

func internalError(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusInternalServerError, contactapi.KindDeliveryProvider, msg)
}

// conflict answers a request whose idempotency key is still being sent.
func conflict(c fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderRetryAfter, "1")
	return failure(c, fiber.StatusConflict, contactapi.KindDeliveryProvider, msg)
}
