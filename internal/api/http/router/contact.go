package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/api/http/handler"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

func (r *Router) registerContactRoutes(app *fiber.App, h *handler.ContactHandler, limit fiber.Handler) {
	for _, path := range []string{contactapi.SendEmailPath, contactapi.ContactSendPath} {
		if limit != nil {
			app.Post(path, limit, h.Submit)
			continue
		}
		app.Post(path, h.Submit)
	}
}
