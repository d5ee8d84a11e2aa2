package web

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"snippets/internal/domain"
)

// renderError writes err as {"error": message} with a matching status.
func renderError(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request: " + err.Error()})
}

// statusFor returns the HTTP status and a neutral message for err.
func statusFor(err error) (int, string) {
	var (
		fault     *domain.ProtocolFault
		transport *domain.TransportError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidOrMissingToken):
		return fiber.StatusUnauthorized, "The blog account is not signed in."
	case errors.Is(err, domain.ErrInvalidURL):
		return fiber.StatusBadRequest, "That doesn't look like a blog address."
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest, "The request is missing something the blog needs."
	case errors.Is(err, domain.ErrUnknownState):
		return fiber.StatusBadRequest, "This sign in link has expired. Please connect the blog again."
	case errors.Is(err, domain.ErrNoPublishingEndpoint):
		return fiber.StatusNotFound, "No publishing API was found on that blog."
	case errors.Is(err, domain.ErrUnsupported):
		return fiber.StatusNotImplemented, "The blog doesn't support this."
	case errors.Is(err, domain.ErrMalformedResponse):
		return fiber.StatusBadGateway, "The blog answered with something unexpected."
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "The blog took too long to answer."
	case errors.As(err, &fault):
		if fault.NotFound() {
			return fiber.StatusNotFound, fault.Message
		}
		return fiber.StatusBadGateway, fault.Message
	case errors.As(err, &transport):
		if transport.StatusCode == fiber.StatusUnauthorized || transport.StatusCode == fiber.StatusForbidden {
			return fiber.StatusUnauthorized, "The blog rejected the credentials."
		}
		return fiber.StatusBadGateway, "The blog couldn't be reached."
	default:
		return fiber.StatusInternalServerError, "Something went wrong. Please try again in a moment."
	}
}
