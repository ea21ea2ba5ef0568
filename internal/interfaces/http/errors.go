package http

import (
	"errors"
	"fmt"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
)

// Error codes of the JSON error body.
const (
	CodeInvalidBody  = "INVALID_BODY"
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeDatabase     = "DATABASE_ERROR"
	CodeInternal     = "INTERNAL"
)

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, CodeInvalidBody, "neplatné tělo požadavku")
}

// writeError translates a use case error into the HTTP response.
// 5xx details stay in the log and in Sentry.
func writeError(c *fiber.Ctx, err error) error {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return fail(c, fiber.StatusBadRequest, CodeValidation, validation.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, CodeValidation, "neplatný vstup")
	case errors.As(err, &notFound):
		return fail(c, fiber.StatusNotFound, CodeNotFound,
			fmt.Sprintf("Nenalezeno: %s s %s=%v.", notFound.Resource, notFound.Field, notFound.Value))
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, CodeNotFound, "záznam nenalezen")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, CodeDuplicate, "e-mail je již registrován")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, CodeDuplicate, "záznam již existuje")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, CodeConflict, "záznam je odkazován jinými daty")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "neplatné přihlašovací údaje")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, CodeForbidden, "nedostatečná oprávnění")
	}

	report(c, err)
	if errors.Is(err, domain.ErrDatabase) {
		return fail(c, fiber.StatusInternalServerError, CodeDatabase, "chyba při přístupu k databázi")
	}
	return fail(c, fiber.StatusInternalServerError, CodeInternal, "neočekávaná chyba serveru")
}

func report(c *fiber.Ctx, err error) {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals(RequestIDKey)).
		Msg("request failed")
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

// ErrorHandler is the fiber fallback for errors not handled by a handler
// such as unknown routes and recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			report(c, err)
		}
		return fail(c, fe.Code, statusCode(fe.Code), fe.Message)
	}
	return writeError(c, err)
}

func statusCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
		return CodeInvalidBody
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusForbidden:
		return CodeForbidden
	default:
		return CodeInternal
	}
}
