package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/luggagemoose/factbot/pkg/access"
	"github.com/luggagemoose/factbot/pkg/discord"
	"github.com/luggagemoose/factbot/pkg/router"
)

// Headers carrying the Ed25519 webhook signature.
const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"
)

// ErrorResponse is the JSON error body for rejected interactions.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleInteraction verifies the webhook signature, parses the
// interaction, and dispatches it. Status mapping: 401 for bad signatures,
// 403 for users off the allow-list, 400 for unroutable payloads, 500 for
// storage failures.
func (s *Server) handleInteraction(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(HeaderSignature)
	timestamp := c.Get(HeaderTimestamp)

	if !s.verifier.Verify(body, signature, timestamp) {
		return c.Status(fiber.StatusUnauthorized).SendString("Bad request signature.")
	}

	var in discord.Interaction
	if err := json.Unmarshal(body, &in); err != nil {
		s.logger.Warn("unparseable interaction body", "error", err)
		return jsonError(c, fiber.StatusBadRequest, "Unknown Type")
	}

	resp, err := s.router.Dispatch(c.Context(), &in)
	switch {
	case errors.Is(err, access.ErrDenied):
		return jsonError(c, fiber.StatusForbidden, "Invalid user access")

	case errors.Is(err, router.ErrUnknownType):
		return jsonError(c, fiber.StatusBadRequest, "Unknown Type")

	case err != nil:
		s.logger.Error("interaction failed", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Storage failure")
	}

	return respondJSON(c, fiber.StatusOK, resp)
}

// handleNotFound answers every unmatched route.
func (s *Server) handleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Not Found.")
}

// jsonError writes a structured error body with the given status.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return respondJSON(c, status, ErrorResponse{Error: message})
}

// respondJSON marshals body and writes it with an explicit UTF-8 JSON
// content type.
func respondJSON(c *fiber.Ctx, status int, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(status).Send(payload)
}
