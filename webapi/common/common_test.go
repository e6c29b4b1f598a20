package common

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchQuery struct {
	Q string `query:"q" validate:"required"`
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Bad thing", errors.New("boom"), fiber.StatusTeapot)
	})
	app.Get("/default", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Oops", nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail?x=1", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, MIMEProblemJSON, resp.Header.Get(fiber.HeaderContentType))

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Bad thing", pd.Title)
	assert.Equal(t, "boom", pd.Detail)
	assert.Equal(t, fiber.StatusTeapot, pd.Status)
	assert.Equal(t, "/fail?x=1", pd.Instance)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/default", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, MIMEProblemJSON, resp.Header.Get(fiber.HeaderContentType))
}

func TestBindAndValidateQuery_FieldErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := BindAndValidateQuery[searchQuery](c); err != nil {
			return ProblemDetailsJSON(c, "Invalid query", err, fiber.StatusBadRequest)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, map[string]any{"Q": "required"}, pd.Errors)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/?q=usd", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
