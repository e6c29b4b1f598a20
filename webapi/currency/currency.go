package currency

import (
	"github.com/amirasaad/fxquery/pkg/app"
	"github.com/amirasaad/fxquery/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// HeaderAPIKey carries a per-request provider API key.
const HeaderAPIKey = "X-Api-Key"

// Routes registers HTTP routes for currency conversion.
func Routes(fiberApp *fiber.App, a *app.App) {
	group := fiberApp.Group("/api/conversions")
	group.Get("/", Convert(a))
}

// Convert returns a Fiber handler answering a free-text conversion query.
// @Summary Convert currencies from a free-text query
// @Description Interprets queries such as "100 usd to eur,gbp" and returns one result per target
// @Tags conversions
// @Produce json
// @Param q query string true "Query, e.g. 100 usd to eur"
// @Param favorites query string false "Comma-separated fallback targets"
// @Param X-Api-Key header string false "Rate provider API key"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /api/conversions [get]
func Convert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidateQuery[ConversionQuery](c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err, fiber.StatusBadRequest)
		}

		req := a.Request(input.Q, c.Get(HeaderAPIKey), input.Favorites)
		results := a.ConverterService.Handle(c.UserContext(), req)

		return common.SuccessResponseJSON(c, fiber.StatusOK, message(len(results)), ConversionResponse{
			Query:   input.Q,
			Results: results,
		})
	}
}

func message(n int) string {
	if n == 0 {
		return "Not a currency query"
	}
	return "Query handled"
}
