package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/crmventas/backend/internal/auth"
	"github.com/crmventas/backend/internal/logging"
)

type Deps struct {
	Schema    graphql.Schema
	JWTSecret []byte
	Logger    *slog.Logger
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/graphql", d.handleGraphQL)
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// handleGraphQL authenticates the request (a bad token leaves the context
// unauthenticated, it does not fail the request) and executes the operation.
func (d *Deps) handleGraphQL(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if claims := auth.ClaimsFromRequest(c.Request(), d.JWTSecret); claims != nil {
		ctx = auth.WithClaims(ctx, claims)
	}

	logger := d.Logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
	ctx = logging.IntoContext(ctx, logger)

	result := graphql.Do(graphql.Params{
		Schema:         d.Schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})
	if result.HasErrors() {
		logger.Warn("graphql operation failed", "errors", result.Errors)
	}

	return c.JSON(http.StatusOK, result)
}
