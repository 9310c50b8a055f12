package handler

import (
	"context"
	"log/slog"
	"net/http"

	"playlog/internal/delivery/api/response"
	"playlog/internal/domain/entity"
	"playlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const instructions = `Routes for testing
------------------

 == HTTP Methods ==

[GET]
/                -  This page
/sessions        -  Session list
/players         -  Players list
/games           -  Games list
/allusers        -  Restricted route visible only after successful login and access using valid bearer token
/search          -  Search player list using /search?searchterms=<PLAYER NAME> (Hint: try 'Annie', 'Gail', 'Tony' or 'Gabe')
/health          -  Liveness probe
/metrics         -  Prometheus metrics

[POST]
/register        -  Create new user with the following JSON format. { "username": "yourusername", "password": "yourpassword" }
/login           -  Login with credentials created in register. Copy the token returned on successful login and test using /allusers
/changepassword  -  Change password of current user using {"newPassword": "<yournewpassword>"} and a valid bearer token

[DELETE]
/delete/<ID>     -  Delete user with the given id. See /allusers for the list.
`

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only dataset routes.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Instructions lists the available routes.
func (h *CatalogHandler) Instructions(c echo.Context) error {
	return response.Text(c, http.StatusOK, instructions)
}

// ListSessions returns every play session
func (h *CatalogHandler) ListSessions(c echo.Context) error {
	return h.list(c, h.catalogUC.ListSessions)
}

// ListGames returns every game
func (h *CatalogHandler) ListGames(c echo.Context) error {
	return h.list(c, h.catalogUC.ListGames)
}

// ListPlayers returns every player
func (h *CatalogHandler) ListPlayers(c echo.Context) error {
	return h.list(c, h.catalogUC.ListPlayers)
}

// SearchPlayers matches players whose name contains the searchterms query value
func (h *CatalogHandler) SearchPlayers(c echo.Context) error {
	terms := c.QueryParam("searchterms")

	records, err := h.catalogUC.SearchPlayers(c.Request().Context(), terms)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, nonNil(records))
}

func (h *CatalogHandler) list(c echo.Context, fetch func(context.Context) ([]entity.Record, error)) error {
	records, err := fetch(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, nonNil(records))
}

// nonNil keeps empty results encoded as [] rather than null.
func nonNil(records []entity.Record) []entity.Record {
	if records == nil {
		return []entity.Record{}
	}

	return records
}
