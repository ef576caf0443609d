package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saifmalkurdi/Flavor-Table/internal/api/metrics"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

// FavoriteHandler serves CRUD over the shared favorites collection.
type FavoriteHandler struct {
	favoriteService ports.FavoriteService
}

func NewFavoriteHandler(favoriteService ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /favorites.
//
// @Summary      List all favorites, newest first
// @Tags         favorites
// @Produce      json
// @Success      200  {array}  domain.Favorite
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.favoriteService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, favorites)
}

// Create handles POST /favorites.
//
// @Summary      Save a recipe as a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      favoriteRequest  true  "Favorite draft"
// @Success      201   {object}  domain.Favorite
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /favorites [post]
func (h *FavoriteHandler) Create(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.favoriteService.Create(c.Request().Context(), toDraft(req))
	if err != nil {
		metrics.FavoritesMutationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /favorites/:id.
//
// @Summary      Update a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Favorite id"
// @Param        body  body      favoriteRequest  true  "Favorite draft"
// @Success      200   {object}  domain.Favorite
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /favorites/{id} [put]
func (h *FavoriteHandler) Update(c echo.Context) error {
	id, err := favoriteID(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.favoriteService.Update(c.Request().Context(), id, toDraft(req))
	if err != nil {
		metrics.FavoritesMutationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /favorites/:id.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        id   path      int  true  "Favorite id"
// @Success      200  {object}  deleteFavoriteResponse
// @Failure      404  {object}  map[string]string
// @Router       /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	id, err := favoriteID(c)
	if err != nil {
		return err
	}

	deleted, err := h.favoriteService.Delete(c.Request().Context(), id)
	if err != nil {
		metrics.FavoritesMutationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, deleteFavoriteResponse{ID: deleted})
}

func favoriteID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid favorite id")
	}
	return id, nil
}

func toDraft(req favoriteRequest) ports.FavoriteDraft {
	return ports.FavoriteDraft{
		Title:        req.Title,
		Image:        req.Image,
		Instructions: req.Instructions,
		Ingredients:  req.Ingredients,
		ReadyIn:      req.ReadyIn,
	}
}
