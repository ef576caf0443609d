package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

// RecipeHandler serves the provider-backed discovery endpoints. None of them
// require authentication.
type RecipeHandler struct {
	recipeService ports.RecipeService
}

func NewRecipeHandler(recipeService ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Search handles GET /recipes/search?ingredients=csv&limit=n.
//
// @Summary      Search recipes by available ingredients
// @Tags         recipes
// @Produce      json
// @Param        ingredients  query     string  true   "Comma-separated ingredient list"
// @Param        limit        query     int     false  "Result limit, clamped to [1,50] (default 10)"
// @Success      200          {array}   domain.RecipeSummary
// @Failure      400          {object}  map[string]string
// @Failure      502          {object}  map[string]string
// @Router       /recipes/search [get]
func (h *RecipeHandler) Search(c echo.Context) error {
	results, err := h.recipeService.SearchByIngredients(
		c.Request().Context(),
		c.QueryParam("ingredients"),
		c.QueryParam("limit"),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}

// Random handles GET /recipes/random.
//
// @Summary      Fetch one random recipe
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  domain.RandomRecipe
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /recipes/random [get]
func (h *RecipeHandler) Random(c echo.Context) error {
	recipe, err := h.recipeService.Random(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recipe)
}

// Detail handles GET /recipes/:id.
//
// @Summary      Fetch recipe detail
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Numeric recipe id"
// @Success      200  {object}  domain.RecipeDetail
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Detail(c echo.Context) error {
	detail, err := h.recipeService.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}
