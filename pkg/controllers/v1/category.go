package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

type CategoryEditable struct {
	Name  string `json:"name" example:"Groceries"` // Name of the category, unique per owner ignoring case
	Icon  string `json:"icon" example:"🛒"`         // Icon for display
	Color string `json:"color" example:"#22c55e"`  // Display color
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Icon:  editable.Icon,
		Color: editable.Color,
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetCategory(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List categories
// @Description	Returns all categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	ListResponse[models.Category]
// @Failure		500	{object}	httpError
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.store.ListCategories(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(categories))
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	Response[models.Category]
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	category, err := co.store.CreateCategory(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(category))
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response[models.Category]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	category, err := co.store.GetCategory(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(category))
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	Response[models.Category]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ID of the category"
// @Param			category	body		store.CategoryUpdate	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.CategoryUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	category, err := co.store.UpdateCategory(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(category))
}

// @Summary		Delete category
// @Description	Deletes a category. Categories that are used by transactions cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.store.DeleteCategory(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
