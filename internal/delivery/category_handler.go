package delivery

import (
	"net/http"

	"category_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input usecase.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", input.Name, err)
		DomainErrorResponse(c, "Failed to create category", err)
		return
	}

	h.log.Infof("Category created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Category created successfully", created)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")

	category, err := h.useCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %s: %v", id, err)
		DomainErrorResponse(c, "Failed to retrieve category", err)
		return
	}

	h.log.Infof("Category retrieved successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var input usecase.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	input.ID = id

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), input)
	if err != nil {
		h.log.Errorf("Failed to update category ID %s: %v", id, err)
		DomainErrorResponse(c, "Failed to update category", err)
		return
	}

	h.log.Infof("Category updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete category ID %s: %v", id, err)
		DomainErrorResponse(c, "Failed to delete category", err)
		return
	}

	h.log.Infof("Category deleted successfully: ID %s", id)
	c.Status(http.StatusNoContent)
}

// ListCategories reads page, per_page, sort, sort_dir and filter from the
// query string. Bad values are not rejected; they fall back to defaults.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	input := usecase.SearchInput{
		Page:    queryValue(c, "page"),
		PerPage: queryValue(c, "per_page"),
		Sort:    queryValue(c, "sort"),
		SortDir: queryValue(c, "sort_dir"),
		Filter:  queryValue(c, "filter"),
	}

	output, err := h.useCase.ListCategories(c.Request.Context(), input)
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve categories: "+err.Error())
		return
	}

	h.log.Infof("Retrieved %d categories", len(output.Items))
	if len(output.Items) == 0 {
		SuccessResponse(c, http.StatusOK, "No categories found", output)
		return
	}
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", output)
}

func queryValue(c *gin.Context, key string) any {
	if v, ok := c.GetQuery(key); ok {
		return v
	}
	return nil
}
