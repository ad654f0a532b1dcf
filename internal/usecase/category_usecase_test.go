package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"category_service/internal/domain"
	"category_service/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestUseCase() (CategoryUseCase, *repository.CategoryInMemoryRepository) {
	repo := repository.NewCategoryInMemoryRepository(testLogger())
	return NewCategoryUseCase(repo, testLogger()), repo
}

func ptr[T any](v T) *T { return &v }

// failingSearchRepo breaks Search and leaves the rest to the in-memory repository.
type failingSearchRepo struct {
	*repository.CategoryInMemoryRepository
}

func (failingSearchRepo) Search(context.Context, domain.SearchParams) (domain.CategorySearchResult, error) {
	return domain.CategorySearchResult{}, errors.New("connection reset")
}

func TestCreateCategory(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	out, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Movie"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Movie", out.Name)
	assert.Nil(t, out.Description)
	assert.True(t, out.IsActive)
	assert.False(t, out.CreatedAt.IsZero())

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, out.ID, stored[0].ID())

	out, err = uc.CreateCategory(ctx, CreateCategoryInput{Name: "Series", Description: ptr("some description"), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "some description", *out.Description)
	assert.False(t, out.IsActive)
}

func TestCreateCategoryRejectsInvalidName(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.CreateCategory(context.Background(), CreateCategoryInput{Name: strings.Repeat("a", 256)})
	var verr *domain.EntityValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors["name"], "name must be shorter than or equal to 255 characters")
	assert.Empty(t, storedCategories(t, repo))
}

func TestGetCategory(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.GetCategory(ctx, "fake id")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)

	created, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Movie"})
	require.NoError(t, err)

	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListCategories(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	out, err := uc.ListCategories(ctx, SearchInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
	assert.Equal(t, PaginationOutput{Total: 0, CurrentPage: 1, LastPage: 1, PerPage: 15}, out.PaginationOutput)

	for _, name := range []string{"c", "a", "b", "AAA", "AaA"} {
		_, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: name})
		require.NoError(t, err)
	}

	out, err = uc.ListCategories(ctx, SearchInput{Page: "1", PerPage: "2", Sort: "name", Filter: "a"})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "a", out.Items[0].Name)
	assert.Equal(t, "AAA", out.Items[1].Name)
	assert.Equal(t, PaginationOutput{Total: 3, CurrentPage: 1, LastPage: 2, PerPage: 2}, out.PaginationOutput)

	out, err = uc.ListCategories(ctx, SearchInput{Page: 2, PerPage: 2, Sort: "name", SortDir: "desc"})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "AAA", out.Items[0].Name)
	assert.Equal(t, 3, out.LastPage)
}

func TestListCategoriesInvalidInputFallsBack(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.ListCategories(context.Background(), SearchInput{Page: "fake", PerPage: -1, Sort: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 15, out.PerPage)
}

func TestListCategoriesWrapsRepositoryError(t *testing.T) {
	repo := failingSearchRepo{repository.NewCategoryInMemoryRepository(testLogger())}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.ListCategories(context.Background(), SearchInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not retrieve categories")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUpdateCategory(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.UpdateCategory(ctx, UpdateCategoryInput{ID: "fake id", Name: "fake"})
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "fake id", nf.ID)

	created, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Movie", Description: ptr("old")})
	require.NoError(t, err)

	out, err := uc.UpdateCategory(ctx, UpdateCategoryInput{ID: created.ID, Name: "Movie updated", IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Movie updated", out.Name)
	assert.Nil(t, out.Description)
	assert.False(t, out.IsActive)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)

	out, err = uc.UpdateCategory(ctx, UpdateCategoryInput{ID: created.ID, Name: "Movie", Description: ptr("new"), IsActive: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "new", *out.Description)
	assert.True(t, out.IsActive)

	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestUpdateCategoryRejectsInvalidName(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Movie"})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(ctx, UpdateCategoryInput{ID: created.ID, Name: ""})
	var verr *domain.EntityValidationError
	require.ErrorAs(t, err, &verr)

	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movie", got.Name)
}

func TestDeleteCategory(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	var nf *domain.NotFoundError
	require.ErrorAs(t, uc.DeleteCategory(ctx, "fake id"), &nf)

	created, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Movie"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(ctx, created.ID))
	assert.Empty(t, storedCategories(t, repo))
}

func storedCategories(t *testing.T, repo *repository.CategoryInMemoryRepository) []*domain.Category {
	t.Helper()
	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	return all
}
