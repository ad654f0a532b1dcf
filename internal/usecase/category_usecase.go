package usecase

import (
	"context"
	"fmt"

	"category_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)
	GetCategory(ctx context.Context, id string) (CategoryOutput, error)
	ListCategories(ctx context.Context, input SearchInput) (ListCategoriesOutput, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (CategoryOutput, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error) {
	category, err := domain.NewCategory(domain.CategoryProps{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    input.IsActive,
	}, "")
	if err != nil {
		uc.log.Warnf("Use Case: Rejected category '%s': %v", input.Name, err)
		return CategoryOutput{}, err
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", category.Name())
	if err := uc.categoryRepo.Insert(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name(), err)
		return CategoryOutput{}, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %s", category.Name(), category.ID())
	return toCategoryOutput(category), nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (CategoryOutput, error) {
	uc.log.Infof("Use Case: Attempting to get category with ID %s", id)
	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %s: %v", id, err)
		return CategoryOutput{}, err
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %s", id)
	return toCategoryOutput(category), nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, input SearchInput) (ListCategoriesOutput, error) {
	params := domain.NewSearchParams(input.toMap())
	uc.log.WithFields(logrus.Fields{
		"page":     params.Page(),
		"per_page": params.PerPage(),
		"sort":     params.Sort(),
		"sort_dir": params.SortDir(),
		"filter":   params.Filter(),
	}).Info("Use Case: Searching categories")

	result, err := uc.categoryRepo.Search(ctx, params)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search categories: %v", err)
		return ListCategoriesOutput{}, fmt.Errorf("could not retrieve categories: %w", err)
	}

	items := make([]CategoryOutput, 0, len(result.Items))
	for _, c := range result.Items {
		items = append(items, toCategoryOutput(c))
	}

	uc.log.Infof("Use Case: Retrieved %d of %d categories", len(items), result.Total)
	return ListCategoriesOutput{
		Items:            items,
		PaginationOutput: toPaginationOutput(result),
	}, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (CategoryOutput, error) {
	uc.log.Infof("Use Case: Attempting to update category ID %s", input.ID)
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to find category ID %s for update: %v", input.ID, err)
		return CategoryOutput{}, err
	}

	if err := category.Update(input.Name, input.Description); err != nil {
		uc.log.Warnf("Use Case: Rejected update for category ID %s: %v", input.ID, err)
		return CategoryOutput{}, err
	}
	if input.IsActive != nil {
		if *input.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %s: %v", input.ID, err)
		return CategoryOutput{}, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %s", input.ID)
	return toCategoryOutput(category), nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %s", id)
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to find category ID %s for delete: %v", id, err)
		return err
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %s", id)
	return nil
}
