package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"category_service/internal/domain"
	"category_service/pkg/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const categoryColumns = `id, name, description, is_active, created_at`

type sortColumn struct {
	name string
	text bool
}

// sqlCategorySortColumns whitelists the ORDER BY columns a search may use.
var sqlCategorySortColumns = map[string]sortColumn{
	"name":       {name: "name", text: true},
	"created_at": {name: "created_at"},
}

type CategorySQLRepository struct {
	db      *sql.DB
	dialect db.Dialect
	log     *logrus.Logger
}

var _ domain.CategoryRepository = (*CategorySQLRepository)(nil)

func NewCategorySQLRepository(database *sql.DB, dialect db.Dialect, logger *logrus.Logger) *CategorySQLRepository {
	return &CategorySQLRepository{
		db:      database,
		dialect: dialect,
		log:     logger,
	}
}

func (r *CategorySQLRepository) Insert(ctx context.Context, category *domain.Category) error {
	row := categoryToRow(category)
	query := r.dialect.Rebind(`INSERT INTO categories (` + categoryColumns + `) VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query, row.ID, row.Name, row.Description, row.IsActive, row.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.Warnf("Attempted to create category with duplicate id: %s", row.ID)
			return fmt.Errorf("category with id '%s' already exists", row.ID)
		}
		r.log.Errorf("Failed to create category '%s': %v", row.Name, err)
		return fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created successfully with ID: %s, Name: %s", row.ID, row.Name)
	return nil
}

func (r *CategorySQLRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warnf("Category with ID %s not found (malformed id)", id)
		return nil, domain.NewNotFoundError(id)
	}

	query := r.dialect.Rebind(`SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`)
	var row categoryRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %s not found", id)
			return nil, domain.NewNotFoundError(id)
		}
		r.log.Errorf("Failed to get category by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}

	category, err := CategoryModelMapper.ToEntity(row)
	if err != nil {
		r.log.Errorf("Failed to load category ID %s: %v", id, err)
		return nil, err
	}
	return category, nil
}

func (r *CategorySQLRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories`)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories, err := scanCategories(rows)
	if err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, err
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *CategorySQLRepository) Update(ctx context.Context, category *domain.Category) error {
	row := categoryToRow(category)
	if _, err := uuid.Parse(row.ID); err != nil {
		return domain.NewNotFoundError(row.ID)
	}

	query := r.dialect.Rebind(`UPDATE categories SET name = ?, description = ?, is_active = ?, created_at = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, row.Name, row.Description, row.IsActive, row.CreatedAt, row.ID)
	if err != nil {
		r.log.Errorf("Failed to update category ID %s: %v", row.ID, err)
		return fmt.Errorf("could not update category: %w", err)
	}
	if err := r.expectOneRow(result, row.ID); err != nil {
		return err
	}

	r.log.Infof("Category updated successfully with ID: %s", row.ID)
	return nil
}

func (r *CategorySQLRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewNotFoundError(id)
	}

	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM categories WHERE id = ?`), id)
	if err != nil {
		r.log.Errorf("Failed to delete category ID %s: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}
	if err := r.expectOneRow(result, id); err != nil {
		return err
	}

	r.log.Infof("Category deleted successfully with ID: %s", id)
	return nil
}

func (r *CategorySQLRepository) expectOneRow(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected for category ID %s: %v", id, err)
		return fmt.Errorf("could not confirm category change: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Category with ID %s not found", id)
		return domain.NewNotFoundError(id)
	}
	return nil
}

func (r *CategorySQLRepository) SortableFields() []string {
	return []string{"created_at", "name"}
}

// Search runs the filter as a case-insensitive LIKE on name, orders by a
// whitelisted column (created_at DESC otherwise) and pages with LIMIT/OFFSET.
// Rows with equal sort keys come back oldest first, then by id, so pages
// never overlap.
func (r *CategorySQLRepository) Search(ctx context.Context, params domain.SearchParams) (domain.CategorySearchResult, error) {
	var (
		where string
		args  []any
	)
	if f := params.Filter(); f != "" {
		where = ` WHERE ` + r.dialect.FoldExpr("name") + ` LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(r.dialect.FoldTerm(f))+"%")
	}

	var total int
	countQuery := r.dialect.Rebind(`SELECT COUNT(*) FROM categories` + where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Errorf("Failed to count categories: %v", err)
		return domain.CategorySearchResult{}, fmt.Errorf("could not count categories: %w", err)
	}

	order := r.orderBy(params.Sort(), params.SortDir())
	offset := (params.Page() - 1) * params.PerPage()
	pageQuery := r.dialect.Rebind(`SELECT ` + categoryColumns + ` FROM categories` + where +
		` ORDER BY ` + order + ` LIMIT ? OFFSET ?`)

	rows, err := r.db.QueryContext(ctx, pageQuery, append(args, params.PerPage(), offset)...)
	if err != nil {
		r.log.Errorf("Failed to search categories: %v", err)
		return domain.CategorySearchResult{}, fmt.Errorf("could not search categories: %w", err)
	}
	defer rows.Close()

	items, err := scanCategories(rows)
	if err != nil {
		r.log.Errorf("Error during categories search iteration: %v", err)
		return domain.CategorySearchResult{}, err
	}

	r.log.Infof("Search matched %d categories, returning %d", total, len(items))
	return domain.NewSearchResult(domain.SearchResultProps[*domain.Category]{
		Items:       items,
		Total:       total,
		CurrentPage: params.Page(),
		PerPage:     params.PerPage(),
		Sort:        params.Sort(),
		SortDir:     params.SortDir(),
		Filter:      params.Filter(),
	}), nil
}

func (r *CategorySQLRepository) orderBy(sortField, sortDir string) string {
	col, ok := sqlCategorySortColumns[sortField]
	if !ok {
		return "created_at DESC, id ASC"
	}
	expr := col.name
	if col.text {
		expr = r.dialect.TextOrderExpr(col.name)
	}
	order := expr + " " + strings.ToUpper(sortDir)
	if col.name != "created_at" {
		order += ", created_at ASC"
	}
	return order + ", id ASC"
}

func scanCategories(rows *sql.Rows) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for rows.Next() {
		var row categoryRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("could not scan category row: %w", err)
		}
		category, err := CategoryModelMapper.ToEntity(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// categoryRow is the stored shape of a Category.
type categoryRow struct {
	ID          string
	Name        string
	Description sql.NullString
	IsActive    bool
	CreatedAt   time.Time
}

func (row *categoryRow) dest() []any {
	return []any{&row.ID, &row.Name, &row.Description, &row.IsActive, &row.CreatedAt}
}

func categoryToRow(c *domain.Category) categoryRow {
	row := categoryRow{
		ID:        c.ID(),
		Name:      c.Name(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt().UTC(),
	}
	if d := c.Description(); d != nil {
		row.Description = sql.NullString{String: *d, Valid: true}
	}
	return row
}

type categoryModelMapper struct{}

// CategoryModelMapper rebuilds entities from stored rows.
var CategoryModelMapper categoryModelMapper

// ToEntity turns a validation failure into a LoadEntityError; any other
// failure is returned as is.
func (categoryModelMapper) ToEntity(row categoryRow) (*domain.Category, error) {
	props := domain.CategoryProps{
		Name:      row.Name,
		IsActive:  &row.IsActive,
		CreatedAt: &row.CreatedAt,
	}
	if row.Description.Valid {
		props.Description = &row.Description.String
	}

	category, err := domain.NewCategory(props, row.ID)
	if err != nil {
		var verr *domain.EntityValidationError
		if errors.As(err, &verr) {
			return nil, &domain.LoadEntityError{Errors: verr.Errors}
		}
		return nil, err
	}
	return category, nil
}
