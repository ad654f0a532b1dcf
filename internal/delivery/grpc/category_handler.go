package grpc

import (
	"context"
	"errors"
	"time"

	"category_service/internal/domain"
	"category_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type CategoryServer struct {
	categoryUseCase usecase.CategoryUseCase
	log             *logrus.Logger
}

var _ CategoryServiceServer = (*CategoryServer)(nil)

func NewCategoryServer(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryServer {
	return &CategoryServer{
		categoryUseCase: uc,
		log:             logger,
	}
}

func (h *CategoryServer) CreateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := stringField(req, "name")
	h.log.Infof("gRPC Handler: Received CreateCategory request: Name=%s", name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "Category name cannot be empty")
	}

	created, err := h.categoryUseCase.CreateCategory(ctx, usecase.CreateCategoryInput{
		Name:        name,
		Description: optionalStringField(req, "description"),
		IsActive:    optionalBoolField(req, "is_active"),
	})
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category created successfully: ID=%s", created.ID)
	return categoryToStruct(created)
}

func (h *CategoryServer) GetCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := stringField(req, "id")
	h.log.Infof("gRPC Handler: Received GetCategory request: ID=%s", id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "Invalid category ID")
	}

	category, err := h.categoryUseCase.GetCategory(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetCategory use case error for ID %s: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return categoryToStruct(category)
}

func (h *CategoryServer) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	h.log.Info("gRPC Handler: Received ListCategories request")

	raw := req.AsMap()
	output, err := h.categoryUseCase.ListCategories(ctx, usecase.SearchInput{
		Page:    raw["page"],
		PerPage: raw["per_page"],
		Sort:    raw["sort"],
		SortDir: raw["sort_dir"],
		Filter:  raw["filter"],
	})
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, status.Errorf(codes.Internal, "Failed to list categories: %v", err)
	}

	items := make([]any, 0, len(output.Items))
	for _, c := range output.Items {
		items = append(items, categoryToMap(c))
	}
	resp, err := structpb.NewStruct(map[string]any{
		"items":        items,
		"total":        output.Total,
		"current_page": output.CurrentPage,
		"last_page":    output.LastPage,
		"per_page":     output.PerPage,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to encode categories: %v", err)
	}

	h.log.Infof("gRPC Handler: Listed %d categories successfully", len(items))
	return resp, nil
}

func (h *CategoryServer) UpdateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := stringField(req, "id")
	name := stringField(req, "name")
	if id == "" || name == "" {
		return nil, status.Error(codes.InvalidArgument, "Valid category ID and name are required for update")
	}
	h.log.Infof("gRPC Handler: Received UpdateCategory request: ID=%s, NewName=%s", id, name)

	updated, err := h.categoryUseCase.UpdateCategory(ctx, usecase.UpdateCategoryInput{
		ID:          id,
		Name:        name,
		Description: optionalStringField(req, "description"),
		IsActive:    optionalBoolField(req, "is_active"),
	})
	if err != nil {
		h.log.Errorf("gRPC Handler: UpdateCategory use case error for ID %s: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category updated successfully: ID=%s", updated.ID)
	return categoryToStruct(updated)
}

func (h *CategoryServer) DeleteCategory(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id := stringField(req, "id")
	h.log.Infof("gRPC Handler: Received DeleteCategory request: ID=%s", id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "Invalid category ID")
	}

	if err := h.categoryUseCase.DeleteCategory(ctx, id); err != nil {
		h.log.Warnf("gRPC Handler: DeleteCategory use case error for ID %s: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category deleted successfully: ID=%s", id)
	return &emptypb.Empty{}, nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	var (
		notFound   *domain.NotFoundError
		validation *domain.EntityValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &validation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

func categoryToMap(c usecase.CategoryOutput) map[string]any {
	var description any
	if c.Description != nil {
		description = *c.Description
	}
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": description,
		"is_active":   c.IsActive,
		"created_at":  c.CreatedAt.Format(time.RFC3339Nano),
	}
}

func categoryToStruct(c usecase.CategoryOutput) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(categoryToMap(c))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to encode category: %v", err)
	}
	return s, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func optionalStringField(req *structpb.Struct, key string) *string {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil
	}
	return &s.StringValue
}

func optionalBoolField(req *structpb.Struct, key string) *bool {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return nil
	}
	return &b.BoolValue
}
