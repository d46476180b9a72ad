package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/operator/actions"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
)

type materialReader interface {
	List(ctx context.Context) ([]*material.Material, error)
	FindByID(ctx context.Context, id uuid.UUID) (*material.Material, error)
}

// MaterialService handles material business logic. Writes are queued on the operator.
type MaterialService struct {
	reader    materialReader
	processor actionProcessor
	validate  *validator.Validate
}

func NewMaterialService(reader materialReader, processor actionProcessor) *MaterialService {
	return &MaterialService{
		reader:    reader,
		processor: processor,
		validate:  newValidator(),
	}
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]Material, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	materials := make([]Material, len(rows))
	for i, row := range rows {
		materials[i] = materialFromStorage(row)
	}
	return materials, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*Material, error) {
	row, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m := materialFromStorage(row)
	return &m, nil
}

// CreateMaterial validates input, creates the material and returns it as stored.
func (s *MaterialService) CreateMaterial(ctx context.Context, input MaterialInput) (*Material, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Unit = strings.TrimSpace(input.Unit)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	action := &actions.CreateMaterial{Name: input.Name, Unit: input.Unit}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetMaterial(ctx, action.CreatedID)
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id uuid.UUID, patch MaterialPatch) (*Material, error) {
	trimPtr(patch.Name)
	trimPtr(patch.Unit)
	if err := validateStruct(s.validate, patch); err != nil {
		return nil, err
	}

	action := &actions.UpdateMaterial{
		ID: id,
		Update: material.MaterialUpdate{
			Name: omitFromPtr(patch.Name),
			Unit: omitFromPtr(patch.Unit),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetMaterial(ctx, id)
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteMaterial{ID: id})
}
