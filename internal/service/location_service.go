package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/operator/actions"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type locationReader interface {
	List(ctx context.Context) ([]*location.Location, error)
	FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
}

// LocationService handles location business logic. Writes are queued on the operator.
type LocationService struct {
	reader    locationReader
	processor actionProcessor
	validate  *validator.Validate
}

func NewLocationService(reader locationReader, processor actionProcessor) *LocationService {
	return &LocationService{
		reader:    reader,
		processor: processor,
		validate:  newValidator(),
	}
}

func (s *LocationService) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	locations := make([]Location, len(rows))
	for i, row := range rows {
		locations[i] = locationFromStorage(row)
	}
	return locations, nil
}

func (s *LocationService) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	row, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l := locationFromStorage(row)
	return &l, nil
}

// CreateLocation validates input, creates the location and returns it as stored.
func (s *LocationService) CreateLocation(ctx context.Context, input LocationInput) (*Location, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	action := &actions.CreateLocation{Name: input.Name, Address: input.Address}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetLocation(ctx, action.CreatedID)
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uuid.UUID, patch LocationPatch) (*Location, error) {
	trimPtr(patch.Name)
	trimPtr(patch.Address)
	if err := validateStruct(s.validate, patch); err != nil {
		return nil, err
	}

	action := &actions.UpdateLocation{
		ID: id,
		Update: location.LocationUpdate{
			Name:    omitFromPtr(patch.Name),
			Address: omitFromPtr(patch.Address),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetLocation(ctx, id)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteLocation{ID: id})
}
