package location

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/handlers/v1/apierr"
	"github.com/jagannath-p-s/malabareco-sub001/internal/logging"
	"github.com/jagannath-p-s/malabareco-sub001/internal/service"
)

const entity = "location"

// Location is the API response model for a location.
type Location struct {
	ID        string `json:"id" doc:"Location UUID"`
	Name      string `json:"name" doc:"Location name"`
	Address   string `json:"address" doc:"Street address"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

type locationService interface {
	ListLocations(ctx context.Context) ([]service.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*service.Location, error)
	CreateLocation(ctx context.Context, input service.LocationInput) (*service.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, patch service.LocationPatch) (*service.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

// Handler serves /v1/location.
type Handler struct {
	LocationService locationService
}

func NewHandler(svc locationService) *Handler {
	return &Handler{LocationService: svc}
}

// IDInput identifies a location in the request path.
type IDInput struct {
	ID string `path:"id" doc:"Location UUID"`
}

// LocationOutput is the Huma output for a single location.
type LocationOutput struct {
	Body Location
}

// ListLocationsOutput is the Huma output for listing locations.
type ListLocationsOutput struct {
	Body struct {
		Locations []Location `json:"locations" doc:"Every location ordered by name"`
	}
}

// CreateLocationInput is the Huma input for creating a location.
type CreateLocationInput struct {
	Body service.LocationInput
}

// UpdateLocationInput is the Huma input for changing a location.
type UpdateLocationInput struct {
	IDInput
	Body service.LocationPatch
}

// Register registers the location endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/v1/location",
		Summary:     "List locations",
		Tags:        []string{"Locations"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/v1/location/{id}",
		Summary:     "Get location",
		Tags:        []string{"Locations"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-location",
		Method:        http.MethodPost,
		Path:          "/v1/location",
		Summary:       "Create location",
		Tags:          []string{"Locations"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-location",
		Method:      http.MethodPatch,
		Path:        "/v1/location/{id}",
		Summary:     "Update location",
		Description: "Changes the given fields and leaves the rest as they are.",
		Tags:        []string{"Locations"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-location",
		Method:        http.MethodDelete,
		Path:          "/v1/location/{id}",
		Summary:       "Delete location",
		Description:   "Fails with 409 while stock entries still reference the location.",
		Tags:          []string{"Locations"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

func toLocation(l *service.Location) Location {
	return Location{
		ID:        l.ID.String(),
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListLocationsOutput, error) {
	locations, err := h.LocationService.ListLocations(ctx)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}

	logging.GetLogData(ctx).AddData("locationCount", len(locations))

	out := &ListLocationsOutput{}
	out.Body.Locations = make([]Location, len(locations))
	for i := range locations {
		out.Body.Locations[i] = toLocation(&locations[i])
	}
	return out, nil
}

func (h *Handler) get(ctx context.Context, input *IDInput) (*LocationOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	l, err := h.LocationService.GetLocation(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return &LocationOutput{Body: toLocation(l)}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateLocationInput) (*LocationOutput, error) {
	l, err := h.LocationService.CreateLocation(ctx, input.Body)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}

	logging.GetLogData(ctx).AddData("locationID", l.ID.String())
	return &LocationOutput{Body: toLocation(l)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateLocationInput) (*LocationOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	l, err := h.LocationService.UpdateLocation(ctx, id, input.Body)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return &LocationOutput{Body: toLocation(l)}, nil
}

func (h *Handler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.LocationService.DeleteLocation(ctx, id); err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return nil, nil
}
