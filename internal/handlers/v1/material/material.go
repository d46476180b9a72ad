package material

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

const entity = "material"

// Material is the API response model for a material.
type Material struct {
	ID        string `json:"id" doc:"Material UUID"`
	Name      string `json:"name" doc:"Material name"`
	Unit      string `json:"unit" doc:"Unit of measure"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

type materialService interface {
	ListMaterials(ctx context.Context) ([]service.Material, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*service.Material, error)
	CreateMaterial(ctx context.Context, input service.MaterialInput) (*service.Material, error)
	UpdateMaterial(ctx context.Context, id uuid.UUID, patch service.MaterialPatch) (*service.Material, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
}

// Handler serves /v1/material.
type Handler struct {
	MaterialService materialService
}

func NewHandler(svc materialService) *Handler {
	return &Handler{MaterialService: svc}
}

// IDInput identifies a material in the request path.
type IDInput struct {
	ID string `path:"id" doc:"Material UUID"`
}

// MaterialOutput is the Huma output for a single material.
type MaterialOutput struct {
	Body Material
}

// ListMaterialsOutput is the Huma output for listing materials.
type ListMaterialsOutput struct {
	Body struct {
		Materials []Material `json:"materials" doc:"Every material ordered by name"`
	}
}

// CreateMaterialInput is the Huma input for creating a material.
type CreateMaterialInput struct {
	Body service.MaterialInput
}

// UpdateMaterialInput is the Huma input for changing a material.
type UpdateMaterialInput struct {
	IDInput
	Body service.MaterialPatch
}

// Register registers the material endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-materials",
		Method:      http.MethodGet,
		Path:        "/v1/material",
		Summary:     "List materials",
		Tags:        []string{"Materials"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-material",
		Method:      http.MethodGet,
		Path:        "/v1/material/{id}",
		Summary:     "Get material",
		Tags:        []string{"Materials"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-material",
		Method:        http.MethodPost,
		Path:          "/v1/material",
		Summary:       "Create material",
		Tags:          []string{"Materials"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-material",
		Method:      http.MethodPatch,
		Path:        "/v1/material/{id}",
		Summary:     "Update material",
		Description: "Changes the given fields and leaves the rest as they are.",
		Tags:        []string{"Materials"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-material",
		Method:        http.MethodDelete,
		Path:          "/v1/material/{id}",
		Summary:       "Delete material",
		Description:   "Fails with 409 while stock entries still reference the material.",
		Tags:          []string{"Materials"},
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

func toMaterial(m *service.Material) Material {
	return Material{
		ID:        m.ID.String(),
		Name:      m.Name,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListMaterialsOutput, error) {
	materials, err := h.MaterialService.ListMaterials(ctx)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}

	logging.GetLogData(ctx).AddData("materialCount", len(materials))

	out := &ListMaterialsOutput{}
	out.Body.Materials = make([]Material, len(materials))
	for i := range materials {
		out.Body.Materials[i] = toMaterial(&materials[i])
	}
	return out, nil
}

func (h *Handler) get(ctx context.Context, input *IDInput) (*MaterialOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	m, err := h.MaterialService.GetMaterial(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return &MaterialOutput{Body: toMaterial(m)}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateMaterialInput) (*MaterialOutput, error) {
	m, err := h.MaterialService.CreateMaterial(ctx, input.Body)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}

	logging.GetLogData(ctx).AddData("materialID", m.ID.String())
	return &MaterialOutput{Body: toMaterial(m)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateMaterialInput) (*MaterialOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	m, err := h.MaterialService.UpdateMaterial(ctx, id, input.Body)
	if err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return &MaterialOutput{Body: toMaterial(m)}, nil
}

func (h *Handler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.MaterialService.DeleteMaterial(ctx, id); err != nil {
		return nil, apierr.FromService(err, entity)
	}
	return nil, nil
}
