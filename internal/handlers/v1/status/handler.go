package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jagannath-p-s/malabareco-sub001/internal/logging"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

// StatusOutput is the Huma output for the status check.
type StatusOutput struct {
	Body struct {
		Status string `json:"status" doc:"ok when the database answers"`
	}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("pingMs")
	err := h.DB.Ping(ctx)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "database unavailable", err)
	}

	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
