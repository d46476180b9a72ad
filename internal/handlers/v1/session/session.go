package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/service"
)

// sessionRegistry is the part of service.SessionRegistry the handlers use.
type sessionRegistry interface {
	Create(ctx context.Context) (uuid.UUID, ledger.View, error)
	View(id uuid.UUID) (ledger.View, error)
	Update(id uuid.UUID, fn func(*ledger.Session) (ledger.View, error)) (ledger.View, error)
	Refresh(ctx context.Context, id uuid.UUID) (ledger.View, error)
	Close(id uuid.UUID) error
}

// Handler serves the ledger session endpoints under /v1/ledger/session.
type Handler struct {
	Sessions sessionRegistry
}

func NewHandler(sessions sessionRegistry) *Handler {
	return &Handler{Sessions: sessions}
}

// Register registers every ledger session endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	h.registerCreate(api)
	h.registerGet(api)
	h.registerClose(api)
	h.registerPatchFilters(api)
	h.registerResetFilters(api)
	h.registerSetPage(api)
	h.registerRefresh(api)
	h.registerDismissError(api)
}

// SessionPathInput identifies a session in the request path.
type SessionPathInput struct {
	SessionID string `path:"sessionID" doc:"Ledger session UUID"`
}

// SessionOutput is the Huma output carrying a session view.
type SessionOutput struct {
	Body SessionView
}

func parseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid sessionID", err)
	}
	return id, nil
}

func sessionError(err error) error {
	if errors.Is(err, service.ErrSessionNotFound) {
		return huma.Error404NotFound("ledger session not found")
	}
	return huma.NewError(http.StatusInternalServerError, "ledger session failed", err)
}

// update resolves the session in the path and applies fn to it.
func (h *Handler) update(raw string, fn func(*ledger.Session) (ledger.View, error)) (*SessionOutput, error) {
	id, err := parseSessionID(raw)
	if err != nil {
		return nil, err
	}

	view, err := h.Sessions.Update(id, fn)
	if err != nil {
		var statusErr huma.StatusError
		if errors.As(err, &statusErr) {
			return nil, err
		}
		return nil, sessionError(err)
	}
	return &SessionOutput{Body: newSessionView(id, view)}, nil
}
