package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/logging"
)

func (h *Handler) registerCreate(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-ledger-session",
		Method:        http.MethodPost,
		Path:          "/v1/ledger/session",
		Summary:       "Open ledger session",
		Description:   "Opens a ledger viewing session and loads the transactions. A failed load is reported in the error field.",
		Tags:          []string{"Ledger"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
}

func (h *Handler) create(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createSessionMs")
	id, view, err := h.Sessions.Create(ctx)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to open ledger session", err)
	}

	logData.AddData("sessionID", id.String())
	logData.AddData("transactionCount", view.TotalCount)
	return &SessionOutput{Body: newSessionView(id, view)}, nil
}

func (h *Handler) registerGet(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ledger-session",
		Method:      http.MethodGet,
		Path:        "/v1/ledger/session/{sessionID}",
		Summary:     "Get ledger session",
		Description: "Returns the current page, totals and filters of a ledger session.",
		Tags:        []string{"Ledger"},
	}, h.get)
}

func (h *Handler) get(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
	id, err := parseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	view, err := h.Sessions.View(id)
	if err != nil {
		return nil, sessionError(err)
	}
	return &SessionOutput{Body: newSessionView(id, view)}, nil
}

func (h *Handler) registerClose(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "close-ledger-session",
		Method:        http.MethodDelete,
		Path:          "/v1/ledger/session/{sessionID}",
		Summary:       "Close ledger session",
		Tags:          []string{"Ledger"},
		DefaultStatus: http.StatusNoContent,
	}, h.closeSession)
}

func (h *Handler) closeSession(ctx context.Context, input *SessionPathInput) (*struct{}, error) {
	id, err := parseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := h.Sessions.Close(id); err != nil {
		return nil, sessionError(err)
	}
	return nil, nil
}

func (h *Handler) registerRefresh(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-ledger-session",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/session/{sessionID}/refresh",
		Summary:     "Refresh ledger session",
		Description: "Reloads transactions and bank accounts. On failure the previous transactions stay and the error field is set.",
		Tags:        []string{"Ledger"},
	}, h.refresh)
}

func (h *Handler) refresh(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
	logData := logging.GetLogData(ctx)
	id, err := parseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("refreshSessionMs")
	view, err := h.Sessions.Refresh(ctx, id)
	stopTimer()
	if err != nil {
		return nil, sessionError(err)
	}

	logData.AddData("sessionID", id.String())
	logData.AddData("refreshFailed", view.Error != nil)
	return &SessionOutput{Body: newSessionView(id, view)}, nil
}

func (h *Handler) registerDismissError(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dismiss-ledger-session-error",
		Method:      http.MethodDelete,
		Path:        "/v1/ledger/session/{sessionID}/error",
		Summary:     "Dismiss refresh error",
		Tags:        []string{"Ledger"},
	}, h.dismissError)
}

func (h *Handler) dismissError(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
	return h.update(input.SessionID, func(s *ledger.Session) (ledger.View, error) {
		return s.DismissError(), nil
	})
}
