package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
)

// PageBody moves to another page or changes the page size. A size change
// applies first and returns to the first page.
type PageBody struct {
	Index *int `json:"index,omitempty" doc:"Zero-based page index, clamped to the available pages"`
	Size  *int `json:"size,omitempty" doc:"Rows per page: 10, 25, 50 or 100"`
}

// SetPageInput is the Huma input for changing the page.
type SetPageInput struct {
	SessionPathInput
	Body PageBody
}

func (h *Handler) registerSetPage(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-ledger-session-page",
		Method:      http.MethodPut,
		Path:        "/v1/ledger/session/{sessionID}/page",
		Summary:     "Change page",
		Tags:        []string{"Ledger"},
	}, h.setPage)
}

func (h *Handler) setPage(ctx context.Context, input *SetPageInput) (*SessionOutput, error) {
	body := input.Body
	return h.update(input.SessionID, func(s *ledger.Session) (ledger.View, error) {
		view := s.View()
		if body.Size != nil {
			var err error
			view, err = s.SetPageSize(*body.Size)
			if errors.Is(err, ledger.ErrInvalidPageSize) {
				return view, huma.NewError(http.StatusBadRequest, "invalid size: must be 10, 25, 50 or 100", err)
			}
			if err != nil {
				return view, err
			}
		}
		if body.Index != nil {
			view = s.SetPage(*body.Index)
		}
		return view, nil
	})
}
