package session

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
)

// FiltersBody changes some filters. Absent fields keep their current value.
type FiltersBody struct {
	Search    *string `json:"search,omitempty" doc:"Free text search, empty clears"`
	StartDate *string `json:"startDate,omitempty" doc:"Inclusive start date as YYYY-MM-DD, empty clears"`
	EndDate   *string `json:"endDate,omitempty" doc:"Inclusive end date as YYYY-MM-DD, empty clears"`
	Type      *string `json:"type,omitempty" doc:"Transaction type or all"`
	Direction *string `json:"direction,omitempty" doc:"credit, debit or all"`
	Account   *string `json:"account,omitempty" doc:"Bank account UUID, cash or all"`
}

// PatchFiltersInput is the Huma input for changing filters.
type PatchFiltersInput struct {
	SessionPathInput
	Body FiltersBody
}

func (h *Handler) registerPatchFilters(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "patch-ledger-session-filters",
		Method:      http.MethodPatch,
		Path:        "/v1/ledger/session/{sessionID}/filters",
		Summary:     "Change filters",
		Description: "Applies the given filters and returns to the first page.",
		Tags:        []string{"Ledger"},
	}, h.patchFilters)
}

func (h *Handler) patchFilters(ctx context.Context, input *PatchFiltersInput) (*SessionOutput, error) {
	apply, err := parseFiltersBody(&input.Body)
	if err != nil {
		return nil, err
	}

	return h.update(input.SessionID, func(s *ledger.Session) (ledger.View, error) {
		f := s.View().Filter
		apply(&f)
		return s.SetFilters(f), nil
	})
}

func (h *Handler) registerResetFilters(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reset-ledger-session-filters",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/session/{sessionID}/filters/reset",
		Summary:     "Reset filters",
		Tags:        []string{"Ledger"},
	}, h.resetFilters)
}

func (h *Handler) resetFilters(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
	return h.update(input.SessionID, func(s *ledger.Session) (ledger.View, error) {
		return s.ResetFilters(), nil
	})
}

// parseFiltersBody validates every field up front and returns a function that
// applies them to a filter state.
func parseFiltersBody(body *FiltersBody) (func(*ledger.FilterState), error) {
	var changes []func(*ledger.FilterState)

	if body.Search != nil {
		search := *body.Search
		changes = append(changes, func(f *ledger.FilterState) { f.Search = search })
	}

	if body.StartDate != nil {
		start, err := parseDate(*body.StartDate, "startDate")
		if err != nil {
			return nil, err
		}
		changes = append(changes, func(f *ledger.FilterState) { f.Dates.Start = start })
	}

	if body.EndDate != nil {
		end, err := parseDate(*body.EndDate, "endDate")
		if err != nil {
			return nil, err
		}
		changes = append(changes, func(f *ledger.FilterState) { f.Dates.End = end })
	}

	if body.Type != nil {
		t, err := parseType(*body.Type)
		if err != nil {
			return nil, err
		}
		changes = append(changes, func(f *ledger.FilterState) { f.Type = t })
	}

	if body.Direction != nil {
		d, err := parseDirection(*body.Direction)
		if err != nil {
			return nil, err
		}
		changes = append(changes, func(f *ledger.FilterState) { f.Direction = d })
	}

	if body.Account != nil {
		a, err := parseAccount(*body.Account)
		if err != nil {
			return nil, err
		}
		changes = append(changes, func(f *ledger.FilterState) { f.Account = a })
	}

	return func(f *ledger.FilterState) {
		for _, change := range changes {
			change(f)
		}
	}, nil
}

func parseDate(raw, field string) (civil.Date, error) {
	if raw == "" {
		return civil.Date{}, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

func parseType(raw string) (ledger.Option[ledger.TransactionType], error) {
	if raw == "" || raw == wildcard {
		return ledger.Any[ledger.TransactionType](), nil
	}
	t, err := ledger.ParseTransactionType(raw)
	if err != nil {
		return ledger.Option[ledger.TransactionType]{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	return ledger.Only(t), nil
}

func parseDirection(raw string) (ledger.Option[ledger.Direction], error) {
	switch raw {
	case "", wildcard:
		return ledger.Any[ledger.Direction](), nil
	case string(ledger.DirectionCredit):
		return ledger.Only(ledger.DirectionCredit), nil
	case string(ledger.DirectionDebit):
		return ledger.Only(ledger.DirectionDebit), nil
	}
	return ledger.Option[ledger.Direction]{}, huma.NewError(http.StatusBadRequest, "invalid direction: must be credit, debit or all")
}

func parseAccount(raw string) (ledger.AccountFilter, error) {
	switch raw {
	case "", wildcard:
		return ledger.AnyAccount(), nil
	case cashAccount:
		return ledger.CashAccount(), nil
	}
	id, err := uuid.FromString(raw)
	if err != nil {
		return ledger.AccountFilter{}, huma.NewError(http.StatusBadRequest, "invalid account: must be a bank account UUID, cash or all", err)
	}
	return ledger.BankAccountFilter(id), nil
}
