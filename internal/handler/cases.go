package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
)

// OpenCaseRequest selects the case to open. "id" is accepted as an alias of
// "caseId" for older clients.
type OpenCaseRequest struct {
	CaseID int `json:"caseId" validate:"required_without=ID,gte=0"`
	ID     int `json:"id" validate:"gte=0"`
}

func (r OpenCaseRequest) caseID() int {
	if r.CaseID != 0 {
		return r.CaseID
	}
	return r.ID
}

// HandleListCases lists purchasable cases in catalog order
// @Summary List cases
// @Tags cases
// @Produce json
// @Success 200 {object} CasesResponse
// @Router /cases [get]
func HandleListCases(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases := svc.ListCases(r.Context())
		if cases == nil {
			cases = []domain.CaseSummary{}
		}
		respondJSON(w, http.StatusOK, CasesResponse{OK: true, Cases: cases})
	}
}

// HandleGetCaseOdds discloses the drop chances of one case
// @Summary Case drop rates
// @Tags cases
// @Produce json
// @Param caseID path int true "Case id"
// @Success 200 {object} CaseOddsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cases/{caseID}/odds [get]
func HandleGetCaseOdds(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := strconv.Atoi(chi.URLParam(r, "caseID"))
		if err != nil || caseID <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCaseID)
			return
		}

		odds, err := svc.GetCaseOdds(r.Context(), caseID)
		if err != nil {
			respondServiceError(w, r, "get case odds", err)
			return
		}

		respondJSON(w, http.StatusOK, CaseOddsResponse{OK: true, Odds: odds})
	}
}

// HandleOpenCase charges the case price and awards a random phone
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param Idempotency-Key header string false "Replays the first response when repeated"
// @Param request body OpenCaseRequest true "Case to open"
// @Success 200 {object} OpenCaseResponse
// @Failure 400 {object} ErrorResponse "Not enough signals or bad input"
// @Failure 404 {object} ErrorResponse "Unknown case"
// @Router /cases/open [post]
func HandleOpenCase(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
			return
		}

		res, err := svc.OpenCase(r.Context(), userID, req.caseID())
		if err != nil {
			respondServiceError(w, r, "open case", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgOpenHandled,
			"user_id", userID, "case_id", req.caseID(), "item", res.Prize.Name, "rarity", res.Prize.Rarity)
		respondJSON(w, http.StatusOK, OpenCaseResponse{OK: true, OpenCaseResult: *res})
	}
}

// HandleRecentDrops lists the latest case openings across all players
// @Summary Recent drops
// @Tags cases
// @Produce json
// @Param limit query int false "Max entries (default 50, max 200)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /cases/drops [get]
func HandleRecentDrops(svc eventlog.Service) http.HandlerFunc {
	return handleHistory(svc, "recent drops", event.CaseOpened)
}

func handleHistory(svc eventlog.Service, opName string, types ...event.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(w, r, DefaultHistoryLimit, MaxHistoryLimit)
		if !ok {
			return
		}

		entries, err := svc.Recent(r.Context(), limit, types...)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}

		respondJSON(w, http.StatusOK, HistoryResponse{OK: true, History: entries})
	}
}
