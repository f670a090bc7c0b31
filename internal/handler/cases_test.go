package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
	"github.com/osse101/PhoneTycoon_Go/mocks"
)

func TestHandleListCases(t *testing.T) {
	svc := mocks.NewMockLootboxService(t)
	svc.On("ListCases", mock.Anything).Return([]domain.CaseSummary{
		{ID: 1, Name: "Basic", Price: 50},
		{ID: 2, Name: "Premium", Price: 200},
	})

	w := serve(HandleListCases(svc), newRequest(t, http.MethodGet, "/cases", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"ok":true,"cases":[{"id":1,"name":"Basic","price":50},{"id":2,"name":"Premium","price":200}]}`,
		w.Body.String())
}

func TestHandleGetCaseOdds(t *testing.T) {
	tests := []struct {
		name           string
		param          string
		setupMock      func(*mocks.MockLootboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			param: "1",
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("GetCaseOdds", mock.Anything, 1).Return(&domain.CaseOdds{
					Case:    domain.CaseSummary{ID: 1, Name: "Basic", Price: 50},
					Chances: []domain.DropChance{{ItemID: "xiaomi_12", Name: "Xiaomi 12", Rarity: domain.RarityCommon, Percent: 100}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"percent":100`,
		},
		{
			name:           "Non numeric id",
			param:          "abc",
			setupMock:      func(m *mocks.MockLootboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidCaseID,
		},
		{
			name:  "Unknown case",
			param: "99",
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("GetCaseOdds", mock.Anything, 99).Return(nil, domain.ErrCaseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgCaseNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLootboxService(t)
			tt.setupMock(svc)

			req := withURLParam(newRequest(t, http.MethodGet, "/cases/"+tt.param+"/odds", nil, ""), "caseID", tt.param)
			w := serve(HandleGetCaseOdds(svc), req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleOpenCase(t *testing.T) {
	prize := domain.InventoryItem{ID: "inst-1", TemplateID: "iphone_13", Name: "iPhone 13", Rarity: domain.RarityUncommon}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockLootboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: OpenCaseRequest{CaseID: 1},
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("OpenCase", mock.Anything, testUserID, 1).Return(&lootbox.OpenCaseResult{Prize: prize, NewBalance: 950}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"newBalance":950`,
		},
		{
			name: "Legacy id field",
			body: `{"id":2}`,
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("OpenCase", mock.Anything, testUserID, 2).Return(&lootbox.OpenCaseResult{Prize: prize, NewBalance: 800}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"prize":{"id":"inst-1"`,
		},
		{
			name:           "Missing case id",
			body:           `{}`,
			setupMock:      func(m *mocks.MockLootboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"caseId":"This field is required"`,
		},
		{
			name: "Insufficient funds",
			body: OpenCaseRequest{CaseID: 2},
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("OpenCase", mock.Anything, testUserID, 2).Return(nil, fmt.Errorf("charge: %w", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughSignalsError,
		},
		{
			name: "Unknown case",
			body: OpenCaseRequest{CaseID: 42},
			setupMock: func(m *mocks.MockLootboxService) {
				m.On("OpenCase", mock.Anything, testUserID, 42).Return(nil, domain.ErrCaseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgCaseNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLootboxService(t)
			tt.setupMock(svc)

			w := serve(HandleOpenCase(svc), newRequest(t, http.MethodPost, "/cases/open", tt.body, testUserID))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRecentDrops(t *testing.T) {
	svc := mocks.NewMockEventlogService(t)
	svc.On("Recent", mock.Anything, DefaultHistoryLimit, event.CaseOpened).Return([]eventlog.Entry{
		{Seq: 7, Type: event.CaseOpened, UserID: "u1", CaseName: "Premium", ItemName: "iPhone 15 Pro Max", Rarity: domain.RarityLegendary},
	}, nil)

	w := serve(HandleRecentDrops(svc), newRequest(t, http.MethodGet, "/cases/drops", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"caseName":"Premium"`)
}

func TestHandleOpenCase_TraceAtDebugOnly(t *testing.T) {
	svc := mocks.NewMockLootboxService(t)
	svc.On("OpenCase", mock.Anything, testUserID, 1).Return(&lootbox.OpenCaseResult{
		Prize:      domain.InventoryItem{ID: "inst-2", Name: "Xiaomi 12", Rarity: domain.RarityCommon},
		NewBalance: 950,
	}, nil)

	buf := captureLogs(t)
	w := serve(HandleOpenCase(svc), newRequest(t, http.MethodPost, "/cases/open", OpenCaseRequest{CaseID: 1}, testUserID))
	require.Equal(t, http.StatusOK, w.Code)

	levels := logLevels(t, buf)
	assert.Empty(t, levels["INFO"])
	assert.Contains(t, levels["DEBUG"], LogMsgOpenHandled)
}
