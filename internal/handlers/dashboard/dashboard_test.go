package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finboard/internal/dto"
	"github.com/GlebRadaev/finboard/internal/export"
	"github.com/GlebRadaev/finboard/internal/finance"
	"github.com/GlebRadaev/finboard/internal/refresh"
	"github.com/GlebRadaev/finboard/internal/service/dashboardservice"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

var readyStatus = dashboardservice.Status{
	Ready:       true,
	Seq:         3,
	Trigger:     refresh.TriggerTimer,
	RefreshedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	Visible:     true,
}

func TestGetDashboard(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Dashboard(gomock.Any()).Return(&dashboardservice.Dashboard{
		Status: readyStatus,
		Totals: finance.Totals{TotalIncome: 1000, TotalBalance: 600},
		RecentTransactions: []finance.Transaction{
			{Kind: finance.KindBooking, Direction: finance.DirectionIn, ID: "b1", Amount: 1000},
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/finance/dashboard", nil)
	w := httptest.NewRecorder()
	handler.GetDashboard(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.DashboardResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Status.Ready)
	assert.Equal(t, "timer", body.Status.Trigger)
	require.NotNil(t, body.Status.RefreshedAt)
	assert.Nil(t, body.Status.ErrorAt)
	assert.Equal(t, 1000.0, body.Totals.TotalIncome)
	assert.Len(t, body.RecentTransactions, 1)
	assert.NotNil(t, body.RecentTaxRecords)
	assert.NotNil(t, body.Monthly)
}

func TestGetDashboard_EmptyListsAreArrays(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Dashboard(gomock.Any()).Return(&dashboardservice.Dashboard{})

	r := httptest.NewRequest(http.MethodGet, "/api/finance/dashboard", nil)
	w := httptest.NewRecorder()
	handler.GetDashboard(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recentTransactions":[]`)
	assert.Contains(t, w.Body.String(), `"monthly":[]`)
}

func TestGetTaxReport(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().TaxReport(gomock.Any(), "safari").Return(&dashboardservice.TaxReport{
		Status:  readyStatus,
		Query:   "safari",
		Records: []finance.TaxRecord{{ID: "b1", Name: "Safari", TotalTax: 280}},
		Totals:  finance.TaxTotals{Liability: 280},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/finance/taxes?q=safari", nil)
	w := httptest.NewRecorder()
	handler.GetTaxReport(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.TaxReportResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "safari", body.Query)
	assert.Len(t, body.Records, 1)
	assert.Equal(t, 280.0, body.Totals.Liability)
}

func TestExportTaxReport(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Workbook",
			prepareMock: func(service *MockService) {
				service.EXPECT().ExportTaxReport(gomock.Any(), "").Return([]byte("PK"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Export error",
			prepareMock: func(service *MockService) {
				service.EXPECT().ExportTaxReport(gomock.Any(), "").Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/finance/taxes/export", nil)
			w := httptest.NewRecorder()
			handler.ExportTaxReport(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
				assert.Contains(t, w.Header().Get("Content-Disposition"), "tax-report-")
				assert.Equal(t, "PK", w.Body.String())
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Refresh(gomock.Any())

	r := httptest.NewRequest(http.MethodPost, "/api/finance/refresh", nil)
	w := httptest.NewRecorder()
	handler.Refresh(w, r)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSetVisibility(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Hidden",
			body: `{"visible":false}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetVisible(gomock.Any(), false)
				service.EXPECT().Health(gomock.Any()).Return(dashboardservice.Status{Visible: false})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing field",
			body:         `{}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `visible`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPut, "/api/finance/visibility", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.SetVisibility(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestNotify(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted",
			body: `{"type":"booking.confirmed"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Notify(gomock.Any(), []byte(`{"type":"booking.confirmed"}`)).Return(true, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Malformed",
			body: `{`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(false, dashboardservice.ErrInvalidEvent)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "malformed event",
		},
		{
			name: "Unexpected error",
			body: `{}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(false, errors.New("boom"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Notify(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Health(gomock.Any()).Return(dashboardservice.Status{Error: "platform down", ErrorAt: time.Now()})

	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.Health(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.StatusDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.False(t, body.Ready)
	assert.Equal(t, "platform down", body.Error)
	assert.NotNil(t, body.ErrorAt)
}
