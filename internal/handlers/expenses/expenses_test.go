package expenses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/dto"
	"github.com/GlebRadaev/finboard/internal/service/expenseservice"
)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	router := chi.NewRouter()
	router.Get("/expenses", handler.ListExpenses)
	router.Post("/expenses", handler.CreateExpense)
	router.Get("/expenses/{id}", handler.GetExpense)
	router.Put("/expenses/{id}", handler.UpdateExpense)
	router.Delete("/expenses/{id}", handler.DeleteExpense)
	return router, service
}

var storedExpense = domain.Expense{
	ID:          "x1",
	Type:        domain.ExpenseTypeVehicle,
	RecipientID: "v1",
	Amount:      domain.NewAmount(150),
	Category:    "fuel",
	Date:        domain.NewTimestamp(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)),
}

func TestListExpenses(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().List(gomock.Any()).Return([]domain.Expense{storedExpense, {ID: "x2", Type: domain.ExpenseTypeEmployee}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.ExpenseResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, 150.0, body[0].Amount)
	require.NotNil(t, body[0].Date)
	assert.Nil(t, body[1].Date)
}

func TestGetExpense(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Found",
			id:   "x1",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), "x1").Return(&storedExpense, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "missing",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), "missing").Return(nil, expenseservice.ErrExpenseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			id:   "x1",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), "x1").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/expenses/"+tt.id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateExpense(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *domain.Expense) (*domain.Expense, error) {
			assert.Equal(t, "vehicle", e.Type)
			assert.Equal(t, domain.NewAmount(4200), e.Amount)
			assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), e.Date.Time)
			e.ID = "x9"
			return e, nil
		})

	body := `{"type":"vehicle","recipientId":"v1","amount":4200,"category":"fuel","date":"2024-05-03"}`
	r := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ExpenseResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "x9", resp.ID)
}

func TestCreateExpense_Errors(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, expenseservice.ErrInvalidExpense)

	r := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{"type":"office"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`[`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateExpense(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *domain.Expense) (*domain.Expense, error) {
			assert.Equal(t, "x1", e.ID)
			return e, nil
		})

	body := `{"type":"employee","recipientId":"e1","amount":40}`
	r := httptest.NewRequest(http.MethodPut, "/expenses/x1", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteExpense(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Delete(gomock.Any(), "x1").Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/expenses/x1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
