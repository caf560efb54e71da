package salaries

import (
	"encoding/json"
	"errors"
	"fmt"
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
	"github.com/GlebRadaev/finboard/internal/service/salaryservice"
)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	router := chi.NewRouter()
	router.Get("/salaries", handler.ListSalaries)
	router.Post("/salaries", handler.CreateSalary)
	router.Get("/salaries/{id}", handler.GetSalary)
	router.Put("/salaries/{id}", handler.UpdateSalary)
	router.Delete("/salaries/{id}", handler.DeleteSalary)
	return router, service
}

var storedSalary = domain.Salary{
	ID:            "s1",
	Employee:      domain.EmployeeRef{ID: "e1", Name: "Ann", Type: "driver"},
	BaseAmount:    domain.NewAmount(1000),
	Currency:      "INR",
	EffectiveFrom: domain.NewTimestamp(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	Components: []domain.Component{
		{Type: domain.ComponentEarning, Name: "bonus", Amount: domain.NewAmount(200)},
		{Type: domain.ComponentDeduction, Name: "pf", Percentage: domain.NewAmount(10)},
	},
}

func TestListSalaries(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Salaries",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Return([]domain.Salary{storedSalary}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Empty",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/salaries", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.SalaryResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.NotNil(t, body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetSalary(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Get(gomock.Any(), "s1").DoAndReturn(func(_ any, _ string) (*domain.Salary, error) {
		s := storedSalary
		return &s, nil
	})
	service.EXPECT().Get(gomock.Any(), "missing").Return(nil, salaryservice.ErrSalaryNotFound)

	r := httptest.NewRequest(http.MethodGet, "/salaries/s1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.SalaryResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "s1", body.ID)
	assert.Equal(t, 1100.0, body.NetAmount)
	assert.Equal(t, 88.0, body.PayrollTax)
	assert.Nil(t, body.EffectiveTo)
	require.Len(t, body.Components, 2)
	assert.Nil(t, body.Components[1].Amount)

	r = httptest.NewRequest(http.MethodGet, "/salaries/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSalary(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"employeeId":"e1","baseAmount":1000,"effectiveFrom":"2024-04-01",
				"components":[{"type":"earning","name":"bonus","amount":200}]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, s *domain.Salary) (*domain.Salary, error) {
						assert.Equal(t, "e1", s.Employee.ID)
						assert.Equal(t, domain.NewAmount(1000), s.BaseAmount)
						assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), s.EffectiveFrom.Time)
						assert.Equal(t, domain.NewAmount(200), s.Components[0].Amount)
						assert.False(t, s.Components[0].Percentage.Valid)
						s.ID = "s9"
						return s, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{"baseAmount":"lots"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"baseAmount":1000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: employee is required", salaryservice.ErrInvalidSalary))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"employeeId":"e1","baseAmount":1000,"effectiveFrom":"2024-04-01"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateSalary(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, s *domain.Salary) (*domain.Salary, error) {
			if s.ID != "s1" {
				return nil, salaryservice.ErrSalaryNotFound
			}
			return s, nil
		}).Times(2)

	body := `{"employeeId":"e1","baseAmount":1200,"effectiveFrom":"2024-04-01","effectiveTo":"2025-03-31"}`

	r := httptest.NewRequest(http.MethodPut, "/salaries/s1", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SalaryResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1200.0, resp.BaseAmount)
	require.NotNil(t, resp.EffectiveTo)

	r = httptest.NewRequest(http.MethodPut, "/salaries/other", strings.NewReader(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSalary(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().Delete(gomock.Any(), "s1").Return(nil)
	service.EXPECT().Delete(gomock.Any(), "missing").Return(salaryservice.ErrSalaryNotFound)

	r := httptest.NewRequest(http.MethodDelete, "/salaries/s1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = httptest.NewRequest(http.MethodDelete, "/salaries/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
