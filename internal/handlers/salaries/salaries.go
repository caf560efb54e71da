package salaries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/dto"
	"github.com/GlebRadaev/finboard/internal/service/salaryservice"
	"github.com/GlebRadaev/finboard/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Salary, error)
	Get(ctx context.Context, id string) (*domain.Salary, error)
	Create(ctx context.Context, salary *domain.Salary) (*domain.Salary, error)
	Update(ctx context.Context, salary *domain.Salary) (*domain.Salary, error)
	Delete(ctx context.Context, id string) error
}

type SalaryHandler struct {
	salaryService Service
}

func New(salaryService Service) *SalaryHandler {
	return &SalaryHandler{
		salaryService: salaryService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, salaryservice.ErrInvalidSalary):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, salaryservice.ErrSalaryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Salary not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListSalaries godoc
//
//	@Summary		List salaries
//	@Description	All salary records, newest effective date first.
//	@Tags			Salaries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SalaryResponseDTO	"Salaries"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/salaries [get]
func (h *SalaryHandler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.salaryService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.SalaryResponseDTO, len(salaries))
	for i, s := range salaries {
		response[i] = dto.NewSalaryResponse(s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSalary godoc
//
//	@Summary		Get salary
//	@Tags			Salaries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Salary ID"
//	@Success		200	{object}	dto.SalaryResponseDTO	"Salary"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		404	{object}	utils.Response			"Salary not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/salaries/{id} [get]
func (h *SalaryHandler) GetSalary(w http.ResponseWriter, r *http.Request) {
	salary, err := h.salaryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSalaryResponse(*salary))
}

// CreateSalary godoc
//
//	@Summary		Create salary
//	@Description	Stores a salary record and queues a dashboard refresh.
//	@Tags			Salaries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SalaryRequestDTO	true	"Salary"
//	@Success		201		{object}	dto.SalaryResponseDTO	"Created salary"
//	@Failure		400		{object}	utils.Response			"Invalid salary"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/salaries [post]
func (h *SalaryHandler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var req dto.SalaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	salary, err := h.salaryService.Create(r.Context(), req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSalaryResponse(*salary))
}

// UpdateSalary godoc
//
//	@Summary		Update salary
//	@Description	Replaces a salary record and queues a dashboard refresh.
//	@Tags			Salaries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Salary ID"
//	@Param			request	body		dto.SalaryRequestDTO	true	"Salary"
//	@Success		200		{object}	dto.SalaryResponseDTO	"Updated salary"
//	@Failure		400		{object}	utils.Response			"Invalid salary"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		404		{object}	utils.Response			"Salary not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/salaries/{id} [put]
func (h *SalaryHandler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	var req dto.SalaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	salary := req.ToDomain()
	salary.ID = chi.URLParam(r, "id")

	updated, err := h.salaryService.Update(r.Context(), salary)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSalaryResponse(*updated))
}

// DeleteSalary godoc
//
//	@Summary		Delete salary
//	@Tags			Salaries
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Salary ID"
//	@Success		204	"Salary deleted"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Salary not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/finance/salaries/{id} [delete]
func (h *SalaryHandler) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
