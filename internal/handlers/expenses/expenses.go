package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/dto"
	"github.com/GlebRadaev/finboard/internal/service/expenseservice"
	"github.com/GlebRadaev/finboard/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Expense, error)
	Get(ctx context.Context, id string) (*domain.Expense, error)
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseHandler struct {
	expenseService Service
}

func New(expenseService Service) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expenseservice.ErrInvalidExpense):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, expenseservice.ErrExpenseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Expense not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListExpenses godoc
//
//	@Summary		List expenses
//	@Description	Vehicle and employee expenses, latest date first.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ExpenseResponseDTO	"Expenses"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/expenses [get]
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.ExpenseResponseDTO, len(expenses))
	for i, s := range expenses {
		response[i] = dto.NewExpenseResponse(s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetExpense godoc
//
//	@Summary		Get expense
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Expense ID"
//	@Success		200	{object}	dto.ExpenseResponseDTO	"Expense"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		404	{object}	utils.Response			"Expense not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := h.expenseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseResponse(*expense))
}

// CreateExpense godoc
//
//	@Summary		Create expense
//	@Description	Stores an expense record and queues a dashboard refresh.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExpenseRequestDTO	true	"Expense"
//	@Success		201		{object}	dto.ExpenseResponseDTO	"Created expense"
//	@Failure		400		{object}	utils.Response			"Invalid expense"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	expense, err := h.expenseService.Create(r.Context(), req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewExpenseResponse(*expense))
}

// UpdateExpense godoc
//
//	@Summary		Update expense
//	@Description	Replaces an expense record and queues a dashboard refresh.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Expense ID"
//	@Param			request	body		dto.ExpenseRequestDTO	true	"Expense"
//	@Success		200		{object}	dto.ExpenseResponseDTO	"Updated expense"
//	@Failure		400		{object}	utils.Response			"Invalid expense"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		404		{object}	utils.Response			"Expense not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/finance/expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	expense := req.ToDomain()
	expense.ID = chi.URLParam(r, "id")

	updated, err := h.expenseService.Update(r.Context(), expense)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseResponse(*updated))
}

// DeleteExpense godoc
//
//	@Summary		Delete expense
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Expense ID"
//	@Success		204	"Expense deleted"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Expense not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/finance/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
