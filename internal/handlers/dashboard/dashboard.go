package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/finboard/internal/dto"
	"github.com/GlebRadaev/finboard/internal/export"
	"github.com/GlebRadaev/finboard/internal/service/dashboardservice"
	"github.com/GlebRadaev/finboard/pkg/utils"
)

const maxNotifyBody = 1 << 20

type Service interface {
	Dashboard(ctx context.Context) *dashboardservice.Dashboard
	TaxReport(ctx context.Context, query string) *dashboardservice.TaxReport
	ExportTaxReport(ctx context.Context, query string) ([]byte, error)
	Refresh(ctx context.Context)
	SetVisible(ctx context.Context, visible bool)
	Notify(ctx context.Context, body []byte) (bool, error)
	Health(ctx context.Context) dashboardservice.Status
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func statusDTO(s dashboardservice.Status) dto.StatusDTO {
	return dto.StatusDTO{
		Ready:       s.Ready,
		Seq:         s.Seq,
		Trigger:     string(s.Trigger),
		RefreshedAt: timePtr(s.RefreshedAt),
		Error:       s.Error,
		ErrorAt:     timePtr(s.ErrorAt),
		Visible:     s.Visible,
	}
}

// GetDashboard godoc
//
//	@Summary		Get finance dashboard
//	@Description	Totals, recent transactions, recent tax records and the monthly roll-up computed by the last successful refresh.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO	"Dashboard view-model"
//	@Failure		401	{object}	utils.Response				"Operator not authorized"
//	@Router			/api/finance/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardService.Dashboard(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Status:             statusDTO(d.Status),
		Totals:             d.Totals,
		RecentTransactions: orEmpty(d.RecentTransactions),
		RecentTaxRecords:   orEmpty(d.RecentTaxRecords),
		Monthly:            orEmpty(d.Monthly),
	})
}

// GetTaxReport godoc
//
//	@Summary		Get tax report
//	@Description	Most recent tax records filtered by a case-insensitive search over names, types, statuses and amounts.
//	@Tags			Taxes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q	query		string						false	"Search query"
//	@Success		200	{object}	dto.TaxReportResponseDTO	"Tax report"
//	@Failure		401	{object}	utils.Response				"Operator not authorized"
//	@Router			/api/finance/taxes [get]
func (h *DashboardHandler) GetTaxReport(w http.ResponseWriter, r *http.Request) {
	report := h.dashboardService.TaxReport(r.Context(), r.URL.Query().Get("q"))
	utils.RespondWithJSON(w, http.StatusOK, dto.TaxReportResponseDTO{
		Status:  statusDTO(report.Status),
		Query:   report.Query,
		Records: orEmpty(report.Records),
		Totals:  report.Totals,
	})
}

// ExportTaxReport godoc
//
//	@Summary		Export tax report
//	@Description	The tax report, filtered like GET /api/finance/taxes, as an XLSX workbook.
//	@Tags			Taxes
//	@Security		BearerAuth
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			q	query		string			false	"Search query"
//	@Success		200	{file}		file			"XLSX workbook"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/finance/taxes/export [get]
func (h *DashboardHandler) ExportTaxReport(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.ExportTaxReport(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	filename := "tax-report-" + time.Now().UTC().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Refresh godoc
//
//	@Summary		Request a refresh
//	@Description	Queues a manual refresh. Requests made while a refresh is running are merged into one follow-up refresh.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		202	{object}	utils.Response	"Refresh queued"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Router			/api/finance/refresh [post]
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.dashboardService.Refresh(r.Context())
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "refresh queued"})
}

// SetVisibility godoc
//
//	@Summary		Report dashboard visibility
//	@Description	Pauses periodic refresh while the dashboard is hidden and refreshes immediately when it becomes visible again.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VisibilityRequestDTO	true	"Visibility"
//	@Success		200		{object}	dto.StatusDTO				"Refresh status"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Router			/api/finance/visibility [put]
func (h *DashboardHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req dto.VisibilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Visible == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.dashboardService.SetVisible(r.Context(), *req.Visible)
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(h.dashboardService.Health(r.Context())))
}

// Notify godoc
//
//	@Summary		Receive a data change notification
//	@Description	Webhook for the platform services. Booking, salary, expense and vehicle events trigger a refresh.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			X-Notify-Token	header		string					false	"Shared secret, required when NOTIFY_TOKEN is set"
//	@Param			request			body		dto.NotifyRequestDTO	false	"Event"
//	@Success		202				{object}	dto.NotifyResponseDTO	"Event accepted"
//	@Failure		400				{object}	utils.Response			"Malformed event"
//	@Failure		401				{object}	utils.Response			"Invalid notify token"
//	@Router			/api/notify [post]
func (h *DashboardHandler) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxNotifyBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	triggered, err := h.dashboardService.Notify(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, dashboardservice.ErrInvalidEvent):
			utils.RespondWithError(w, http.StatusBadRequest, "malformed event")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NotifyResponseDTO{Triggered: triggered})
}

// Health godoc
//
//	@Summary		Service health
//	@Description	Sequence, time and error of the last refresh.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.StatusDTO	"Refresh status"
//	@Router			/api/health [get]
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(h.dashboardService.Health(r.Context())))
}
