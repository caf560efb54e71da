package dashboardservice

import (
	"bytes"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finboard/internal/export"
	"github.com/GlebRadaev/finboard/internal/finance"
	"github.com/GlebRadaev/finboard/internal/notify"
	"github.com/GlebRadaev/finboard/internal/refresh"
)

type Coordinator interface {
	Trigger(t refresh.Trigger)
	SetVisible(visible bool)
	State() refresh.State
}

type Service struct {
	coordinator Coordinator
}

func New(coordinator Coordinator) *Service {
	return &Service{
		coordinator: coordinator,
	}
}

var ErrInvalidEvent = errors.New("invalid event")

// Status describes the freshness of the summary being served.
type Status struct {
	Ready       bool
	Seq         uint64
	Trigger     refresh.Trigger
	RefreshedAt time.Time
	Error       string
	ErrorAt     time.Time
	Visible     bool
}

type Dashboard struct {
	Status             Status
	Totals             finance.Totals
	RecentTransactions []finance.Transaction
	RecentTaxRecords   []finance.TaxRecord
	Monthly            []finance.MonthlyRow
}

type TaxReport struct {
	Status  Status
	Query   string
	Records []finance.TaxRecord
	Totals  finance.TaxTotals
}

func statusOf(state refresh.State) Status {
	return Status{
		Ready:       state.Seq > 0,
		Seq:         state.Seq,
		Trigger:     state.Trigger,
		RefreshedAt: state.RefreshedAt,
		Error:       state.Error,
		ErrorAt:     state.ErrorAt,
		Visible:     state.Visible,
	}
}

func (s *Service) Dashboard(_ context.Context) *Dashboard {
	state := s.coordinator.State()
	return &Dashboard{
		Status:             statusOf(state),
		Totals:             state.Summary.Totals,
		RecentTransactions: state.Summary.RecentTransactions,
		RecentTaxRecords:   state.Summary.RecentTaxRecords,
		Monthly:            state.Summary.Monthly,
	}
}

func (s *Service) TaxReport(_ context.Context, query string) *TaxReport {
	state := s.coordinator.State()
	return &TaxReport{
		Status:  statusOf(state),
		Query:   query,
		Records: finance.Search(state.Summary.TaxReport, query),
		Totals:  state.Summary.Totals.Taxes,
	}
}

func (s *Service) ExportTaxReport(ctx context.Context, query string) ([]byte, error) {
	report := s.TaxReport(ctx, query)
	data, err := export.TaxReport(report.Records, report.Totals)
	if err != nil {
		zap.L().Error("failed to export tax report", zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *Service) Refresh(_ context.Context) {
	s.coordinator.Trigger(refresh.TriggerManual)
}

func (s *Service) SetVisible(_ context.Context, visible bool) {
	s.coordinator.SetVisible(visible)
}

// Notify handles a webhook event. An empty body counts as a generic
// "finance changed" event.
func (s *Service) Notify(_ context.Context, body []byte) (bool, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		s.coordinator.Trigger(refresh.TriggerPush)
		return true, nil
	}
	event, err := notify.ParseEvent(body)
	if err != nil {
		return false, errors.Join(ErrInvalidEvent, err)
	}
	if !event.Refreshes() {
		zap.L().Debug("ignoring webhook event", zap.String("type", event.Type))
		return false, nil
	}
	s.coordinator.Trigger(refresh.TriggerPush)
	return true, nil
}

func (s *Service) Health(_ context.Context) Status {
	return statusOf(s.coordinator.State())
}
