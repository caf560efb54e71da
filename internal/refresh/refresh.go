// Package refresh keeps the dashboard summary current. A single loop owns the
// ticker and the in-flight fetch; every other caller talks to it through the
// trigger channel and reads the last applied State.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/finboard/internal/config"
	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/finance"
)

type Trigger string

const (
	TriggerStart     Trigger = "start"
	TriggerTimer     Trigger = "timer"
	TriggerPush      Trigger = "push"
	TriggerVisible   Trigger = "visible"
	TriggerManual    Trigger = "manual"
	TriggerMutation  Trigger = "mutation"
	TriggerCoalesced Trigger = "coalesced"
)

const (
	triggerBuffer = 16
	fetchTimeout  = 30 * time.Second
)

type Platform interface {
	FetchBookings(ctx context.Context) ([]domain.Booking, error)
	FetchVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

type SalaryRepo interface {
	FindAll(ctx context.Context) ([]domain.Salary, error)
}

type ExpenseRepo interface {
	FindAll(ctx context.Context) ([]domain.Expense, error)
}

// State is replaced wholesale on every applied result.
type State struct {
	Seq         uint64
	Trigger     Trigger
	Summary     finance.Summary
	Input       finance.Input
	RefreshedAt time.Time
	Error       string
	ErrorAt     time.Time
	Visible     bool
}

type result struct {
	seq     uint64
	trigger Trigger
	input   finance.Input
	summary finance.Summary
	err     error
	at      time.Time
}

type Service struct {
	platform Platform
	salaries SalaryRepo
	expenses ExpenseRepo
	interval time.Duration
	timeout  time.Duration

	triggers     chan Trigger
	visibilityCh chan struct{}
	results      chan result

	mu    sync.RWMutex
	state State
	// hides counts visible to hidden transitions.
	hides uint64
}

func New(cfg *config.Config, platform Platform, salaries SalaryRepo, expenses ExpenseRepo) *Service {
	return &Service{
		platform:     platform,
		salaries:     salaries,
		expenses:     expenses,
		interval:     cfg.RefreshInterval,
		timeout:      fetchTimeout,
		triggers:     make(chan Trigger, triggerBuffer),
		visibilityCh: make(chan struct{}, 1),
		results:      make(chan result, 1),
		state:        State{Visible: true},
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.interval > 0 {
		zap.L().Info("Refresh service started", zap.Duration("interval", s.interval))
	} else {
		zap.L().Info("Refresh service started in push-only mode")
	}
	go s.run(ctx)
}

// Trigger asks for a refresh. It never blocks; when the buffer is full a
// refresh is already queued.
func (s *Service) Trigger(t Trigger) {
	select {
	case s.triggers <- t:
	default:
		zap.L().Debug("Refresh trigger dropped, buffer full", zap.String("trigger", string(t)))
	}
}

// SetVisible pauses the timer while the dashboard is hidden. Becoming
// visible refreshes immediately.
func (s *Service) SetVisible(visible bool) {
	s.mu.Lock()
	if s.state.Visible && !visible {
		s.hides++
	}
	s.state.Visible = visible
	s.mu.Unlock()

	select {
	case s.visibilityCh <- struct{}{}:
	default:
	}
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) visibility() (visible bool, hides uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Visible, s.hides
}

func (s *Service) run(ctx context.Context) {
	var (
		ticker   *time.Ticker
		tick     <-chan time.Time
		seq      uint64
		inFlight bool
		pending  bool
	)

	startTicker := func() {
		if s.interval <= 0 || ticker != nil {
			return
		}
		ticker = time.NewTicker(s.interval)
		tick = ticker.C
	}
	stopTicker := func() {
		if ticker == nil {
			return
		}
		ticker.Stop()
		ticker, tick = nil, nil
	}
	defer stopTicker()

	fetch := func(t Trigger) {
		if inFlight {
			pending = true
			return
		}
		seq++
		inFlight = true
		go s.fetch(ctx, seq, t)
	}

	wasVisible, seenHides := s.visibility()
	if wasVisible {
		startTicker()
	}
	fetch(TriggerStart)

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping refresh service")
			return
		case <-tick:
			fetch(TriggerTimer)
		case t := <-s.triggers:
			fetch(t)
		case <-s.visibilityCh:
			visible, hides := s.visibility()
			hidden := hides != seenHides || !wasVisible
			seenHides, wasVisible = hides, visible
			switch {
			case !visible:
				stopTicker()
			case hidden:
				startTicker()
				fetch(TriggerVisible)
			}
		case r := <-s.results:
			inFlight = false
			s.apply(r)
			if pending {
				pending = false
				fetch(TriggerCoalesced)
			}
		}
	}
}

func (s *Service) fetch(ctx context.Context, seq uint64, t Trigger) {
	r := s.refresh(ctx, seq, t)
	select {
	case s.results <- r:
	case <-ctx.Done():
	}
}

func (s *Service) refresh(ctx context.Context, seq uint64, t Trigger) result {
	input, err := s.load(ctx)
	r := result{seq: seq, trigger: t, err: err, at: time.Now()}
	if err == nil {
		r.input = input
		r.summary = finance.Compute(input)
	}
	return r
}

func (s *Service) load(ctx context.Context) (finance.Input, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var in finance.Input
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if in.Bookings, err = s.platform.FetchBookings(ctx); err != nil {
			return fmt.Errorf("failed to fetch bookings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		vehicles, err := s.platform.FetchVehicles(ctx)
		if err != nil {
			zap.L().Warn("Vehicles unavailable, expense names fall back to ids", zap.Error(err))
			return nil
		}
		in.Vehicles = vehicles
		return nil
	})
	g.Go(func() (err error) {
		if in.Salaries, err = s.salaries.FindAll(ctx); err != nil {
			return fmt.Errorf("failed to load salaries: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if in.Expenses, err = s.expenses.FindAll(ctx); err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return finance.Input{}, err
	}
	return in, nil
}

// apply installs r unless a newer result is already applied. A failed
// result keeps the previous summary and only records the error.
func (s *Service) apply(r result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.seq < s.state.Seq {
		zap.L().Debug("Discarding stale refresh result", zap.Uint64("seq", r.seq), zap.Uint64("applied", s.state.Seq))
		return false
	}
	if r.err != nil {
		zap.L().Error("Refresh failed", zap.Uint64("seq", r.seq), zap.String("trigger", string(r.trigger)), zap.Error(r.err))
		s.state.Error = r.err.Error()
		s.state.ErrorAt = r.at
		return false
	}

	s.state = State{
		Seq:         r.seq,
		Trigger:     r.trigger,
		Summary:     r.summary,
		Input:       r.input,
		RefreshedAt: r.at,
		Visible:     s.state.Visible,
	}
	zap.L().Debug("Refresh applied", zap.Uint64("seq", r.seq), zap.String("trigger", string(r.trigger)))
	return true
}
