package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/models"
)

type habitService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.RWMutex
	habits []models.Habit
}

// NewHabitService constructs the [HabitService]. It subscribes to the
// session so the display cache is dropped the moment the session settles
// unauthenticated.
func NewHabitService(serverAdapter adapter.ServerAdapter, session SessionManager, log *logger.Logger) HabitService {
	s := &habitService{
		adapter: serverAdapter,
		session: session,
		logger:  log,
		now:     time.Now,
	}

	session.Subscribe(func(sess models.Session) {
		if sess.State == models.StateUnauthenticated {
			s.mu.Lock()
			s.habits = nil
			s.mu.Unlock()
		}
	})

	return s
}

// Habits implements [HabitService].
func (s *habitService) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// ListHabits implements [HabitService]. The cache is replaced wholesale;
// merging is disallowed so the view can never diverge from server state.
func (s *habitService) ListHabits(ctx context.Context) ([]models.Habit, error) {
	if !s.session.Snapshot().Authenticated() {
		return nil, nil
	}

	habits, err := s.adapter.ListHabits(ctx)
	if err != nil {
		return nil, s.mapError(ctx, fmt.Errorf("list habits: %w", err))
	}

	s.mu.Lock()
	s.habits = habits
	s.mu.Unlock()

	return s.Habits(), nil
}

// CreateHabit implements [HabitService]. The returned habit is not
// spliced into the cache; a full re-list guarantees the cache matches
// server truth including derived fields.
func (s *habitService) CreateHabit(ctx context.Context, fields models.HabitFields) error {
	if !s.session.Snapshot().Authenticated() {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(fields.Title) == "" {
		return ErrTitleRequired
	}

	if _, err := s.adapter.CreateHabit(ctx, fields); err != nil {
		return s.mapError(ctx, fmt.Errorf("create habit: %w", err))
	}

	_, err := s.ListHabits(ctx)
	return err
}

// UpdateHabit implements [HabitService].
func (s *habitService) UpdateHabit(ctx context.Context, id int64, fields models.HabitFields) error {
	if !s.session.Snapshot().Authenticated() {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(fields.Title) == "" {
		return ErrTitleRequired
	}

	if _, err := s.adapter.UpdateHabit(ctx, id, fields); err != nil {
		return s.mapError(ctx, fmt.Errorf("update habit %d: %w", id, err))
	}

	_, err := s.ListHabits(ctx)
	return err
}

// CheckIn implements [HabitService]. The device-local calendar day is
// submitted; the server decides whether that date is already taken. A
// duplicate rejection is an expected business outcome and comes back as
// [ErrAlreadyCheckedIn] carrying the server's own message.
func (s *habitService) CheckIn(ctx context.Context, habitID int64) error {
	if !s.session.Snapshot().Authenticated() {
		return ErrNotAuthenticated
	}

	localDate := models.LocalCheckInDate(s.now())

	if _, err := s.adapter.CheckIn(ctx, habitID, localDate); err != nil {
		var ve *adapter.ValidationError
		if errors.As(err, &ve) && isDuplicateCheckIn(ve) {
			s.logger.Debug().Int64("habit", habitID).Str("date", localDate).Msg("duplicate check-in rejected by server")
			return fmt.Errorf("%w: %s", ErrAlreadyCheckedIn, ve.Message)
		}
		return s.mapError(ctx, fmt.Errorf("check in habit %d: %w", habitID, err))
	}

	// Re-list for the updated streak instead of trusting any locally
	// derived value.
	_, err := s.ListHabits(ctx)
	return err
}

// ListCheckIns implements [HabitService]. History is display-only and is
// not cached.
func (s *habitService) ListCheckIns(ctx context.Context, habitID int64) ([]models.CheckIn, error) {
	if !s.session.Snapshot().Authenticated() {
		return nil, nil
	}

	checkIns, err := s.adapter.ListCheckIns(ctx, habitID)
	if err != nil {
		return nil, s.mapError(ctx, fmt.Errorf("list checkins for habit %d: %w", habitID, err))
	}

	return checkIns, nil
}

// isDuplicateCheckIn picks the server's duplicate-date rejection out of
// the 4xx space; any other validation failure passes through unchanged.
func isDuplicateCheckIn(ve *adapter.ValidationError) bool {
	return strings.Contains(strings.ToLower(ve.Message), "already checked in")
}

// mapError settles the session after an observed authorization failure
// and passes every error through to the caller unchanged.
func (s *habitService) mapError(ctx context.Context, err error) error {
	if adapter.IsAuthFailure(err) {
		s.session.Invalidate(ctx)
	}
	return err
}
