package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	bookingRepo "healthtick/database/repository/booking"
	"healthtick/models"
	"healthtick/services/clientdir"
	"healthtick/services/schedule"
)

// DefaultBookingService is the production BookingService. It owns no booking
// state of its own: every decision re-derives the effective booking set from
// storage. The re-validation before commit narrows the window between two
// independent writers but cannot eliminate it; storage offers no
// conditional-write primitive, so this stays best-effort.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Clients  clientdir.Directory
	Sessions SessionStore
	Logger   *zap.Logger
}

// loadDay fetches the date-scoped and recurring-scoped sets concurrently and
// folds them into a DaySchedule.
func (s *DefaultBookingService) loadDay(ctx context.Context, date string) (*schedule.DaySchedule, error) {
	var oneOff, recurring []models.Booking

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		oneOff, err = s.Repo.GetByDate(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		recurring, err = s.Repo.GetRecurring(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	return schedule.NewDaySchedule(date, oneOff, recurring)
}

// label resolves client display fields for a booking; unknown clients keep an
// empty label rather than failing a read path.
func (s *DefaultBookingService) label(b models.Booking) models.LabeledBooking {
	lb := models.LabeledBooking{Booking: b}
	if c, err := s.Clients.Lookup(b.ClientID); err == nil {
		lb.ClientName = c.Name
		lb.ClientPhone = c.Phone
	}
	return lb
}

func (s *DefaultBookingService) labelAll(bookings []models.Booking) []models.LabeledBooking {
	labeled := make([]models.LabeledBooking, 0, len(bookings))
	for _, b := range bookings {
		labeled = append(labeled, s.label(b))
	}
	return labeled
}

func (s *DefaultBookingService) DayView(ctx context.Context, date string) (*models.DayView, error) {
	day, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}
	return &models.DayView{
		Date:     date,
		Slots:    day.Slots(),
		Bookings: s.labelAll(day.Bookings),
	}, nil
}

func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date, start string, callType models.CallType) (*AvailabilityResult, error) {
	duration, err := schedule.Duration(callType)
	if err != nil {
		return nil, err
	}
	day, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}
	conflicts, err := day.Conflicts(start, duration)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResult{
		Date:      date,
		Time:      start,
		Type:      callType,
		Duration:  duration,
		Available: len(conflicts) == 0,
		Conflicts: s.labelAll(conflicts),
	}, nil
}

// StartSession is the Idle -> SlotChosen transition. A conflicting candidate
// reports its collisions and stays idle: no session is created.
func (s *DefaultBookingService) StartSession(ctx context.Context, date, start string, callType models.CallType) (*models.BookingSession, error) {
	if !models.ValidDate(date) {
		return nil, &models.ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	res, err := s.CheckAvailability(ctx, date, start, callType)
	if err != nil {
		return nil, err
	}
	if !res.Available {
		return nil, &ConflictError{Date: date, Time: start, Duration: res.Duration, Conflicts: res.Conflicts}
	}

	session := &models.BookingSession{
		ID:        uuid.New().String(),
		State:     models.StateSlotChosen,
		Date:      date,
		Time:      start,
		Type:      callType,
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("sessionID", session.ID),
		zap.String("date", date),
		zap.String("time", start),
		zap.String("type", string(callType)))
	return session, nil
}

// ChooseClient is the SlotChosen -> ClientChosen transition.
func (s *DefaultBookingService) ChooseClient(ctx context.Context, sessionID, clientID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSlotChosen {
		return nil, fmt.Errorf("session %s is in state %q, expected %q", sessionID, session.State, models.StateSlotChosen)
	}
	client, err := s.Clients.Lookup(clientID)
	if err != nil {
		return nil, err
	}

	session.State = models.StateClientChosen
	session.ClientID = client.ID
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking runs the Validating step: the identical availability check
// against freshly loaded bookings, defending against writes that landed
// between slot-pick and client-pick. On success exactly one record is
// written, then both booking sets are reloaded wholesale.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, sessionID string) (*CommitResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateClientChosen {
		return nil, fmt.Errorf("session %s is in state %q, expected %q", sessionID, session.State, models.StateClientChosen)
	}

	res, err := s.CheckAvailability(ctx, session.Date, session.Time, session.Type)
	if err != nil {
		return nil, err
	}
	if !res.Available {
		// Rejected: another write landed since the slot was picked.
		if derr := s.Sessions.Delete(ctx, sessionID); derr != nil {
			s.Logger.Warn("failed to drop rejected session", zap.String("sessionID", sessionID), zap.Error(derr))
		}
		s.Logger.Info("booking rejected on re-validation",
			zap.String("sessionID", sessionID),
			zap.Int("conflicts", len(res.Conflicts)))
		return nil, &ConflictError{Date: session.Date, Time: session.Time, Duration: res.Duration, Conflicts: res.Conflicts}
	}

	created, err := s.Repo.Create(ctx, models.BookingInput{
		ClientID: session.ClientID,
		Type:     session.Type,
		Date:     session.Date,
		Time:     session.Time,
		// Follow-up calls repeat weekly on this weekday; onboarding is one-off.
		IsRecurring: session.Type == models.CallTypeFollowUp,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to drop committed session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.Logger.Info("booking committed",
		zap.String("bookingID", created.ID),
		zap.String("clientID", created.ClientID),
		zap.String("date", created.Date),
		zap.String("time", created.Time))

	day, err := s.DayView(ctx, created.Date)
	if err != nil {
		return nil, fmt.Errorf("booking %s committed but reload failed: %w", created.ID, err)
	}
	return &CommitResult{Booking: created, Day: day}, nil
}

func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// RequestDelete opens a ConfirmPending session and returns a summary naming
// the exact record, so the user confirms against type, client, date and time.
func (s *DefaultBookingService) RequestDelete(ctx context.Context, bookingID string) (*models.DeleteConfirmation, error) {
	target, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	labeled := s.label(*target)

	session := &models.BookingSession{
		ID:        uuid.New().String(),
		State:     models.StateConfirmPending,
		Date:      target.Date,
		Time:      target.Time,
		Type:      target.Type,
		ClientID:  target.ClientID,
		BookingID: target.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &models.DeleteConfirmation{
		SessionID:  session.ID,
		BookingID:  target.ID,
		Type:       target.Type,
		ClientName: labeled.ClientName,
		Date:       target.Date,
		Time:       target.Time,
		Message: fmt.Sprintf("Delete the %s call with %s on %s at %s?",
			target.Type, labeled.ClientName, target.Date, target.Time),
	}, nil
}

// ConfirmDelete is the ConfirmPending -> Committed transition for deletions.
func (s *DefaultBookingService) ConfirmDelete(ctx context.Context, sessionID string) (*CommitResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateConfirmPending {
		return nil, fmt.Errorf("session %s is in state %q, expected %q", sessionID, session.State, models.StateConfirmPending)
	}

	if err := s.Repo.Delete(ctx, session.BookingID); err != nil {
		if derr := s.Sessions.Delete(ctx, sessionID); derr != nil {
			s.Logger.Warn("failed to drop delete session", zap.String("sessionID", sessionID), zap.Error(derr))
		}
		return nil, err
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to drop delete session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.Logger.Info("booking deleted",
		zap.String("bookingID", session.BookingID),
		zap.String("date", session.Date),
		zap.String("time", session.Time))

	day, err := s.DayView(ctx, session.Date)
	if err != nil {
		return nil, fmt.Errorf("booking %s deleted but reload failed: %w", session.BookingID, err)
	}
	return &CommitResult{Day: day}, nil
}
