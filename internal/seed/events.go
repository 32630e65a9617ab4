package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

const (
	// Calendar window: 6 weeks of history, 12 weeks ahead, both inclusive.
	weeksBack    = 6
	weeksForward = 12

	trainingChance = 0.70
	popupChance    = 0.15
	tripChance     = 0.30
)

var trainingSubtypes = []string{
	"Pool Skills",
	"Fitness Swim",
	"Rescue Drills",
	"Navigation Practice",
}

var popupNames = []string{
	"Quiz Night",
	"River Swim",
	"Film Night",
	"Kit Maintenance Evening",
}

// plannedEvent is one calendar entry before it hits the database.
type plannedEvent struct {
	event entity.Event
	tags  []string
	// expected is how many shuffled users try to join; overflow past
	// capacity goes to the waiting list or is dropped.
	expected int
	// seatInstructor seats the designated instructor before anyone else.
	seatInstructor bool
}

// seedEvents wipes the calendar and regenerates it: every day in the window
// emits events keyed by its weekday. The whole run is one transaction, so a
// mid-run failure leaves the previous calendar intact.
func (s *DevSeeder) seedEvents(ctx context.Context) error {
	users, err := s.eventUserPool(ctx)
	if err != nil {
		return err
	}
	instructorID, err := s.instructorID(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := anchor.AddDate(0, 0, -weeksBack*7)
	days := (weeksBack + weeksForward) * 7

	var planned []plannedEvent
	for offset := 0; offset <= days; offset++ {
		planned = append(planned, s.planDay(first.AddDate(0, 0, offset))...)
	}

	err = sqlite.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, table := range []string{"event_tags", "event_attendees", "event_waiting_lists", "events"} {
			if wipeErr := tx.Exec("DELETE FROM " + table).Error; wipeErr != nil {
				return fmt.Errorf("failed to wipe %s: %w", table, wipeErr)
			}
		}

		tagsByName, tagErr := loadTags(tx)
		if tagErr != nil {
			return tagErr
		}

		for i := range planned {
			p := &planned[i]
			for _, name := range p.tags {
				tag, ok := tagsByName[name]
				if !ok {
					s.logger.Warnf("event %s: unknown tag %q, leaving untagged", p.event.Title, name)
					continue
				}
				p.event.Tags = append(p.event.Tags, tag)
			}

			if createErr := tx.Omit("Tags.*").Create(&p.event).Error; createErr != nil {
				return fmt.Errorf("failed to create event %s: %w", p.event.Title, createErr)
			}

			if p.expected > 0 {
				if assignErr := s.assignAttendees(tx, &p.event, users, p.expected, instructorID, p.seatInstructor); assignErr != nil {
					return assignErr
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.progress("generated %d events across %d days", len(planned), days+1)
	return nil
}

// planDay emits the deterministic weekday pattern for one calendar day.
func (s *DevSeeder) planDay(day time.Time) []plannedEvent {
	var planned []plannedEvent
	at := func(hour, min int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	}
	weekday := day.Weekday()

	switch weekday {
	case time.Wednesday:
		planned = append(planned,
			plannedEvent{
				event: entity.Event{
					ID:        uuid.NewString(),
					Title:     "Club Social",
					Location:  "The Anchor",
					StartTime: at(20, 0),
					EndTime:   at(23, 0),
				},
				tags:     []string{"social"},
				expected: 10 + s.rng.Intn(25),
			},
			plannedEvent{
				event: entity.Event{
					ID:             uuid.NewString(),
					Title:          "Chill Session (early)",
					Location:       "Pool",
					StartTime:      at(18, 0),
					EndTime:        at(19, 0),
					MaxAttendees:   8,
					EnableWaitlist: true,
				},
				tags:     []string{"chill"},
				expected: s.rng.Intn(12),
			},
			plannedEvent{
				event: entity.Event{
					ID:             uuid.NewString(),
					Title:          "Chill Session (late)",
					Location:       "Pool",
					StartTime:      at(19, 0),
					EndTime:        at(20, 0),
					MaxAttendees:   8,
					EnableWaitlist: true,
				},
				tags:     []string{"chill"},
				expected: s.rng.Intn(12),
			},
		)
	case time.Thursday:
		start := at(20, 0)
		cutoff := start.Add(-48 * time.Hour)
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:                  uuid.NewString(),
				Title:               "Skills Development Session",
				Location:            "Pool",
				StartTime:           start,
				EndTime:             at(21, 30),
				MaxAttendees:        12,
				Cost:                350,
				UpfrontRefundCutoff: &cutoff,
				EnableWaitlist:      true,
			},
			tags:           []string{"training"},
			expected:       s.rng.Intn(16),
			seatInstructor: true,
		})
	case time.Friday:
		start := at(19, 0)
		cutoff := start.Add(-24 * time.Hour)
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:                  uuid.NewString(),
				Title:               "Friday Pool Session",
				Location:            "Pool",
				StartTime:           start,
				EndTime:             at(20, 0),
				MaxAttendees:        12,
				Cost:                300,
				UpfrontRefundCutoff: &cutoff,
				EnableWaitlist:      true,
			},
			tags:           []string{"training"},
			expected:       s.rng.Intn(16),
			seatInstructor: true,
		})
	case time.Saturday:
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:             uuid.NewString(),
				Title:          "Club Competition",
				Location:       "Main Pool",
				StartTime:      at(10, 0),
				EndTime:        at(16, 0),
				MaxAttendees:   20,
				EnableWaitlist: true,
			},
			tags:     []string{"competition"},
			expected: s.rng.Intn(24),
		})
		if s.rng.Float64() < tripChance {
			planned = append(planned, s.planWeekendTrip(day)...)
		}
	case time.Sunday:
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:             uuid.NewString(),
				Title:          "Sunday Session",
				Location:       "Pool",
				StartTime:      at(10, 0),
				EndTime:        at(11, 30),
				MaxAttendees:   10,
				EnableWaitlist: true,
			},
			tags:           []string{"training"},
			expected:       s.rng.Intn(14),
			seatInstructor: true,
		})
	}

	if weekday >= time.Monday && weekday <= time.Friday && s.rng.Float64() < trainingChance {
		subtype := trainingSubtypes[s.rng.Intn(len(trainingSubtypes))]
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:             uuid.NewString(),
				Title:          subtype,
				Location:       "Training Pool",
				StartTime:      at(18, 0),
				EndTime:        at(19, 0),
				MaxAttendees:   6,
				EnableWaitlist: true,
			},
			tags:           []string{"training"},
			expected:       s.rng.Intn(10),
			seatInstructor: true,
		})
	}

	if s.rng.Float64() < popupChance {
		name := popupNames[s.rng.Intn(len(popupNames))]
		planned = append(planned, plannedEvent{
			event: entity.Event{
				ID:           uuid.NewString(),
				Title:        "Pop-up: " + name,
				Location:     "Clubhouse",
				StartTime:    at(19, 30),
				EndTime:      at(21, 30),
				MaxAttendees: 10,
			},
			expected: s.rng.Intn(10),
		})
	}

	return planned
}

// planWeekendTrip is a coin flip between a two-day trip spanning into Sunday
// and a competition held on the Sunday instead. The trip runs with no
// waiting list and more candidates than seats, so it ends up exactly full.
func (s *DevSeeder) planWeekendTrip(saturday time.Time) []plannedEvent {
	sunday := saturday.AddDate(0, 0, 1)
	if s.rng.Intn(2) == 0 {
		return []plannedEvent{{
			event: entity.Event{
				ID:           uuid.NewString(),
				Title:        "Weekend Trip",
				Location:     "Coast",
				StartTime:    time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 8, 0, 0, 0, saturday.Location()),
				EndTime:      time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 18, 0, 0, 0, sunday.Location()),
				MaxAttendees: 12,
				Cost:         4500,
			},
			tags:     []string{"trip"},
			expected: 16,
		}}
	}
	return []plannedEvent{{
		event: entity.Event{
			ID:             uuid.NewString(),
			Title:          "Open Competition",
			Location:       "Main Pool",
			StartTime:      time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 10, 0, 0, 0, sunday.Location()),
			EndTime:        time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 16, 0, 0, 0, sunday.Location()),
			MaxAttendees:   16,
			EnableWaitlist: true,
		},
		tags:     []string{"competition"},
		expected: s.rng.Intn(20),
	}}
}

// assignAttendees shuffles the user pool, optionally seats the instructor
// first, fills active seats to capacity and routes overflow to the waiting
// list when the event has one. Overflow past a no-waitlist event is dropped.
func (s *DevSeeder) assignAttendees(tx *gorm.DB, event *entity.Event, users []entity.User, expected int, instructorID string, seatInstructor bool) error {
	pool := make([]entity.User, len(users))
	copy(pool, users)
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if seatInstructor && instructorID != "" {
		for i := range pool {
			if pool[i].ID == instructorID {
				pool[0], pool[i] = pool[i], pool[0]
				break
			}
		}
	}

	seated := 0
	for i := 0; i < expected && i < len(pool); i++ {
		if event.Unlimited() || seated < event.MaxAttendees {
			attendee := entity.EventAttendee{
				ID:          uuid.NewString(),
				EventID:     event.ID,
				UserID:      pool[i].ID,
				IsAttending: true,
			}
			if err := tx.Create(&attendee).Error; err != nil {
				return fmt.Errorf("failed to seat attendee: %w", err)
			}
			seated++
			continue
		}

		if !event.EnableWaitlist {
			// Full and no queue: the rest of the candidates are dropped.
			break
		}
		entry := entity.EventWaitingList{
			ID:      uuid.NewString(),
			EventID: event.ID,
			UserID:  pool[i].ID,
			// Staggered join times keep the queue strictly ordered.
			JoinedAt: event.StartTime.Add(-7 * 24 * time.Hour).Add(time.Duration(i) * time.Minute),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to queue attendee: %w", err)
		}
	}
	return nil
}

func (s *DevSeeder) eventUserPool(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Where("is_admin = ?", false).Find(&users).Error
	return users, err
}

// instructorID resolves the Training Officer, the designated instructor for
// coached sessions. No holder is fine, sessions then seat members only.
func (s *DevSeeder) instructorID(ctx context.Context) (string, error) {
	role, err := s.roles.GetByName(ctx, "Training Officer")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var user entity.User
	err = s.db.WithContext(ctx).Where("role_id = ?", role.ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func loadTags(tx *gorm.DB) (map[string]entity.Tag, error) {
	var tags []entity.Tag
	if err := tx.Find(&tags).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]entity.Tag, len(tags))
	for _, tag := range tags {
		byName[tag.Name] = tag
	}
	return byName, nil
}
