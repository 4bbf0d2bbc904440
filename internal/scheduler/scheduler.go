package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/palipractice/internal/database"
	"github.com/example/palipractice/pkg/models"
	"github.com/go-co-op/gocron"
)

// Default notification window (hours of the day, inclusive)
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler   *gocron.Scheduler
	notifier    Notifier
	masteryRepo *database.MasteryRepository
}

// Notifier interface for sending due-review reminders
type Notifier interface {
	SendDueReminder(pos models.PartOfSpeech, count int) error
}

// New creates a new scheduler instance
func New(notifier Notifier, masteryRepo *database.MasteryRepository) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:   s,
		notifier:    notifier,
		masteryRepo: masteryRepo,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for due reviews
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders counts due slots per word family and notifies
// when anything is waiting, but only inside the notification window.
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour
	if text := os.Getenv("NOTIFICATION_START_HOUR"); text != "" {
		if h, err := strconv.Atoi(text); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if text := os.Getenv("NOTIFICATION_END_HOUR"); text != "" {
		if h, err := strconv.Atoi(text); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	for _, pos := range []models.PartOfSpeech{models.Noun, models.Verb} {
		due, err := s.masteryRepo.GetDue(pos, 0)
		if err != nil {
			log.Printf("Error counting due %s reviews: %v", pos, err)
			continue
		}
		if len(due) == 0 {
			continue
		}
		if err := s.notifier.SendDueReminder(pos, len(due)); err != nil {
			log.Printf("Error sending %s reminder: %v", pos, err)
		}
	}
}

// RunManualCheck forces an immediate reminder check for one family
func (s *Scheduler) RunManualCheck(pos models.PartOfSpeech) error {
	due, err := s.masteryRepo.GetDue(pos, 0)
	if err != nil {
		return err
	}
	if len(due) > 0 {
		return s.notifier.SendDueReminder(pos, len(due))
	}
	return nil
}
