package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/palipractice/internal/database"
	"github.com/example/palipractice/internal/difficulty"
	"github.com/example/palipractice/internal/importer"
	"github.com/example/palipractice/internal/inflection"
	"github.com/example/palipractice/internal/notify"
	"github.com/example/palipractice/internal/queue"
	"github.com/example/palipractice/internal/scheduler"
	"github.com/example/palipractice/internal/spaced_repetition"
	"github.com/example/palipractice/pkg/models"
)

// logNotifier is the fallback when no Telegram credentials are set
type logNotifier struct{}

func (logNotifier) SendDueReminder(pos models.PartOfSpeech, count int) error {
	log.Printf("%d %s slots due for review", count, pos)
	return nil
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	importPath := flag.String("import", "", "import a lexicon sheet (xlsx or csv) and exit")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importPath != "" {
		config := importer.DefaultImportConfig()
		config.FilePath = *importPath
		result, err := importer.ImportLexicon(config)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Import finished: %d processed, %d imported, %d skipped, %d errors",
			result.TotalProcessed, result.Imported, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wire the engine
	cooldown := spaced_repetition.NewScheduler()
	lexiconRepo := database.NewLexiconRepository()
	masteryRepo := database.NewMasteryRepository(cooldown)
	configRepo := database.NewLearnerConfigRepository()
	difficultyTracker := difficulty.NewTracker(database.NewDifficultyRepository())
	generator := inflection.NewGenerator(lexiconRepo, lexiconRepo, lexiconRepo)
	builder := queue.NewBuilder(lexiconRepo, masteryRepo, configRepo, generator, cooldown, difficultyTracker)

	// Reminder notifications: Telegram when configured, log otherwise
	var notifier scheduler.Notifier = logNotifier{}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_CHAT_ID is not set or invalid: %v", err)
		}
		tg, err := notify.NewTelegram(token, chatID)
		if err != nil {
			log.Fatalf("Failed to create telegram notifier: %v", err)
		}
		notifier = tg
	}

	reminders := scheduler.New(notifier, masteryRepo)
	reminders.Start()
	defer reminders.Stop()

	// Periodically rebuild the queues so a fresh snapshot is waiting
	// whenever a practice session starts
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				for _, pos := range []models.PartOfSpeech{models.Noun, models.Verb} {
					items, err := builder.BuildQueue(pos, 24)
					if err != nil {
						log.Printf("Error building %s queue: %v", pos, err)
						continue
					}
					log.Printf("%s queue ready: %d items", pos, len(items))
				}
			case <-ctx.Done():
				log.Println("Stopping queue refresher...")
				return
			}
		}
	}()

	statsRepo := database.NewStatisticsRepository()
	for _, pos := range []models.PartOfSpeech{models.Noun, models.Verb} {
		stats, err := statsRepo.Overview(pos)
		if err != nil {
			log.Printf("Error loading %s statistics: %v", pos, err)
			continue
		}
		log.Printf("%s progress: %d tracked, %d retired, %d practices recorded",
			pos, stats.TrackedForms, stats.RetiredForms, stats.TotalPractices)
	}

	log.Println("PaliPractice engine started. Press Ctrl+C to stop.")
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)
	cancel()
}
