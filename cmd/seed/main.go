// Command seed upserts the Industry and ExpertiseArea vocabularies and,
// with --events, the sample event catalog. Every phase is idempotent.
//
// Flags:
//
//	--phase          comma-separated phases: industries, expertise, events
//	                 (default: industries,expertise)
//	--events         also seed the sample events
//	--dry-run        report what would be written without touching the DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/workchatseattle/community-backend/internal/adapter/postgres"
	eventrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/event"
	tagrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/tag"
	"github.com/workchatseattle/community-backend/internal/app"
	"github.com/workchatseattle/community-backend/internal/app/seeder"
	"github.com/workchatseattle/community-backend/internal/config"
)

var (
	_ seeder.TagWriter   = (*tagrepo.Repo)(nil)
	_ seeder.EventWriter = (*eventrepo.Repo)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: industries,expertise)")
	eventsFlag := flag.Bool("events", false, "also seed sample events")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	vocab, err := seeder.LoadVocabulary(seederCfg.VocabularyPath)
	if err != nil {
		logger.Error("load vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	phases := slices.Clone(seeder.DefaultPhases)
	if *phaseFlag != "" {
		phases = nil
		for _, ph := range strings.Split(*phaseFlag, ",") {
			if ph = strings.TrimSpace(ph); ph != "" {
				phases = append(phases, ph)
			}
		}
	}
	if *eventsFlag && !slices.Contains(phases, seeder.PhaseEvents) {
		phases = append(phases, seeder.PhaseEvents)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, tagrepo.New(pool), eventrepo.New(pool), vocab, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
