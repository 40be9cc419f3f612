package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dayline/dayline/internal/config"
	"github.com/dayline/dayline/internal/utils"
	"github.com/dayline/dayline/pkg/advice"
	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/daylog"
	"github.com/dayline/dayline/pkg/history"
	"github.com/dayline/dayline/pkg/profile"
	"github.com/dayline/dayline/pkg/timeline"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Registry        *category.Registry
	CategoryHandler *category.Handler

	DayLogRepository daylog.Repository
	DayLogService    daylog.Service
	DayLogHandler    *daylog.Handler

	TimelineBuilder *timeline.Builder
	TimelineService timeline.Service
	TimelineHandler *timeline.Handler
	BarRenderer     *timeline.BarRenderer

	ProfileService profile.Service
	ProfileHandler *profile.Handler

	SummaryGroups  history.Groups
	HistoryService history.Service
	CsvRenderer    *history.CsvRendererImpl
	HistoryHandler *history.Handler

	AdviceService advice.Service
	AdviceHandler *advice.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(ctx context.Context, db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.Registry = category.Default()
	deps.CategoryHandler = category.NewHandler(deps.Registry)

	deps.DayLogRepository = daylog.NewRepository(db, deps.Clock)
	deps.DayLogService = daylog.NewService(deps.DayLogRepository, deps.Registry)
	deps.DayLogHandler = daylog.NewHandler(deps.DayLogService, deps.Registry)

	deps.TimelineBuilder = timeline.NewBuilder(deps.Registry.Uncovered())
	deps.TimelineService = timeline.NewService(deps.DayLogService, deps.TimelineBuilder, deps.Clock)
	deps.TimelineHandler = timeline.NewHandler(deps.TimelineService, deps.Registry)
	deps.BarRenderer = timeline.NewBarRenderer(deps.Registry, timeline.DefaultBarWidth)

	deps.ProfileService = profile.NewService(profile.NewRepository(db), profile.Profile{
		Name:        cfg.Profile.Name,
		TargetSleep: cfg.Profile.TargetSleep,
		TargetStudy: cfg.Profile.TargetStudy,
	})
	deps.ProfileHandler = profile.NewHandler(deps.ProfileService)

	groups, err := history.NewGroups(deps.Registry, cfg.Summary.Groups)
	if err != nil {
		return nil, fmt.Errorf("invalid summary groups: %w", err)
	}
	deps.SummaryGroups = groups
	deps.HistoryService = history.NewService(deps.DayLogService.GetHistory, groups)
	deps.CsvRenderer = history.NewCsvRenderer()
	deps.HistoryHandler = history.NewHandler(deps.HistoryService, deps.ProfileService, deps.CsvRenderer)

	var generator advice.Generator
	if cfg.Advice.Enabled() {
		gemini, err := advice.NewGeminiGenerator(ctx, cfg.Advice)
		if err != nil {
			return nil, err
		}
		generator = gemini
	} else {
		log.Warn("advice API key not configured, advice generation is disabled")
	}
	deps.AdviceService = advice.NewService(generator, deps.HistoryService, deps.ProfileService)
	deps.AdviceHandler = advice.NewHandler(deps.AdviceService)

	return deps, nil
}
