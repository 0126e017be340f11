package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	activityservice "github.com/mvidela/go_club_backend/internal/app/activity"
	instructorservice "github.com/mvidela/go_club_backend/internal/app/instructor"
	memberservice "github.com/mvidela/go_club_backend/internal/app/member"
	paymentservice "github.com/mvidela/go_club_backend/internal/app/payment"

	"github.com/mvidela/go_club_backend/internal/adapter/notify"
	"github.com/mvidela/go_club_backend/internal/adapter/storage/snapshot"
	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/config"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)
	slog.SetDefault(logger)

	store := snapshot.NewStore(cfg.Storage.Dir, logger)

	reg := registry.New()
	if snap, err := store.Load(); err != nil {
		if errors.Is(err, snapshot.ErrNoData) {
			logger.Info("no saved data found, starting with an empty registry")
		} else {
			logger.Error("failed to load saved data", "error", err)
		}
	} else {
		restored, err := snap.Restore()
		if err != nil {
			logger.Error("failed to restore saved data", "error", err)
		} else {
			reg = restored
			logger.Info("state restored",
				"members", len(reg.Members()),
				"activities", len(reg.Activities()),
				"instructors", len(reg.Instructors()),
				"payments", len(reg.Payments()),
			)
		}
	}

	activities := activityservice.New(reg, &notify.TournamentDesk{Logger: logger}, logger)
	activities.Resubscribe()

	strategies := member.NewStrategies(cfg.Fees.Premium, cfg.Fees.Minor)
	members := memberservice.New(reg, activities, strategies, logger)
	instructors := instructorservice.New(reg, logger)
	payments := paymentservice.New(reg, logger, &notify.PaymentDesk{Logger: logger})

	runDemo(reg, members, activities, instructors, payments, logger)

	if err := store.Save(snapshot.Take(reg)); err != nil {
		logger.Error("failed to save state", "error", err)
		os.Exit(1)
	}
}

// runDemo drives a scripted sequence of service calls exercising the
// whole public surface: entity creation, relations, fee calculation,
// tournaments, payments and cascading deletion.
func runDemo(
	reg *registry.Registry,
	members *memberservice.Service,
	activities *activityservice.Service,
	instructors *instructorservice.Service,
	payments *paymentservice.Service,
	logger *slog.Logger,
) {
	reg.Reset()

	age := 12
	ana, _ := members.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	carlos, _ := members.Create(member.KindPremium, "Carlos Gomez", "35789012", nil)
	maria, _ := members.Create(member.KindMinor, "Maria Perez", "50456789", &age)

	cost := 25000.0
	capacity := 10
	tennis, _ := activities.Create("Tennis", &cost, &capacity)
	swimming, _ := activities.Create("Swimming", nil, nil)

	juan, _ := instructors.Create("Juan Martinez", "25123456", 150000)
	laura, _ := instructors.Create("Laura Sanchez", "28456789", 180000)

	_ = activities.AssignInstructor(tennis.Name, juan.ID)
	_ = activities.AssignInstructor(swimming.Name, laura.ID)

	_ = activities.Enroll(tennis.Name, ana.ID)
	_ = activities.Enroll(swimming.Name, ana.ID)
	_ = activities.Enroll(tennis.Name, carlos.ID)
	_ = activities.Enroll(swimming.Name, maria.ID)

	for _, m := range []*member.Member{ana, carlos, maria} {
		if desc, err := members.DescribeFee(m.ID); err == nil {
			fmt.Printf("%s: %s\n", m.Name, desc)
		}
	}

	if _, err := activities.CreateTournament(tennis.Name, "Spring Open", "", 5000); err == nil {
		_ = activities.EnrollInTournament(tennis.Name, "Spring Open", ana.ID)
		_ = activities.EnrollInTournament(tennis.Name, "Spring Open", carlos.ID)
	}

	fee, _ := members.CalculateFee(ana.ID)
	if _, err := payments.Record(ana.ID, fee, payment.MethodCard); err != nil {
		logger.Error("failed to record payment", "error", err)
	}
	_, _ = payments.Record(carlos.ID, 30000, payment.MethodTransfer)

	_ = payments.SendReminder(maria.ID, 15000, "2026-09-10")
	_ = payments.MarkOverdue(maria.ID, 15000)

	fmt.Printf("total collected: $%v\n", payments.TotalCollected())
	for method, total := range payments.TotalsByMethod() {
		fmt.Printf("  %s: $%v\n", method, total)
	}
	fmt.Printf("instructor payroll: $%v\n", instructors.TotalPayroll())

	if _, err := members.Modify(ana.ID, member.KindPremium, nil); err != nil {
		logger.Error("failed to modify member", "error", err)
	}

	if err := activities.Delete(swimming.Name); err != nil {
		logger.Error("failed to delete activity", "error", err)
	}
	if err := instructors.Delete(laura.ID); err != nil {
		logger.Error("failed to delete instructor", "error", err)
	}

	logger.Info("demo finished",
		"members", len(members.List()),
		"activities", len(activities.List()),
		"instructors", len(instructors.List()),
		"payments", len(payments.List()),
	)
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
