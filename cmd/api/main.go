package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/config"
	rosterDomain "github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	appHTTP "github.com/cmlabs-hris/roster-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/roster-backend-go/internal/repository/postgresql"
	rosterService "github.com/cmlabs-hris/roster-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftSystemRepo := postgresql.NewShiftSystemRepository(db)
	personnelRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	substituteRepo := postgresql.NewSubstituteRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	rosterSvc := rosterService.NewRosterService(
		shiftSystemRepo,
		personnelRepo,
		leaveRepo,
		substituteRepo,
		assignmentRepo,
		rosterService.Config{
			LegalMonthlyHours:    cfg.Roster.LegalMonthlyHours,
			StandardShiftHours:   cfg.Roster.StandardShiftHours,
			SubstituteHourlyRate: cfg.Roster.SubstituteHourlyRate,
		},
	)

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	shiftSystemHandler := appHTTP.NewShiftSystemHandler(shiftSystemRepo)

	if cfg.Roster.AutoGenerate {
		scheduler := cron.NewScheduler()
		scheduler.AddJob("pregenerate-next-month", cfg.Roster.AutoGenerateInterval, func(ctx context.Context) error {
			systems, err := shiftSystemRepo.ListAll(ctx)
			if err != nil {
				return err
			}

			next := time.Now().UTC().AddDate(0, 1, 0)
			for _, system := range systems {
				_, err := rosterSvc.Generate(ctx, rosterDomain.GenerateRequest{
					ProjectID:     system.ProjectID,
					Year:          next.Year(),
					Month:         int(next.Month()),
					ShiftSystemID: system.ID,
				})
				if err != nil {
					return fmt.Errorf("pre-generation for project %s: %w", system.ProjectID, err)
				}
			}
			return nil
		})
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(JWTService, rosterHandler, shiftSystemHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
