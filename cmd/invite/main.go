package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorcrewz/database"
	"creatorcrewz/internal/config"
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services"
	"creatorcrewz/internal/validator"
)

func main() {
	var email string
	var ttl time.Duration
	var prune bool

	flag.StringVar(&email, "email", "", "Email address of the talent to invite")
	flag.DurationVar(&ttl, "ttl", services.DefaultInvitationTTL, "How long the invitation stays valid")
	flag.BoolVar(&prune, "prune", false, "Delete expired, unaccepted invitations and exit")
	flag.Parse()

	if email == "" && !prune {
		flag.Usage()
		os.Exit(2)
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	db = db.WithContext(ctx)

	svc := services.NewInvitationService(repositories.NewInvitationRepository(), validator.New())

	if prune {
		n, err := svc.PruneExpired(db)
		if err != nil {
			logger.Fatal("Failed to prune invitations", "error", err)
		}
		fmt.Printf("Deleted %d expired invitations\n", n)
		return
	}

	inv, err := svc.Issue(db, email, ttl)
	if err != nil {
		logger.Fatal("Failed to issue invitation", "email", email, "error", err)
	}

	fmt.Printf("Invitation for %s\n", inv.Email)
	fmt.Printf("  code:    %s\n", inv.Code)
	fmt.Printf("  expires: %s\n", inv.ExpiresAt.Format(time.RFC3339))
	fmt.Println("The code is shown once; only its hash is stored.")
}
