package main

import (
	"context"

	"github.com/safatanc/admin-console/injector"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"github.com/sirupsen/logrus"
)

// seed creates the default admin user if it does not exist yet.
func main() {
	config := infrastructures.LoadConfig()
	infrastructures.ConfigureLogger(config)

	userService := injector.InitializeUserService(config)

	user, created, err := userService.EnsureUser(context.Background(), &models.UserCreateRequest{
		Username: config.SEED_ADMIN_USERNAME,
		Password: config.SEED_ADMIN_PASSWORD,
		Name:     config.SEED_ADMIN_NAME,
	})
	if err != nil {
		logrus.Fatalf("Failed to seed admin user: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"id":       user.ID,
		"username": user.Username,
		"created":  created,
	}).Info("admin user ready")
}
