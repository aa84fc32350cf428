package main

import (
	"context"
	"log"
	"os"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
)

// Seeds the initial admin user. Idempotent: exits cleanly if the username
// already exists.
func main() {
	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	ctx := context.Background()

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		log.Fatalf("check admin user: %v", err)
	}
	if count > 0 {
		log.Printf("admin user %q already exists", username)
		return
	}

	user, err := models.CreateUser(ctx, &models.NewUser{
		Name:     "Administrator",
		Username: username,
		Password: password,
		Role:     models.UserRoleAdmin,
	})
	if err != nil {
		log.Fatalf("create admin user: %v", err)
	}
	log.Printf("created admin user %q (id=%d)", user.Username, user.ID)
}
