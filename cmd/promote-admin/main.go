package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/repository"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Promotes a staff user to admin by username or email.
// Usage: promote-admin <username-or-email>
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: promote-admin <username-or-email>")
		os.Exit(1)
	}
	identifier := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	staffRepo := repository.NewStaffRepository(db)
	staff, err := staffRepo.FindStaffByUsernameOrEmail(identifier)
	if err != nil {
		log.Fatalf("User %q not found", identifier)
	}
	if staff.IsAdmin {
		fmt.Printf("User %q is already an admin\n", identifier)
		return
	}
	staff.IsAdmin = true
	if err := staffRepo.UpdateStaff(staff); err != nil {
		log.Fatalf("Could not promote user: %v", err)
	}
	fmt.Printf("Promoted %q to admin\n", identifier)
}
