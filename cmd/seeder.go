package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample faculty accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"conferences", "journals", "patents", "workshops", "auth_identities", "faculty"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		accounts := []struct {
			Name       string
			Email      string
			Department string
			Role       string
			Phone      string
		}{
			{"Meera Pillai", "meera.hod@college.edu", "Physics", "hod", "9000000001"},
			{"Arjun Nair", "arjun@college.edu", "Physics", "faculty", "9000000002"},
			{"Divya Menon", "divya@college.edu", "Physics", "faculty", "9000000003"},
			{"Ravi Shankar", "ravi.hod@college.edu", "Mathematics", "hod", "9000000004"},
			{"Lakshmi Iyer", "lakshmi@college.edu", "Mathematics", "faculty", "9000000005"},
			{"Tom Varghese", "tom.editor@college.edu", "Administration", "editor", "9000000006"},
		}

		for _, a := range accounts {
			var exists int
			row := db.Raw("SELECT 1 FROM faculty WHERE faculty_email = ?", a.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("faculty %s already exists, skipping\n", a.Email)
				continue
			}

			if err := db.Exec(
				"INSERT INTO faculty (faculty_name, faculty_department, faculty_role, faculty_email, faculty_phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				a.Name, a.Department, a.Role, a.Email, a.Phone,
			).Error; err != nil {
				log.Fatalf("failed to insert faculty %s: %v", a.Email, err)
			}

			var facultyID int64
			if err := db.Raw("SELECT id FROM faculty WHERE faculty_email = ?", a.Email).Row().Scan(&facultyID); err != nil {
				log.Fatalf("failed to lookup faculty id for %s: %v", a.Email, err)
			}

			if err := db.Exec(
				"INSERT INTO auth_identities (faculty_id, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, now(), now())",
				facultyID, a.Email, string(hash),
			).Error; err != nil {
				log.Fatalf("failed to insert identity for %s: %v", a.Email, err)
			}

			fmt.Printf("Seeded %s account: %s (%s)\n", a.Role, a.Email, a.Department)
		}

		fmt.Println("Seeding complete; all accounts use password:", password)
	},
}
