package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/database"
	"github.com/raisultan/elj-backend/internal/logger"
)

// Seeds a minimal journal dataset: one study year, two classes, four
// subjects, students and a spread of marks. Safe to re-run: reference
// rows are looked up before insert and student/mark inserts are skipped
// when the class already has students.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding Journal Data ===")

	// Study year
	year := 2026
	var yearID int
	err = pool.QueryRow(ctx, "SELECT id FROM study_years WHERE year = $1", year).Scan(&yearID)
	if err != nil {
		if err == pgx.ErrNoRows {
			if err := pool.QueryRow(ctx,
				"INSERT INTO study_years (year) VALUES ($1) RETURNING id", year,
			).Scan(&yearID); err != nil {
				log.Fatal().Err(err).Msg("Failed to create study year")
			}
			fmt.Printf("Created study year %d with ID: %d\n", year, yearID)
		} else {
			log.Fatal().Err(err).Msg("Failed to check existing study year")
		}
	} else {
		fmt.Printf("Found existing study year with ID: %d\n", yearID)
	}

	// School
	var schoolID int
	err = pool.QueryRow(ctx, "SELECT id FROM schools WHERE name = $1", "Gymnasium No. 5").Scan(&schoolID)
	if err != nil {
		if err == pgx.ErrNoRows {
			if err := pool.QueryRow(ctx,
				"INSERT INTO schools (name, address, phone) VALUES ($1, $2, $3) RETURNING id",
				"Gymnasium No. 5", "12 Abay Avenue", "+7 727 000 0000",
			).Scan(&schoolID); err != nil {
				log.Fatal().Err(err).Msg("Failed to create school")
			}
			fmt.Printf("Created school with ID: %d\n", schoolID)
		} else {
			log.Fatal().Err(err).Msg("Failed to check existing school")
		}
	} else {
		fmt.Printf("Found existing school with ID: %d\n", schoolID)
	}

	// Subjects
	subjectNames := []string{"Mathematics", "English", "Physics", "History"}
	subjectIDs := make([]int, 0, len(subjectNames))
	for _, name := range subjectNames {
		var id int
		err = pool.QueryRow(ctx, "SELECT id FROM subjects WHERE name = $1", name).Scan(&id)
		if err != nil {
			if err == pgx.ErrNoRows {
				if err := pool.QueryRow(ctx,
					"INSERT INTO subjects (name, study_year_id) VALUES ($1, $2) RETURNING id",
					name, yearID,
				).Scan(&id); err != nil {
					log.Fatal().Err(err).Msgf("Failed to create subject %s", name)
				}
				fmt.Printf("Created subject %s with ID: %d\n", name, id)
			} else {
				log.Fatal().Err(err).Msg("Failed to check existing subject")
			}
		}
		subjectIDs = append(subjectIDs, id)
	}

	// Classes
	classNames := []string{"5A", "5B"}
	classIDs := make([]int, 0, len(classNames))
	for _, name := range classNames {
		var id int
		err = pool.QueryRow(ctx, "SELECT id FROM student_classes WHERE name = $1", name).Scan(&id)
		if err != nil {
			if err == pgx.ErrNoRows {
				if err := pool.QueryRow(ctx,
					"INSERT INTO student_classes (name, study_year_id) VALUES ($1, $2) RETURNING id",
					name, yearID,
				).Scan(&id); err != nil {
					log.Fatal().Err(err).Msgf("Failed to create class %s", name)
				}
				fmt.Printf("Created class %s with ID: %d\n", name, id)
			} else {
				log.Fatal().Err(err).Msg("Failed to check existing class")
			}
		}
		classIDs = append(classIDs, id)
	}

	type seedStudent struct {
		surname string
		name    string
	}
	names := []seedStudent{
		{"Bekova", "Aruzhan"}, {"Akhmetov", "Daniyar"}, {"Suleimenova", "Madina"},
		{"Zhaksybekov", "Timur"}, {"Nurlanova", "Aliya"}, {"Kassymov", "Arman"},
		{"Orazbekova", "Kamila"}, {"Baizhanov", "Nursultan"}, {"Yerzhanova", "Dana"},
		{"Tulegenov", "Alikhan"}, {"Abisheva", "Zhanel"}, {"Dauletov", "Miras"},
		{"Kairatova", "Aizere"}, {"Omarov", "Sanzhar"}, {"Aliyeva", "Tomiris"},
		{"Serikov", "Yerlan"}, {"Maratova", "Inzhu"}, {"Zhumabekov", "Dias"},
		{"Kenzhebaeva", "Assel"}, {"Saparov", "Adil"},
	}

	studentCount := 0
	markCount := 0
	markValues := []string{"5", "4", "3", "P", "A", "4", "5", "P"}

	for ci, classID := range classIDs {
		var existing int
		if err := pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM students WHERE student_class_id = $1", classID,
		).Scan(&existing); err != nil {
			log.Fatal().Err(err).Msg("Failed to count class students")
		}
		if existing > 0 {
			fmt.Printf("Class %s already has %d students, skipping\n", classNames[ci], existing)
			continue
		}

		half := len(names) / 2
		for i, st := range names[ci*half : ci*half+half] {
			var studentID int
			birthDate := time.Date(2015, time.Month(1+i%12), 1+i, 0, 0, 0, 0, time.UTC)
			if err := pool.QueryRow(ctx,
				`INSERT INTO students (surname, name, birth_date, student_class_id)
				 VALUES ($1, $2, $3, $4) RETURNING id`,
				st.surname, st.name, birthDate, classID,
			).Scan(&studentID); err != nil {
				fmt.Printf("Error creating student %s %s: %v\n", st.name, st.surname, err)
				continue
			}
			studentCount++

			// A week of marks per subject for each student
			for si, subjectID := range subjectIDs {
				for day := 0; day < 5; day++ {
					date := time.Date(2026, 9, 1+day, 0, 0, 0, 0, time.UTC)
					value := markValues[(i+si+day)%len(markValues)]
					if _, err := pool.Exec(ctx,
						`INSERT INTO marks (value, date, subject_id, student_id)
						 VALUES ($1, $2, $3, $4)`,
						value, date, subjectID, studentID,
					); err != nil {
						fmt.Printf("Error creating mark for %s %s: %v\n", st.name, st.surname, err)
						continue
					}
					markCount++
				}
			}
		}
	}

	fmt.Printf("\nSeed completed! Added %d students and %d marks.\n", studentCount, markCount)
}
