// verify_dispatch audits alert dispatch consistency: every alert whose
// assignment moved past Unassigned must carry a nearest station and at least
// one alert_officers row. Exits non-zero when violations are found.
// Usage: from project root, run: go run ./cmd/verify_dispatch
// Requires .env (or env) with DB_* variables.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"suraksha/config"
	"suraksha/schema"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found")
	}
	cfg := config.LoadConfig()

	dsn := cfg.Database.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("DB open: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("DB ping: %v", err)
	}
	schema.ValidateRequiredColumns(db, nil)

	violations := 0

	// 1) Assigned alerts must reference a station
	rows, err := db.Query(`
		SELECT alert_id, alert_number, assignment_status
		FROM alerts
		WHERE assignment_status IN ('Assigned', 'In Progress', 'Resolved')
		  AND nearest_station_id IS NULL
	`)
	if err != nil {
		log.Fatalf("Station check query: %v", err)
	}
	for rows.Next() {
		var id int64
		var number, status string
		if err := rows.Scan(&id, &number, &status); err != nil {
			log.Fatalf("Station check scan: %v", err)
		}
		violations++
		log.Printf("[VERIFY] alert #%d (%s): assignment_status=%s but nearest_station_id is NULL", id, number, status)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Station check rows: %v", err)
	}
	rows.Close()

	// 2) Assigned alerts must have officer rows
	rows, err = db.Query(`
		SELECT a.alert_id, a.alert_number, a.assignment_status
		FROM alerts a
		LEFT JOIN alert_officers ao ON ao.alert_id = a.alert_id
		WHERE a.assignment_status IN ('Assigned', 'In Progress')
		GROUP BY a.alert_id, a.alert_number, a.assignment_status
		HAVING COUNT(ao.officer_id) = 0
	`)
	if err != nil {
		log.Fatalf("Officer check query: %v", err)
	}
	for rows.Next() {
		var id int64
		var number, status string
		if err := rows.Scan(&id, &number, &status); err != nil {
			log.Fatalf("Officer check scan: %v", err)
		}
		violations++
		log.Printf("[VERIFY] alert #%d (%s): assignment_status=%s but no alert_officers rows", id, number, status)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Officer check rows: %v", err)
	}
	rows.Close()

	// 3) Terminated alerts must not sit in a live assignment state
	rows, err = db.Query(`
		SELECT alert_id, alert_number, status, assignment_status
		FROM alerts
		WHERE status IN ('Resolved', 'Cancelled')
		  AND assignment_status IN ('Assigned', 'In Progress')
	`)
	if err != nil {
		log.Fatalf("Terminal check query: %v", err)
	}
	for rows.Next() {
		var id int64
		var number, status, assignment string
		if err := rows.Scan(&id, &number, &status, &assignment); err != nil {
			log.Fatalf("Terminal check scan: %v", err)
		}
		violations++
		log.Printf("[VERIFY] alert #%d (%s): status=%s but assignment_status=%s", id, number, status, assignment)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Terminal check rows: %v", err)
	}
	rows.Close()

	if violations > 0 {
		log.Printf("[VERIFY] FAILED: %d dispatch violation(s)", violations)
		os.Exit(1)
	}
	log.Println("[VERIFY] OK: all assigned alerts carry a station and officers")
}
