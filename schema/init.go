// Package schema: safe database initialization — create only missing tables, never drop or overwrite.

package schema

import (
	"database/sql"
	"log"
)

// InitializeDatabase ensures all tables exist. Checks INFORMATION_SCHEMA.TABLES
// and creates only missing tables, in dependency order. Never drops or
// recreates tables; never removes data.
func InitializeDatabase(db *sql.DB) {
	tables := []struct {
		name   string
		create func(*sql.DB)
	}{
		{"users", createUsersTable},
		{"guardians", createGuardiansTable},
		{"stations", createStationsTable},
		{"officers", createOfficersTable},
		{"alerts", createAlertsTable},
		{"alert_officers", createAlertOfficersTable},
		{"complaints", createComplaintsTable},
		{"chat_threads", createChatThreadsTable},
		{"chat_messages", createChatMessagesTable},
		{"trips", createTripsTable},
		{"notifications_log", createNotificationsLogTable},
	}

	for _, t := range tables {
		exists, err := tableExists(db, t.name)
		if err != nil {
			log.Fatalf("[SCHEMA] Failed to check if table %s exists: %v", t.name, err)
		}
		if exists {
			log.Printf("[SCHEMA] %s table exists", t.name)
			continue
		}
		t.create(db)
		log.Printf("[SCHEMA] created %s table", t.name)
	}
}

func tableExists(db *sql.DB, table string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?`,
		table,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mustExec(db *sql.DB, table, q string) {
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table %s: %v", table, err)
	}
}

func createUsersTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(15) NULL,
    password_hash VARCHAR(255) NOT NULL,
    role ENUM('user', 'admin') NOT NULL DEFAULT 'user',
    longitude DECIMAL(11, 8) NULL COMMENT 'Last known location',
    latitude DECIMAL(10, 8) NULL COMMENT 'Last known location',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "users", q)
}

func createGuardiansTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS guardians (
    guardian_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    user_id BIGINT NOT NULL,
    name VARCHAR(255) NOT NULL,
    phone VARCHAR(15) NULL,
    email VARCHAR(255) NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE,
    INDEX idx_guardians_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "guardians", q)
}

func createStationsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS stations (
    station_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    area VARCHAR(255) NULL,
    city VARCHAR(255) NULL,
    helpline VARCHAR(20) NULL,
    longitude DECIMAL(11, 8) NOT NULL,
    latitude DECIMAL(10, 8) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "stations", q)
}

func createOfficersTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS officers (
    officer_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    station_id BIGINT NOT NULL,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(15) NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'police',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    FOREIGN KEY (station_id) REFERENCES stations(station_id),
    INDEX idx_officers_station (station_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "officers", q)
}

func createAlertsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS alerts (
    alert_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    alert_number VARCHAR(50) UNIQUE NOT NULL COMMENT 'Public-facing alert number',
    user_id BIGINT NOT NULL,
    longitude DECIMAL(11, 8) NOT NULL,
    latitude DECIMAL(10, 8) NOT NULL,
    status ENUM('Active', 'Resolved', 'Cancelled') NOT NULL DEFAULT 'Active',
    assignment_status ENUM('Unassigned', 'Assigned', 'In Progress', 'Resolved') NOT NULL DEFAULT 'Unassigned',
    nearest_station_id BIGINT NULL,
    distance_to_station DOUBLE NULL COMMENT 'Meters',
    assigned_at TIMESTAMP NULL,
    guardian_notified BOOLEAN NOT NULL DEFAULT FALSE,
    guardian_count INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (nearest_station_id) REFERENCES stations(station_id),
    INDEX idx_alerts_user (user_id),
    INDEX idx_alerts_status (status, assignment_status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "alerts", q)
}

func createAlertOfficersTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS alert_officers (
    alert_id BIGINT NOT NULL,
    officer_id BIGINT NOT NULL,
    PRIMARY KEY (alert_id, officer_id),
    FOREIGN KEY (alert_id) REFERENCES alerts(alert_id) ON DELETE CASCADE,
    FOREIGN KEY (officer_id) REFERENCES officers(officer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "alert_officers", q)
}

func createComplaintsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS complaints (
    complaint_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    complaint_number VARCHAR(50) UNIQUE NOT NULL COMMENT 'Public-facing complaint number',
    user_id BIGINT NOT NULL,
    station_id BIGINT NOT NULL,
    title VARCHAR(500) NOT NULL,
    description TEXT NOT NULL,
    longitude DECIMAL(11, 8) NOT NULL,
    latitude DECIMAL(10, 8) NOT NULL,
    status ENUM('Pending', 'In Progress', 'Resolved') NOT NULL DEFAULT 'Pending',
    priority ENUM('Low', 'Medium', 'High', 'Critical') NOT NULL DEFAULT 'Medium',
    assigned_officer_id BIGINT NULL,
    resolved_at TIMESTAMP NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (station_id) REFERENCES stations(station_id),
    FOREIGN KEY (assigned_officer_id) REFERENCES officers(officer_id),
    INDEX idx_complaints_user (user_id),
    INDEX idx_complaints_station (station_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "complaints", q)
}

func createChatThreadsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS chat_threads (
    thread_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    user_id BIGINT NOT NULL,
    officer_id BIGINT NOT NULL,
    subject VARCHAR(500) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (officer_id) REFERENCES officers(officer_id),
    INDEX idx_chat_threads_user (user_id),
    INDEX idx_chat_threads_officer (officer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "chat_threads", q)
}

func createChatMessagesTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS chat_messages (
    message_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    thread_id BIGINT NOT NULL,
    sender_type ENUM('user', 'police') NOT NULL,
    sender_id BIGINT NOT NULL,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (thread_id) REFERENCES chat_threads(thread_id) ON DELETE CASCADE,
    INDEX idx_chat_messages_thread (thread_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "chat_messages", q)
}

func createTripsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS trips (
    trip_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    user_id BIGINT NOT NULL,
    origin_longitude DECIMAL(11, 8) NOT NULL,
    origin_latitude DECIMAL(10, 8) NOT NULL,
    destination_longitude DECIMAL(11, 8) NOT NULL,
    destination_latitude DECIMAL(10, 8) NOT NULL,
    departure_at TIMESTAMP NOT NULL,
    status ENUM('Open', 'Matched', 'Completed', 'Cancelled') NOT NULL DEFAULT 'Open',
    buddy_user_id BIGINT NULL,
    note VARCHAR(500) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (buddy_user_id) REFERENCES users(user_id),
    INDEX idx_trips_user (user_id),
    INDEX idx_trips_open (status, departure_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "trips", q)
}

func createNotificationsLogTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS notifications_log (
    notification_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    entity_type VARCHAR(50) NOT NULL COMMENT 'e.g. alert, complaint',
    entity_id BIGINT NOT NULL,
    channel ENUM('email', 'sms') NOT NULL,
    recipient VARCHAR(255) NOT NULL,
    subject VARCHAR(500) NULL,
    body TEXT NOT NULL,
    status ENUM('pending', 'sent', 'failed', 'retrying') NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    max_retries INT NOT NULL DEFAULT 3,
    next_retry_at TIMESTAMP NULL,
    sent_at TIMESTAMP NULL,
    failed_at TIMESTAMP NULL,
    error_message TEXT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    INDEX idx_notifications_pending (status, next_retry_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	mustExec(db, "notifications_log", q)
}
