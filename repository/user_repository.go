package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
)

// UserRepository handles database operations for users and their guardians
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new user account
func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	user.UserID = userID
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(userID int64) (*models.User, error) {
	query := `
		SELECT user_id, name, email, phone, password_hash, role,
			longitude, latitude, created_at, updated_at
		FROM users
		WHERE user_id = ?
	`

	var user models.User
	err := r.db.QueryRow(query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.Longitude,
		&user.Latitude,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email (login lookup)
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT user_id, name, email, phone, password_hash, role,
			longitude, latitude, created_at, updated_at
		FROM users
		WHERE email = ?
	`

	var user models.User
	err := r.db.QueryRow(query, email).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.Longitude,
		&user.Latitude,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateUserLocation persists the user's last known location
func (r *UserRepository) UpdateUserLocation(userID int64, lat, lng float64) error {
	query := `
		UPDATE users
		SET latitude = ?, longitude = ?, updated_at = NOW()
		WHERE user_id = ?
	`

	_, err := r.db.Exec(query, lat, lng, userID)
	if err != nil {
		return fmt.Errorf("failed to update user location: %w", err)
	}
	return nil
}

// CreateGuardian adds a guardian contact for a user
func (r *UserRepository) CreateGuardian(guardian *models.Guardian) error {
	query := `
		INSERT INTO guardians (user_id, name, phone, email)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		guardian.UserID,
		guardian.Name,
		guardian.Phone,
		guardian.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create guardian: %w", err)
	}

	guardianID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get guardian ID: %w", err)
	}

	guardian.GuardianID = guardianID
	return nil
}

// GetGuardiansByUserID retrieves all guardian contacts of a user
func (r *UserRepository) GetGuardiansByUserID(userID int64) ([]models.Guardian, error) {
	query := `
		SELECT guardian_id, user_id, name, phone, email, created_at
		FROM guardians
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guardians: %w", err)
	}
	defer rows.Close()

	var guardians []models.Guardian
	for rows.Next() {
		var g models.Guardian
		err := rows.Scan(&g.GuardianID, &g.UserID, &g.Name, &g.Phone, &g.Email, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guardian: %w", err)
		}
		guardians = append(guardians, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guardians: %w", err)
	}

	return guardians, nil
}

// CountGuardians returns the number of guardian contacts a user has
func (r *UserRepository) CountGuardians(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM guardians WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count guardians: %w", err)
	}
	return count, nil
}

// GetGuardianOwnerID returns the user_id owning the guardian, or error if not found.
func (r *UserRepository) GetGuardianOwnerID(guardianID int64) (int64, error) {
	var userID int64
	err := r.db.QueryRow(`SELECT user_id FROM guardians WHERE guardian_id = ?`, guardianID).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("guardian not found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get guardian owner: %w", err)
	}
	return userID, nil
}

// UpdateGuardian updates a guardian contact
func (r *UserRepository) UpdateGuardian(guardian *models.Guardian) error {
	query := `
		UPDATE guardians
		SET name = ?, phone = ?, email = ?
		WHERE guardian_id = ?
	`

	_, err := r.db.Exec(query, guardian.Name, guardian.Phone, guardian.Email, guardian.GuardianID)
	if err != nil {
		return fmt.Errorf("failed to update guardian: %w", err)
	}
	return nil
}

// DeleteGuardian removes a guardian contact
func (r *UserRepository) DeleteGuardian(guardianID int64) error {
	_, err := r.db.Exec(`DELETE FROM guardians WHERE guardian_id = ?`, guardianID)
	if err != nil {
		return fmt.Errorf("failed to delete guardian: %w", err)
	}
	return nil
}
