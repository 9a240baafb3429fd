package service

import (
	"fmt"
	"suraksha/models"
	"suraksha/repository"
	"suraksha/utils"
)

// UserService handles account registration, login, profile and guardian
// contact management for citizens.
type UserService struct {
	userRepo    *repository.UserRepository
	officerRepo *repository.OfficerRepository
	jwtSecret   []byte
	tokenHours  int
}

// NewUserService creates a new user service
func NewUserService(
	userRepo *repository.UserRepository,
	officerRepo *repository.OfficerRepository,
	jwtSecret string,
	tokenHours int,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		officerRepo: officerRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenHours:  tokenHours,
	}
}

// Register creates a citizen account and issues a token
func (s *UserService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateUserJWT(user.UserID, s.jwtSecret, s.tokenHours)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, Role: user.Role}, nil
}

// Login authenticates a citizen (or admin) account and issues a token
func (s *UserService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := utils.GenerateUserJWT(user.UserID, s.jwtSecret, s.tokenHours)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, Role: user.Role}, nil
}

// PoliceLogin authenticates an officer account and issues a police-scoped token
func (s *UserService) PoliceLogin(req *models.LoginRequest) (*models.AuthResponse, error) {
	officer, err := s.officerRepo.GetOfficerByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := utils.CheckPassword(req.Password, officer.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := utils.GenerateOfficerJWT(officer.OfficerID, officer.StationID, s.jwtSecret, s.tokenHours)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, Role: models.RolePolice}, nil
}

// GetUser loads a user by ID
func (s *UserService) GetUser(userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(userID)
}

// GetUserRole returns the role of a user account (auth middleware lookup)
func (s *UserService) GetUserRole(userID int64) (models.Role, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// UpdateLocation persists the user's last known location
func (s *UserService) UpdateLocation(userID int64, lat, lng float64) error {
	return s.userRepo.UpdateUserLocation(userID, lat, lng)
}

// GetGuardians lists the user's guardian contacts
func (s *UserService) GetGuardians(userID int64) ([]models.Guardian, error) {
	return s.userRepo.GetGuardiansByUserID(userID)
}

// AddGuardian adds a guardian contact, enforcing the per-user cap.
func (s *UserService) AddGuardian(userID int64, req *models.GuardianRequest) (*models.Guardian, error) {
	count, err := s.userRepo.CountGuardians(userID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxGuardiansPerUser {
		return nil, fmt.Errorf("guardian limit reached")
	}

	guardian := &models.Guardian{
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	if err := s.userRepo.CreateGuardian(guardian); err != nil {
		return nil, err
	}
	return guardian, nil
}

// UpdateGuardian updates a guardian contact; only the owner may update.
func (s *UserService) UpdateGuardian(userID, guardianID int64, req *models.GuardianRequest) (*models.Guardian, error) {
	ownerID, err := s.userRepo.GetGuardianOwnerID(guardianID)
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, fmt.Errorf("forbidden")
	}

	guardian := &models.Guardian{
		GuardianID: guardianID,
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := s.userRepo.UpdateGuardian(guardian); err != nil {
		return nil, err
	}
	return guardian, nil
}

// DeleteGuardian removes a guardian contact; only the owner may delete.
func (s *UserService) DeleteGuardian(userID, guardianID int64) error {
	ownerID, err := s.userRepo.GetGuardianOwnerID(guardianID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return fmt.Errorf("forbidden")
	}
	return s.userRepo.DeleteGuardian(guardianID)
}
