package service

import (
	"fmt"
	"suraksha/models"
	"suraksha/repository"
)

// ComplaintService handles non-emergency complaint filing, triage and
// officer assignment.
type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	officerRepo   *repository.OfficerRepository
	stationRepo   *repository.StationRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo *repository.ComplaintRepository,
	officerRepo *repository.OfficerRepository,
	stationRepo *repository.StationRepository,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		officerRepo:   officerRepo,
		stationRepo:   stationRepo,
	}
}

// CreateComplaint files a complaint against a station. Priority defaults
// to Medium when omitted.
func (s *ComplaintService) CreateComplaint(userID int64, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	priority := models.PriorityMedium
	if req.Priority != "" {
		if !models.ValidComplaintPriority(req.Priority) {
			return nil, fmt.Errorf("invalid priority")
		}
		priority = req.Priority
	}

	if _, err := s.stationRepo.GetStationByID(req.StationID); err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		ComplaintNumber: s.complaintRepo.GenerateComplaintNumber(),
		UserID:          userID,
		StationID:       req.StationID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        models.GeoPoint{Longitude: *req.Lng, Latitude: *req.Lat},
		Status:          models.ComplaintStatusPending,
		Priority:        priority,
	}
	if err := s.complaintRepo.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// GetComplaint loads one complaint; citizens may only see their own,
// officers only those filed against their station.
func (s *ComplaintService) GetComplaint(principal *models.Principal, complaintID int64) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	if !canViewComplaint(principal, complaint) {
		return nil, fmt.Errorf("forbidden")
	}
	return complaint, nil
}

// GetUserComplaints lists the caller's complaints
func (s *ComplaintService) GetUserComplaints(userID int64) ([]models.Complaint, error) {
	return s.complaintRepo.GetComplaintsByUserID(userID)
}

// GetStationComplaints lists complaints filed against a station
func (s *ComplaintService) GetStationComplaints(stationID int64) ([]models.Complaint, error) {
	return s.complaintRepo.GetComplaintsByStationID(stationID)
}

// UpdateStatus moves a complaint through its lifecycle. Only officers of
// the complaint's station and admins may update.
func (s *ComplaintService) UpdateStatus(principal *models.Principal, complaintID int64, status models.ComplaintStatus) (*models.Complaint, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, fmt.Errorf("invalid status")
	}

	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	if !canManageComplaint(principal, complaint) {
		return nil, fmt.Errorf("forbidden")
	}

	if err := s.complaintRepo.UpdateComplaintStatus(complaintID, status); err != nil {
		return nil, err
	}
	return s.complaintRepo.GetComplaintByID(complaintID)
}

// AssignOfficer assigns an officer to a complaint. The officer must belong
// to the station the complaint was filed against; a mismatch leaves the
// complaint untouched.
func (s *ComplaintService) AssignOfficer(principal *models.Principal, complaintID, officerID int64) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	if !canManageComplaint(principal, complaint) {
		return nil, fmt.Errorf("forbidden")
	}

	officer, err := s.officerRepo.GetOfficerByID(officerID)
	if err != nil {
		return nil, err
	}
	if officer.StationID != complaint.StationID {
		return nil, fmt.Errorf("officer does not belong to the complaint station")
	}

	if err := s.complaintRepo.AssignOfficer(complaintID, officerID); err != nil {
		return nil, err
	}
	return s.complaintRepo.GetComplaintByID(complaintID)
}

func canViewComplaint(principal *models.Principal, complaint *models.Complaint) bool {
	if principal.IsAdmin() {
		return true
	}
	switch principal.Role {
	case models.RoleUser:
		return principal.UserID == complaint.UserID
	case models.RolePolice:
		return principal.StationID == complaint.StationID
	}
	return false
}

func canManageComplaint(principal *models.Principal, complaint *models.Complaint) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.Role == models.RolePolice && principal.StationID == complaint.StationID
}
