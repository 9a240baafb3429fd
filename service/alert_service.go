package service

import (
	"fmt"
	"log"
	"strings"
	"suraksha/models"
	"suraksha/repository"
	"suraksha/utils"
	"sync"
	"time"
)

// AlertService owns the SOS alert lifecycle: trigger, officer assignment,
// progress, resolve and cancel. It orchestrates the station locator,
// officer selection and guardian notification dispatch.
type AlertService struct {
	alertRepo           *repository.AlertRepository
	userRepo            *repository.UserRepository
	officerRepo         *repository.OfficerRepository
	stationRepo         *repository.StationRepository
	locator             *StationLocator
	notificationService *NotificationService
	officersPerAlert    int
}

// NewAlertService creates a new alert service
func NewAlertService(
	alertRepo *repository.AlertRepository,
	userRepo *repository.UserRepository,
	officerRepo *repository.OfficerRepository,
	stationRepo *repository.StationRepository,
	locator *StationLocator,
	notificationService *NotificationService,
	officersPerAlert int,
) *AlertService {
	if officersPerAlert <= 0 {
		officersPerAlert = 2
	}
	return &AlertService{
		alertRepo:           alertRepo,
		userRepo:            userRepo,
		officerRepo:         officerRepo,
		stationRepo:         stationRepo,
		locator:             locator,
		notificationService: notificationService,
		officersPerAlert:    officersPerAlert,
	}
}

// TriggerSOS creates an Active alert for the user's location and runs the
// dispatch chain: nearest-station lookup, officer assignment, guardian
// notification. Once the alert row exists the request succeeds; failures
// in any later step only soften the response message. An emergency signal
// must never fail because of a downstream convenience feature.
func (s *AlertService) TriggerSOS(userID int64, lat, lng float64) (*models.SOSResponse, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	// Persist the triggering user's current location. Non-fatal.
	if err := s.userRepo.UpdateUserLocation(userID, lat, lng); err != nil {
		log.Printf("[sos] failed to persist user location: %v", err)
	}

	guardians, err := s.userRepo.GetGuardiansByUserID(userID)
	if err != nil {
		log.Printf("[sos] failed to load guardians: %v", err)
		guardians = nil
	}

	alert := &models.Alert{
		AlertNumber:      s.alertRepo.GenerateAlertNumber(),
		UserID:           userID,
		Location:         models.GeoPoint{Longitude: lng, Latitude: lat},
		Status:           models.AlertStatusActive,
		AssignmentStatus: models.AssignmentUnassigned,
		GuardianNotified: len(guardians) > 0,
		GuardianCount:    len(guardians),
	}
	if err := s.alertRepo.CreateAlert(alert); err != nil {
		return nil, err
	}

	var notes []string
	data := &models.SOSData{
		AlertID:       alert.AlertID,
		AlertNumber:   alert.AlertNumber,
		Location:      models.LatLng{Lat: lat, Lng: lng},
		GuardianCount: len(guardians),
		Timestamp:     alert.CreatedAt,
	}
	if data.Timestamp.IsZero() {
		data.Timestamp = time.Now().UTC()
	}

	station, officers, distance, note := s.dispatchToStation(alert)
	if note != "" {
		notes = append(notes, note)
	}
	data.NearestStation = station
	data.AssignedOfficers = officers
	if station != nil {
		data.DistanceToStation = &distance
	}

	if len(guardians) == 0 {
		notes = append(notes, "no guardians on file; alert routed to the nearest station only")
	} else if !s.notifyGuardians(alert, user, guardians) {
		notes = append(notes, "guardian notification failed; alert was still dispatched")
	}

	message := "SOS alert triggered"
	if len(notes) > 0 {
		message = message + " (" + strings.Join(notes, "; ") + ")"
	}

	return &models.SOSResponse{
		Success: true,
		Message: message,
		Data:    data,
	}, nil
}

// dispatchToStation runs nearest-station lookup and officer assignment for
// a freshly created alert. All failures come back as a note string; the
// trigger flow never aborts on them.
func (s *AlertService) dispatchToStation(alert *models.Alert) (*models.Station, []models.Officer, float64, string) {
	station, distanceMeters, err := s.locator.NearestStation(alert.Location.Latitude, alert.Location.Longitude)
	if err != nil {
		log.Printf("[sos] station lookup failed for alert #%d: %v", alert.AlertID, err)
		return nil, nil, 0, "station lookup failed"
	}
	if station == nil {
		return nil, nil, 0, "no police station within search range"
	}

	if err := s.alertRepo.SetNearestStation(alert.AlertID, station.StationID, distanceMeters); err != nil {
		log.Printf("[sos] failed to persist nearest station for alert #%d: %v", alert.AlertID, err)
	}

	officers, err := s.officerRepo.GetOfficersByStation(station.StationID, s.officersPerAlert)
	if err != nil {
		log.Printf("[sos] officer lookup failed for alert #%d: %v", alert.AlertID, err)
		return station, nil, distanceMeters, "officer assignment failed"
	}
	if len(officers) == 0 {
		return station, nil, distanceMeters, "no officers available at the nearest station"
	}

	officerIDs := make([]int64, len(officers))
	for i, o := range officers {
		officerIDs[i] = o.OfficerID
	}
	assignment := &models.AlertAssignment{
		AlertID:           alert.AlertID,
		StationID:         station.StationID,
		OfficerIDs:        officerIDs,
		DistanceToStation: distanceMeters,
		AssignedAt:        time.Now().UTC(),
	}
	if err := s.alertRepo.ApplyAssignment(assignment); err != nil {
		log.Printf("[sos] officer assignment failed for alert #%d: %v", alert.AlertID, err)
		return station, nil, distanceMeters, "officer assignment failed"
	}

	return station, officers, distanceMeters, ""
}

// notifyGuardians emails every guardian in parallel and waits for all
// sends. Returns true when every send succeeded. Each send is also queued
// in the notification log so the worker retries failures later.
func (s *AlertService) notifyGuardians(alert *models.Alert, user *models.User, guardians []models.Guardian) bool {
	var wg sync.WaitGroup
	failures := make(chan error, len(guardians))

	for _, guardian := range guardians {
		wg.Add(1)
		go func(g models.Guardian) {
			defer wg.Done()
			if err := s.notificationService.SendGuardianAlert(alert, user, &g); err != nil {
				failures <- err
			}
		}(guardian)
	}

	wg.Wait()
	close(failures)

	allOK := true
	for err := range failures {
		allOK = false
		log.Printf("[sos] guardian notification failed for alert #%d: %v", alert.AlertID, err)
	}
	return allOK
}

// AssignOfficers binds up to N officers of the given station to an alert.
// Calling it again replaces the previous assignment entirely.
func (s *AlertService) AssignOfficers(alertID, stationID int64) (*models.AssignOfficersResponse, error) {
	alert, err := s.alertRepo.GetAlertByID(alertID)
	if err != nil {
		return nil, err
	}

	officers, err := s.officerRepo.GetOfficersByStation(stationID, s.officersPerAlert)
	if err != nil {
		return nil, err
	}
	if len(officers) == 0 {
		return &models.AssignOfficersResponse{
			Success: false,
			Message: "no officers available",
		}, nil
	}

	station, err := s.stationRepo.GetStationByID(stationID)
	if err != nil {
		if err.Error() == "station not found" {
			return &models.AssignOfficersResponse{
				Success: false,
				Message: "station not found",
			}, nil
		}
		return nil, err
	}

	distanceMeters := utils.DistanceMeters(
		alert.Location.Latitude, alert.Location.Longitude,
		station.Location.Latitude, station.Location.Longitude,
	)

	officerIDs := make([]int64, len(officers))
	for i, o := range officers {
		officerIDs[i] = o.OfficerID
	}
	assignment := &models.AlertAssignment{
		AlertID:           alertID,
		StationID:         stationID,
		OfficerIDs:        officerIDs,
		DistanceToStation: distanceMeters,
		AssignedAt:        time.Now().UTC(),
	}
	if err := s.alertRepo.ApplyAssignment(assignment); err != nil {
		return nil, err
	}

	view, err := s.alertRepo.GetAlertView(alertID)
	if err != nil {
		return nil, err
	}

	return &models.AssignOfficersResponse{Success: true, Alert: view}, nil
}

// GetAlert loads an alert with its references expanded, enforcing that
// only the owner, an assigned-station officer, or an admin may read it.
func (s *AlertService) GetAlert(alertID int64, principal models.Principal) (*models.AlertView, error) {
	view, err := s.alertRepo.GetAlertView(alertID)
	if err != nil {
		return nil, err
	}
	if !canViewAlert(principal, view) {
		return nil, fmt.Errorf("forbidden")
	}
	return view, nil
}

// GetUserAlerts lists the calling user's alerts
func (s *AlertService) GetUserAlerts(userID int64) ([]models.Alert, error) {
	return s.alertRepo.GetAlertsByUserID(userID)
}

// MarkInProgress transitions an alert's assignment status from Assigned to
// In Progress. Only an assigned officer or an admin may do this.
func (s *AlertService) MarkInProgress(alertID int64, principal models.Principal) error {
	alert, err := s.alertRepo.GetAlertByID(alertID)
	if err != nil {
		return err
	}
	if alert.Status != models.AlertStatusActive {
		return fmt.Errorf("alert is not active")
	}
	if alert.AssignmentStatus != models.AssignmentAssigned {
		return fmt.Errorf("alert is not assigned")
	}
	if allowed, err := s.isAssignedOfficerOrAdmin(alertID, principal); err != nil {
		return err
	} else if !allowed {
		return fmt.Errorf("forbidden")
	}

	return s.alertRepo.UpdateAssignmentStatus(alertID, models.AssignmentInProgress)
}

// ResolveAlert terminates an Active alert as Resolved. Only an assigned
// officer or an admin may resolve.
func (s *AlertService) ResolveAlert(alertID int64, principal models.Principal) error {
	alert, err := s.alertRepo.GetAlertByID(alertID)
	if err != nil {
		return err
	}
	if alert.Status != models.AlertStatusActive {
		return fmt.Errorf("alert is not active")
	}
	if allowed, err := s.isAssignedOfficerOrAdmin(alertID, principal); err != nil {
		return err
	} else if !allowed {
		return fmt.Errorf("forbidden")
	}

	return s.alertRepo.UpdateAlertStatus(alertID, models.AlertStatusResolved, closeoutAssignment(alert.AssignmentStatus))
}

// CancelAlert terminates an Active alert as Cancelled. A user may cancel
// only their own alert; an admin may cancel any.
func (s *AlertService) CancelAlert(alertID int64, principal models.Principal) error {
	alert, err := s.alertRepo.GetAlertByID(alertID)
	if err != nil {
		return err
	}
	if alert.Status != models.AlertStatusActive {
		return fmt.Errorf("alert is not active")
	}
	if !canCancelAlert(principal, alert) {
		return fmt.Errorf("forbidden")
	}

	return s.alertRepo.UpdateAlertStatus(alertID, models.AlertStatusCancelled, closeoutAssignment(alert.AssignmentStatus))
}

// RedispatchUnassigned re-runs station lookup and officer assignment for
// Active alerts that are still Unassigned. Called by the dispatch worker.
// Returns the number of alerts that got an assignment this pass.
func (s *AlertService) RedispatchUnassigned(batchSize int) (int, error) {
	alerts, err := s.alertRepo.GetUnassignedActiveAlerts(batchSize)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for i := range alerts {
		_, officers, _, note := s.dispatchToStation(&alerts[i])
		if len(officers) > 0 {
			assigned++
			log.Printf("[dispatch] alert #%d assigned to %d officer(s)", alerts[i].AlertID, len(officers))
		} else if note != "" {
			log.Printf("[dispatch] alert #%d still unassigned: %s", alerts[i].AlertID, note)
		}
	}
	return assigned, nil
}

// isAssignedOfficerOrAdmin checks resolve/progress authorization
func (s *AlertService) isAssignedOfficerOrAdmin(alertID int64, principal models.Principal) (bool, error) {
	if principal.IsAdmin() {
		return true, nil
	}
	if principal.Role != models.RolePolice {
		return false, nil
	}
	officers, err := s.alertRepo.GetOfficersByAlert(alertID)
	if err != nil {
		return false, err
	}
	for _, o := range officers {
		if o.OfficerID == principal.OfficerID {
			return true, nil
		}
	}
	return false, nil
}

// canCancelAlert: owner user or admin
func canCancelAlert(principal models.Principal, alert *models.Alert) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.Role == models.RoleUser && principal.UserID == alert.UserID
}

// canViewAlert: owner, officer of the assigned station, or admin
func canViewAlert(principal models.Principal, view *models.AlertView) bool {
	switch principal.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return principal.UserID == view.UserID
	case models.RolePolice:
		return view.NearestStationID.Valid && view.NearestStationID.Int64 == principal.StationID
	}
	return false
}

// closeoutAssignment maps the assignment status an alert carries into its
// terminal value when the alert is resolved or cancelled. Unassigned
// alerts stay Unassigned; anything assigned closes out as Resolved.
func closeoutAssignment(current models.AssignmentStatus) *models.AssignmentStatus {
	if current == models.AssignmentAssigned || current == models.AssignmentInProgress {
		resolved := models.AssignmentResolved
		return &resolved
	}
	return nil
}
