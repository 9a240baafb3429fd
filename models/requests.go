package models

import "time"

// RegisterRequest is the citizen registration payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the login payload for citizens and officers
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries an issued JWT
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      Role      `json:"role"`
}

// TriggerSOSRequest is the body of POST /sos/alert. Both coordinates are
// required; pointers distinguish "missing" from zero.
type TriggerSOSRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// SOSResponse is the envelope returned by POST /sos/alert. The request
// itself succeeds once the alert row exists; secondary failures only
// soften the message.
type SOSResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *SOSData `json:"data"`
}

// SOSData is the payload of a successful SOS trigger. Field names are part
// of the wire contract.
type SOSData struct {
	AlertID           int64     `json:"alertId"`
	AlertNumber       string    `json:"alertNumber"`
	Location          LatLng    `json:"location"`
	GuardianCount     int       `json:"guardianCount"`
	NearestStation    *Station  `json:"nearestStation"`
	AssignedOfficers  []Officer `json:"assignedOfficers"`
	DistanceToStation *float64  `json:"distanceToStation"` // meters, null when no station found
	Timestamp         time.Time `json:"timestamp"`
}

// AssignOfficersRequest is the body of PUT /sos/alerts/{id}/assign-officers
type AssignOfficersRequest struct {
	StationID int64 `json:"stationId"`
}

// AssignOfficersResponse reports an assignment outcome
type AssignOfficersResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Alert   *AlertView `json:"alert,omitempty"`
}

// NearbyStation annotates a station with its distance from the query point
type NearbyStation struct {
	Station
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"` // human readable, "X.XX km"
}

// StationRequest is the create/update payload for stations
type StationRequest struct {
	Name     string   `json:"name"`
	Area     string   `json:"area"`
	City     string   `json:"city"`
	Helpline string   `json:"helpline"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

// OfficerRequest is the create/update payload for officers
type OfficerRequest struct {
	StationID int64  `json:"stationId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// CreateComplaintRequest is the payload for filing a complaint
type CreateComplaintRequest struct {
	StationID   int64             `json:"stationId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Lat         *float64          `json:"lat"`
	Lng         *float64          `json:"lng"`
	Priority    ComplaintPriority `json:"priority"`
}

// UpdateComplaintStatusRequest updates a complaint's status
type UpdateComplaintStatusRequest struct {
	Status ComplaintStatus `json:"status"`
}

// AssignComplaintOfficerRequest binds an officer to a complaint
type AssignComplaintOfficerRequest struct {
	OfficerID int64 `json:"officerId"`
}

// GuardianRequest is the create/update payload for guardian contacts
type GuardianRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateLocationRequest updates the user's last known location
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CreateThreadRequest opens a chat thread with an officer
type CreateThreadRequest struct {
	OfficerID int64  `json:"officerId"`
	Subject   string `json:"subject"`
}

// PostMessageRequest appends a message to a thread
type PostMessageRequest struct {
	Body string `json:"body"`
}

// JoinTripRequest pairs the caller's trip with another open trip
type JoinTripRequest struct {
	BuddyTripID int64 `json:"buddyTripId"`
}

// CreateTripRequest is the payload for a travel-buddy trip
type CreateTripRequest struct {
	Origin      *LatLng   `json:"origin"`
	Destination *LatLng   `json:"destination"`
	DepartureAt time.Time `json:"departure_at"`
	Note        string    `json:"note"`
}
