package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RequestCollection = "serviceRequests"

type RequestStatus string

const (
	StatusSubmitted  RequestStatus = "submitted"
	StatusAssigned   RequestStatus = "assigned"
	StatusAccepted   RequestStatus = "accepted"
	StatusInProgress RequestStatus = "in-progress"
	StatusCompleted  RequestStatus = "completed"
	StatusRejected   RequestStatus = "rejected"
	StatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusAssigned, StatusAccepted,
		StatusInProgress, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Updatable reports whether a status may be set through the status update
// operation. `submitted` is only reachable at creation and `assigned` only
// through mechanic assignment.
func (s RequestStatus) Updatable() bool {
	switch s {
	case StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatuses is the filter form of RequestStatus.Terminal, used in
// update predicates.
var TerminalStatuses = []RequestStatus{StatusCompleted, StatusRejected, StatusCancelled}

// PendingStatuses is the admin-facing "still needs attention" set.
var PendingStatuses = []RequestStatus{StatusSubmitted, StatusAssigned, StatusAccepted}

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
)

func (p RequestPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// VehicleInfo is a snapshot taken at creation time, not a reference to a
// vehicle profile.
type VehicleInfo struct {
	Make     string `bson:"make,omitempty" json:"make,omitempty"`
	Model    string `bson:"model,omitempty" json:"model,omitempty"`
	Year     string `bson:"year,omitempty" json:"year,omitempty"`
	Plate    string `bson:"plate,omitempty" json:"plate,omitempty"`
	Color    string `bson:"color,omitempty" json:"color,omitempty"`
	FuelType string `bson:"fuel_type,omitempty" json:"fuelType,omitempty"`
}

type RequestLocation struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// HistoryEntry records one status transition. The history sequence is
// append-only; entries are never rewritten.
type HistoryEntry struct {
	Status    RequestStatus `bson:"status" json:"status"`
	By        string        `bson:"by" json:"by"`
	Note      string        `bson:"note,omitempty" json:"note,omitempty"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

type RequestComment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Text      string             `bson:"text" json:"text"`
	By        string             `bson:"by" json:"by"`
	Role      AccountRole        `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type ServiceRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	MechanicID    string             `bson:"mechanic_id,omitempty" json:"mechanic_id,omitempty"`
	ServiceType   string             `bson:"service_type" json:"service_type"`
	ServiceTypes  []string           `bson:"service_types,omitempty" json:"service_types,omitempty"`
	Vehicle       VehicleInfo        `bson:"vehicle_info" json:"vehicle_info"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      RequestLocation    `bson:"location" json:"location"`
	Status        RequestStatus      `bson:"status" json:"status"`
	Priority      RequestPriority    `bson:"priority" json:"priority"`
	EstimatedCost string             `bson:"estimated_cost,omitempty" json:"estimated_cost,omitempty"`
	EstimatedTime string             `bson:"estimated_time,omitempty" json:"estimated_time,omitempty"`
	ETAMinutes    int                `bson:"eta_minutes" json:"eta_minutes"`
	// Revision increases by one on every mutation so that interleaved
	// writes are observable by readers.
	Revision  int64            `bson:"revision" json:"revision"`
	History   []HistoryEntry   `bson:"history" json:"history"`
	Comments  []RequestComment `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}
