package store

import (
	"time"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadguard/roadguard-api/schema"
)

// default ETA applied when an assignment does not specify one
const DefaultETAMinutes = 20

// RoadGuardCore is the main datastore of the marketplace: accounts live in
// postgres, service request documents in mongodb.
type RoadGuardCore interface {
	Ping() error

	// Account
	CreateAccount(email, password, name, phone string, role schema.AccountRole, location schema.Location) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	ListMechanics() ([]schema.AccountSummary, error)

	// Request lifecycle
	CreateRequest(userID string, params CreateRequestParams, mechanicHint string) (*schema.ServiceRequest, error)
	GetRequest(id string) (*RequestDetail, error)
	ListOwnRequests(userID string) ([]schema.ServiceRequest, error)
	ListAssignedRequests(mechanicID string) ([]AssignedRequest, error)
	ListPendingRequests() ([]schema.ServiceRequest, error)
	ListAllRequests() ([]schema.ServiceRequest, error)
	AssignMechanic(requestID, actorID, mechanicID string, etaMinutes int) (*schema.ServiceRequest, error)
	UpdateRequestStatus(requestID, actorID string, status schema.RequestStatus, note string) (*schema.ServiceRequest, error)
	AddRequestComment(requestID string, actor *schema.Account, text string) (*schema.ServiceRequest, *schema.RequestComment, error)
	DeleteRequest(requestID string) error
}

// RequestDetail is a single request with its parties resolved to
// display projections.
type RequestDetail struct {
	schema.ServiceRequest
	Owner    *schema.AccountSummary `json:"owner,omitempty"`
	Mechanic *schema.AccountSummary `json:"mechanic,omitempty"`
}

// AssignedRequest is a request on a mechanic dashboard, with the owner
// resolved so the mechanic knows who to meet.
type AssignedRequest struct {
	schema.ServiceRequest
	Owner *schema.AccountSummary `json:"owner,omitempty"`
}

// RoadGuardStore is an implementation of RoadGuardCore
type RoadGuardStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewRoadGuardStore(ormDB *gorm.DB, mongo MongoStore) *RoadGuardStore {
	return &RoadGuardStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *RoadGuardStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// CreateRequest creates the request and, when a mechanic hint resolves to a
// real mechanic account, immediately assigns it. A hint that does not
// resolve is ignored and the request stays submitted.
func (s *RoadGuardStore) CreateRequest(userID string, params CreateRequestParams, mechanicHint string) (*schema.ServiceRequest, error) {
	req, err := s.mongo.CreateRequest(userID, params)
	if err != nil {
		return nil, err
	}

	if mechanicHint == "" {
		return req, nil
	}

	if err := s.validateMechanic(mechanicHint); err != nil {
		log.WithFields(log.Fields{
			"prefix":   "store",
			"request":  req.ID.Hex(),
			"mechanic": mechanicHint,
		}).Warn("ignoring invalid mechanic hint")
		return req, nil
	}

	// history now reads submitted then assigned; the requesting user is
	// the actor of the inline assignment
	return s.mongo.AssignRequestMechanic(req.ID.Hex(), userID, mechanicHint, DefaultETAMinutes)
}

func (s *RoadGuardStore) GetRequest(id string) (*RequestDetail, error) {
	req, err := s.mongo.GetRequest(id)
	if err != nil {
		return nil, err
	}

	detail := RequestDetail{ServiceRequest: *req}
	detail.Owner = s.summary(req.UserID)
	if req.MechanicID != "" {
		detail.Mechanic = s.summary(req.MechanicID)
	}
	return &detail, nil
}

// summary resolves an account id to its projection, best effort: a request
// must stay readable even if a referenced account has been deleted.
func (s *RoadGuardStore) summary(accountID string) *schema.AccountSummary {
	account, err := s.GetAccount(accountID)
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			log.WithField("prefix", "store").WithError(err).Error("resolve account summary")
		}
		return nil
	}
	return account.Summary()
}

func (s *RoadGuardStore) ListOwnRequests(userID string) ([]schema.ServiceRequest, error) {
	return s.mongo.ListRequestsByOwner(userID)
}

func (s *RoadGuardStore) ListAssignedRequests(mechanicID string) ([]AssignedRequest, error) {
	requests, err := s.mongo.ListRequestsByMechanic(mechanicID)
	if err != nil {
		return nil, err
	}

	owners := map[string]*schema.AccountSummary{}
	assigned := make([]AssignedRequest, 0, len(requests))
	for _, req := range requests {
		owner, ok := owners[req.UserID]
		if !ok {
			owner = s.summary(req.UserID)
			owners[req.UserID] = owner
		}
		assigned = append(assigned, AssignedRequest{ServiceRequest: req, Owner: owner})
	}
	return assigned, nil
}

func (s *RoadGuardStore) ListPendingRequests() ([]schema.ServiceRequest, error) {
	return s.mongo.ListPendingRequests()
}

func (s *RoadGuardStore) ListAllRequests() ([]schema.ServiceRequest, error) {
	return s.mongo.ListAllRequests()
}

// validateMechanic confirms the id belongs to an account with the mechanic
// role.
func (s *RoadGuardStore) validateMechanic(mechanicID string) error {
	account, err := s.GetAccount(mechanicID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrInvalidMechanic
		}
		return err
	}
	if account.Role != schema.RoleMechanic {
		return ErrInvalidMechanic
	}
	return nil
}

func (s *RoadGuardStore) AssignMechanic(requestID, actorID, mechanicID string, etaMinutes int) (*schema.ServiceRequest, error) {
	if err := s.validateMechanic(mechanicID); err != nil {
		return nil, err
	}
	if etaMinutes <= 0 {
		etaMinutes = DefaultETAMinutes
	}
	return s.mongo.AssignRequestMechanic(requestID, actorID, mechanicID, etaMinutes)
}

func (s *RoadGuardStore) UpdateRequestStatus(requestID, actorID string, status schema.RequestStatus, note string) (*schema.ServiceRequest, error) {
	return s.mongo.UpdateRequestStatus(requestID, actorID, status, note)
}

// AddRequestComment appends a comment on behalf of the actor. Admins may
// comment on any request; users and mechanics only on requests they own or
// are assigned to.
func (s *RoadGuardStore) AddRequestComment(requestID string, actor *schema.Account, text string) (*schema.ServiceRequest, *schema.RequestComment, error) {
	comment := schema.RequestComment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		By:        actor.ID.String(),
		Role:      actor.Role,
		CreatedAt: time.Now().UTC(),
	}

	restrictTo := actor.ID.String()
	if actor.Role == schema.RoleAdmin {
		restrictTo = ""
	}

	req, err := s.mongo.AppendRequestComment(requestID, comment, restrictTo)
	if err != nil {
		return nil, nil, err
	}
	return req, &comment, nil
}

func (s *RoadGuardStore) DeleteRequest(requestID string) error {
	return s.mongo.DeleteRequest(requestID)
}
