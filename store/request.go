package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadguard/roadguard-api/schema"
)

var (
	ErrMissingServiceType = fmt.Errorf("serviceType or serviceTypes is required")
	ErrRequestNotFound    = fmt.Errorf("service request not found")
	ErrRequestClosed      = fmt.Errorf("service request is closed")
	ErrInvalidStatus      = fmt.Errorf("invalid status")
	ErrInvalidMechanic    = fmt.Errorf("invalid mechanic")
	ErrCommentNotAllowed  = fmt.Errorf("commenting on this request is not allowed")
)

const (
	pendingListLimit = 100
	allListLimit     = 200
)

// RequestStore is the mongodb surface of the request lifecycle. Every
// mutation is a single document update whose filter carries the
// admissibility predicate, so check-and-set is atomic per request.
type RequestStore interface {
	CreateRequest(userID string, params CreateRequestParams) (*schema.ServiceRequest, error)
	GetRequest(id string) (*schema.ServiceRequest, error)
	ListRequestsByOwner(userID string) ([]schema.ServiceRequest, error)
	ListRequestsByMechanic(mechanicID string) ([]schema.ServiceRequest, error)
	ListPendingRequests() ([]schema.ServiceRequest, error)
	ListAllRequests() ([]schema.ServiceRequest, error)
	AssignRequestMechanic(id, actorID, mechanicID string, etaMinutes int) (*schema.ServiceRequest, error)
	UpdateRequestStatus(id, actorID string, status schema.RequestStatus, note string) (*schema.ServiceRequest, error)
	AppendRequestComment(id string, comment schema.RequestComment, restrictTo string) (*schema.ServiceRequest, error)
	DeleteRequest(id string) error
}

// CreateRequestParams carries the client-supplied portion of a new request.
type CreateRequestParams struct {
	ServiceType   string
	ServiceTypes  []string
	Vehicle       schema.VehicleInfo
	Description   string
	Location      schema.RequestLocation
	EstimatedCost string
	EstimatedTime string
	Priority      schema.RequestPriority
}

// PrimaryServiceType resolves the primary tag: the explicit serviceType if
// given, otherwise the first entry of serviceTypes.
func (p CreateRequestParams) PrimaryServiceType() (string, bool) {
	if p.ServiceType != "" {
		return p.ServiceType, true
	}
	if len(p.ServiceTypes) > 0 {
		return p.ServiceTypes[0], true
	}
	return "", false
}

func (m *mongoDB) requestCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.RequestCollection)
}

// CreateRequest persists a new service request with status `submitted` and a
// single seeded history entry. When the location carries coordinates but no
// address, the address is reverse geocoded on a best effort basis.
func (m *mongoDB) CreateRequest(userID string, params CreateRequestParams) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	primary, ok := params.PrimaryServiceType()
	if !ok {
		return nil, ErrMissingServiceType
	}

	priority := params.Priority
	if priority == "" {
		priority = schema.PriorityMedium
	}

	location := params.Location
	if location.Address == "" && m.geoClient != nil &&
		(location.Latitude != 0 || location.Longitude != 0) {
		address, err := m.geoClient.ReverseGeocode(schema.Location{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		})
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("reverse geocode request location")
		} else {
			location.Address = address
		}
	}

	now := time.Now().UTC()
	req := schema.ServiceRequest{
		UserID:        userID,
		ServiceType:   primary,
		ServiceTypes:  params.ServiceTypes,
		Vehicle:       params.Vehicle,
		Description:   params.Description,
		Location:      location,
		Status:        schema.StatusSubmitted,
		Priority:      priority,
		EstimatedCost: params.EstimatedCost,
		EstimatedTime: params.EstimatedTime,
		History: []schema.HistoryEntry{{
			Status:    schema.StatusSubmitted,
			By:        userID,
			Timestamp: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := m.requestCollection().InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}
	req.ID = result.InsertedID.(primitive.ObjectID)

	return &req, nil
}

func (m *mongoDB) GetRequest(id string) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	var req schema.ServiceRequest
	if err := m.requestCollection().FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (m *mongoDB) findRequests(filter bson.M, sort bson.D, limit int64) ([]schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.requestCollection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	requests := []schema.ServiceRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListRequestsByOwner returns all requests created by the given user,
// newest first.
func (m *mongoDB) ListRequestsByOwner(userID string) ([]schema.ServiceRequest, error) {
	return m.findRequests(
		bson.M{"user_id": userID},
		bson.D{{Key: "created_at", Value: -1}},
		0,
	)
}

// ListRequestsByMechanic returns all requests assigned to the given
// mechanic, most recently updated first.
func (m *mongoDB) ListRequestsByMechanic(mechanicID string) ([]schema.ServiceRequest, error) {
	return m.findRequests(
		bson.M{"mechanic_id": mechanicID},
		bson.D{{Key: "updated_at", Value: -1}},
		0,
	)
}

func (m *mongoDB) ListPendingRequests() ([]schema.ServiceRequest, error) {
	return m.findRequests(
		bson.M{"status": bson.M{"$in": schema.PendingStatuses}},
		bson.D{{Key: "created_at", Value: -1}},
		pendingListLimit,
	)
}

func (m *mongoDB) ListAllRequests() ([]schema.ServiceRequest, error) {
	return m.findRequests(
		bson.M{},
		bson.D{{Key: "created_at", Value: -1}},
		allListLimit,
	)
}

// mutateRequest applies a single atomic update and returns the new
// document. The filter always excludes terminal requests so a writer that
// lost a race against a closing transition simply stops matching.
func (m *mongoDB) mutateRequest(oid primitive.ObjectID, extraFilter bson.M, set bson.M, entry *schema.HistoryEntry) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":    oid,
		"status": bson.M{"$nin": schema.TerminalStatuses},
	}
	for k, v := range extraFilter {
		filter[k] = v
	}

	set["updated_at"] = time.Now().UTC()
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"revision": 1},
	}
	if entry != nil {
		update["$push"] = bson.M{"history": *entry}
	}

	var req schema.ServiceRequest
	err := m.requestCollection().FindOneAndUpdate(
		ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, m.explainNoMatch(ctx, oid)
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// explainNoMatch tells a missing request apart from one the filter refused.
func (m *mongoDB) explainNoMatch(ctx context.Context, oid primitive.ObjectID) error {
	count, err := m.requestCollection().CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrRequestNotFound
	}
	return ErrRequestClosed
}

// AssignRequestMechanic binds a mechanic to a request: mechanic reference,
// `assigned` status, ETA and the history entry land in one update.
func (m *mongoDB) AssignRequestMechanic(id, actorID, mechanicID string, etaMinutes int) (*schema.ServiceRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	return m.mutateRequest(oid, nil,
		bson.M{
			"mechanic_id": mechanicID,
			"status":      schema.StatusAssigned,
			"eta_minutes": etaMinutes,
		},
		&schema.HistoryEntry{
			Status:    schema.StatusAssigned,
			By:        actorID,
			Timestamp: time.Now().UTC(),
		},
	)
}

// UpdateRequestStatus applies a status transition and appends the matching
// history entry.
func (m *mongoDB) UpdateRequestStatus(id, actorID string, status schema.RequestStatus, note string) (*schema.ServiceRequest, error) {
	if !status.Updatable() {
		return nil, ErrInvalidStatus
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	return m.mutateRequest(oid, nil,
		bson.M{"status": status},
		&schema.HistoryEntry{
			Status:    status,
			By:        actorID,
			Note:      note,
			Timestamp: time.Now().UTC(),
		},
	)
}

// AppendRequestComment appends a comment. When restrictTo is non-empty the
// update only matches if that account is the owner or the assigned
// mechanic; admins pass an empty restriction.
func (m *mongoDB) AppendRequestComment(id string, comment schema.RequestComment, restrictTo string) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	filter := bson.M{"_id": oid}
	if restrictTo != "" {
		filter["$or"] = []bson.M{
			{"user_id": restrictTo},
			{"mechanic_id": restrictTo},
		}
	}

	var req schema.ServiceRequest
	err = m.requestCollection().FindOneAndUpdate(
		ctx, filter,
		bson.M{
			"$push": bson.M{"comments": comment},
			"$inc":  bson.M{"revision": 1},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		count, cerr := m.requestCollection().CountDocuments(ctx, bson.M{"_id": oid})
		if cerr != nil {
			return nil, cerr
		}
		if count == 0 {
			return nil, ErrRequestNotFound
		}
		return nil, ErrCommentNotAllowed
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (m *mongoDB) DeleteRequest(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrRequestNotFound
	}

	result, err := m.requestCollection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}
