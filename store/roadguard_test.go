package store_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadguard/roadguard-api/api/mocks"
	"github.com/roadguard/roadguard-api/schema"
	"github.com/roadguard/roadguard-api/store"
)

// openTestORM backs the account store with an in-memory sqlite database.
// The accounts table is created by hand because the postgres defaults in the
// model tags do not translate.
func openTestORM(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test orm: %s", err)
	}

	if err := db.Exec(`CREATE TABLE accounts (
		id text PRIMARY KEY,
		email text UNIQUE,
		password_hash text,
		name text,
		phone_number text,
		role text,
		location blob,
		created_at datetime,
		updated_at datetime
	)`).Error; err != nil {
		t.Fatalf("create accounts table: %s", err)
	}

	return db
}

func seedAccount(t *testing.T, s *store.RoadGuardStore, email string, role schema.AccountRole) *schema.Account {
	account, err := s.CreateAccount(email, "secret", "seeded "+string(role), "", role, schema.Location{})
	if err != nil {
		t.Fatalf("seed %s account: %s", role, err)
	}
	return account
}

func TestCreateRequestAssignsValidMechanicHint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	mongoStore := mocks.NewMockMongoStore(ctl)
	s := store.NewRoadGuardStore(db, mongoStore)
	mechanic := seedAccount(t, s, "wrench@example.com", schema.RoleMechanic)

	params := store.CreateRequestParams{ServiceType: "towing"}
	created := &schema.ServiceRequest{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Status: schema.StatusSubmitted,
	}
	assigned := &schema.ServiceRequest{
		ID:         created.ID,
		UserID:     "user-1",
		MechanicID: mechanic.ID.String(),
		Status:     schema.StatusAssigned,
		ETAMinutes: store.DefaultETAMinutes,
	}

	mongoStore.EXPECT().CreateRequest("user-1", params).Return(created, nil).Times(1)
	mongoStore.EXPECT().
		AssignRequestMechanic(created.ID.Hex(), "user-1", mechanic.ID.String(), store.DefaultETAMinutes).
		Return(assigned, nil).Times(1)

	req, err := s.CreateRequest("user-1", params, mechanic.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, schema.StatusAssigned, req.Status)
	assert.Equal(t, mechanic.ID.String(), req.MechanicID)
}

func TestCreateRequestIgnoresNonMechanicHint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	mongoStore := mocks.NewMockMongoStore(ctl)
	s := store.NewRoadGuardStore(db, mongoStore)
	regularUser := seedAccount(t, s, "driver@example.com", schema.RoleUser)

	params := store.CreateRequestParams{ServiceType: "battery"}
	created := &schema.ServiceRequest{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Status: schema.StatusSubmitted,
	}

	// no AssignRequestMechanic expectation: a hint pointing at a user
	// account is dropped and the request stays submitted
	mongoStore.EXPECT().CreateRequest("user-1", params).Return(created, nil).Times(1)

	req, err := s.CreateRequest("user-1", params, regularUser.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, schema.StatusSubmitted, req.Status)
	assert.Empty(t, req.MechanicID)
}

func TestCreateRequestIgnoresUnknownMechanicHint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	mongoStore := mocks.NewMockMongoStore(ctl)
	s := store.NewRoadGuardStore(db, mongoStore)

	params := store.CreateRequestParams{ServiceType: "towing"}
	created := &schema.ServiceRequest{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Status: schema.StatusSubmitted,
	}

	mongoStore.EXPECT().CreateRequest("user-1", params).Return(created, nil).Times(1)

	req, err := s.CreateRequest("user-1", params, uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, schema.StatusSubmitted, req.Status)
	assert.Empty(t, req.MechanicID)
}

func TestAssignMechanicValidatesRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	mongoStore := mocks.NewMockMongoStore(ctl)
	s := store.NewRoadGuardStore(db, mongoStore)
	regularUser := seedAccount(t, s, "driver@example.com", schema.RoleUser)

	requestID := primitive.NewObjectID().Hex()

	_, err := s.AssignMechanic(requestID, "admin-1", regularUser.ID.String(), 15)
	assert.Equal(t, store.ErrInvalidMechanic, err)

	_, err = s.AssignMechanic(requestID, "admin-1", uuid.New().String(), 15)
	assert.Equal(t, store.ErrInvalidMechanic, err)
}

func TestAssignMechanicAppliesDefaultETA(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	mongoStore := mocks.NewMockMongoStore(ctl)
	s := store.NewRoadGuardStore(db, mongoStore)
	mechanic := seedAccount(t, s, "wrench@example.com", schema.RoleMechanic)

	requestID := primitive.NewObjectID().Hex()
	mongoStore.EXPECT().
		AssignRequestMechanic(requestID, "admin-1", mechanic.ID.String(), store.DefaultETAMinutes).
		Return(&schema.ServiceRequest{Status: schema.StatusAssigned}, nil).Times(1)

	_, err := s.AssignMechanic(requestID, "admin-1", mechanic.ID.String(), 0)
	assert.NoError(t, err)
}

func TestListMechanics(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestORM(t)
	defer db.Close()

	s := store.NewRoadGuardStore(db, mocks.NewMockMongoStore(ctl))
	seedAccount(t, s, "driver@example.com", schema.RoleUser)
	mechanic := seedAccount(t, s, "wrench@example.com", schema.RoleMechanic)

	mechanics, err := s.ListMechanics()
	assert.NoError(t, err)
	assert.Len(t, mechanics, 1)
	assert.Equal(t, mechanic.ID.String(), mechanics[0].ID)
}
