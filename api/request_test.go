package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadguard/roadguard-api/api/mocks"
	"github.com/roadguard/roadguard-api/event"
	"github.com/roadguard/roadguard-api/schema"
	"github.com/roadguard/roadguard-api/store"
)

// recordingBroker captures broadcasts instead of fanning them out.
type recordingBroker struct {
	events   []string
	payloads []interface{}
}

func (b *recordingBroker) Broadcast(event string, payload interface{}) {
	b.events = append(b.events, event)
	b.payloads = append(b.payloads, payload)
}

func (b *recordingBroker) Register(ws *websocket.Conn) {}

func testAccount(role schema.AccountRole) *schema.Account {
	return &schema.Account{
		ID:   uuid.New(),
		Name: fmt.Sprintf("test %s", role),
		Role: role,
	}
}

// newRequestRouter mounts the request routes the way the server does, with
// the given account injected instead of the JWT middleware chain.
func newRequestRouter(s *Server, account *schema.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("account", account)
		c.Next()
	})

	requestRoute := r.Group("/requests")
	{
		requestRoute.POST("", s.requireRoles(schema.RoleUser), s.createRequest)
		requestRoute.GET("/me", s.requireRoles(schema.RoleUser), s.listMyRequests)
		requestRoute.GET("/pending", s.requireRoles(schema.RoleAdmin), s.listPendingRequests)
		requestRoute.GET("/all", s.requireRoles(schema.RoleAdmin), s.listAllRequests)
		requestRoute.GET("/assigned", s.requireRoles(schema.RoleMechanic), s.listAssignedRequests)
		requestRoute.POST("/:id/assign", s.requireRoles(schema.RoleAdmin), s.assignMechanic)
		requestRoute.POST("/:id/status", s.requireRoles(schema.RoleMechanic, schema.RoleAdmin), s.updateRequestStatus)
		requestRoute.POST("/:id/comments", s.addRequestComment)
		requestRoute.GET("/:id", s.getRequest)
		requestRoute.DELETE("/:id", s.requireRoles(schema.RoleAdmin), s.deleteRequest)
	}

	return r
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	user := testAccount(schema.RoleUser)
	created := &schema.ServiceRequest{
		ID:          primitive.NewObjectID(),
		UserID:      user.ID.String(),
		ServiceType: "battery",
		Status:      schema.StatusSubmitted,
	}

	core.EXPECT().
		CreateRequest(user.ID.String(), store.CreateRequestParams{
			ServiceTypes: []string{"battery", "towing"},
			Description:  "dead battery",
		}, "").
		Return(created, nil).Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests",
		strings.NewReader(`{"serviceTypes": ["battery", "towing"], "description": "dead battery"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{event.RequestNew}, broker.events)

	var resp schema.ServiceRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, schema.StatusSubmitted, resp.Status)
}

func TestCreateRequestPassesMechanicHint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	user := testAccount(schema.RoleUser)
	core.EXPECT().
		CreateRequest(user.ID.String(), gomock.Any(), "mechanic-hint-id").
		Return(&schema.ServiceRequest{ID: primitive.NewObjectID(), UserID: user.ID.String()}, nil).
		Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests",
		strings.NewReader(`{"serviceType": "towing", "mechanicId": "mechanic-hint-id"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateRequestMissingServiceType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	user := testAccount(schema.RoleUser)
	core.EXPECT().
		CreateRequest(user.ID.String(), gomock.Any(), "").
		Return(nil, store.ErrMissingServiceType).Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{"description": "no type"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, broker.events)
}

func TestCreateRequestForbiddenForMechanic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store expectation: a forbidden call must not reach the store
	s := &Server{store: mocks.NewMockRoadGuardCore(ctl), hub: &recordingBroker{}}

	router := newRequestRouter(s, testAccount(schema.RoleMechanic))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{"serviceType": "towing"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssignMechanicDefaultsETA(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	admin := testAccount(schema.RoleAdmin)
	id := primitive.NewObjectID()
	assigned := &schema.ServiceRequest{
		ID:         id,
		UserID:     "user-1",
		MechanicID: "mechanic-1",
		Status:     schema.StatusAssigned,
		ETAMinutes: store.DefaultETAMinutes,
	}

	core.EXPECT().
		AssignMechanic(id.Hex(), admin.ID.String(), "mechanic-1", store.DefaultETAMinutes).
		Return(assigned, nil).Times(1)

	router := newRequestRouter(s, admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/assign",
		strings.NewReader(`{"mechanicId": "mechanic-1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{event.RequestUpdated}, broker.events)
}

func TestAssignMechanicWithETA(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	admin := testAccount(schema.RoleAdmin)
	id := primitive.NewObjectID()

	core.EXPECT().
		AssignMechanic(id.Hex(), admin.ID.String(), "mechanic-1", 15).
		Return(&schema.ServiceRequest{ID: id, UserID: "user-1", MechanicID: "mechanic-1"}, nil).
		Times(1)

	router := newRequestRouter(s, admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/assign",
		strings.NewReader(`{"mechanicId": "mechanic-1", "etaMinutes": 15}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignMechanicErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid mechanic", store.ErrInvalidMechanic, http.StatusBadRequest},
		{"not found", store.ErrRequestNotFound, http.StatusNotFound},
		{"closed", store.ErrRequestClosed, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			core := mocks.NewMockRoadGuardCore(ctl)
			broker := &recordingBroker{}
			s := &Server{store: core, hub: broker}

			admin := testAccount(schema.RoleAdmin)
			id := primitive.NewObjectID()
			core.EXPECT().
				AssignMechanic(id.Hex(), admin.ID.String(), "mechanic-1", store.DefaultETAMinutes).
				Return(nil, tc.err).Times(1)

			router := newRequestRouter(s, admin)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/assign",
				strings.NewReader(`{"mechanicId": "mechanic-1"}`))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.Empty(t, broker.events)
		})
	}
}

func TestAssignMechanicForbiddenForMechanic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{store: mocks.NewMockRoadGuardCore(ctl), hub: &recordingBroker{}}

	router := newRequestRouter(s, testAccount(schema.RoleMechanic))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+primitive.NewObjectID().Hex()+"/assign",
		strings.NewReader(`{"mechanicId": "mechanic-1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateRequestStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	mechanic := testAccount(schema.RoleMechanic)
	id := primitive.NewObjectID()
	updated := &schema.ServiceRequest{
		ID:         id,
		UserID:     "user-1",
		MechanicID: mechanic.ID.String(),
		Status:     schema.StatusCompleted,
	}

	core.EXPECT().
		UpdateRequestStatus(id.Hex(), mechanic.ID.String(), schema.StatusCompleted, "all done").
		Return(updated, nil).Times(1)

	router := newRequestRouter(s, mechanic)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/status",
		strings.NewReader(`{"status": "completed", "note": "all done"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{event.RequestUpdated}, broker.events)
}

func TestUpdateRequestStatusForbiddenForUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{store: mocks.NewMockRoadGuardCore(ctl), hub: &recordingBroker{}}

	router := newRequestRouter(s, testAccount(schema.RoleUser))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+primitive.NewObjectID().Hex()+"/status",
		strings.NewReader(`{"status": "cancelled"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateRequestStatusErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid status", store.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", store.ErrRequestNotFound, http.StatusNotFound},
		{"closed", store.ErrRequestClosed, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			core := mocks.NewMockRoadGuardCore(ctl)
			broker := &recordingBroker{}
			s := &Server{store: core, hub: broker}

			mechanic := testAccount(schema.RoleMechanic)
			id := primitive.NewObjectID()
			core.EXPECT().
				UpdateRequestStatus(id.Hex(), mechanic.ID.String(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			router := newRequestRouter(s, mechanic)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/status",
				strings.NewReader(`{"status": "accepted"}`))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.Empty(t, broker.events)
		})
	}
}

func TestAddRequestComment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	user := testAccount(schema.RoleUser)
	id := primitive.NewObjectID()
	comment := &schema.RequestComment{
		ID:   primitive.NewObjectID(),
		Text: "any updates?",
		By:   user.ID.String(),
		Role: schema.RoleUser,
	}

	core.EXPECT().
		AddRequestComment(id.Hex(), user, "any updates?").
		Return(&schema.ServiceRequest{ID: id, UserID: user.ID.String()}, comment, nil).
		Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/comments",
		strings.NewReader(`{"text": "any updates?"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{event.RequestComment}, broker.events)
}

func TestAddRequestCommentNotAllowed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	broker := &recordingBroker{}
	s := &Server{store: core, hub: broker}

	user := testAccount(schema.RoleUser)
	id := primitive.NewObjectID()
	core.EXPECT().
		AddRequestComment(id.Hex(), user, "let me in").
		Return(nil, nil, store.ErrCommentNotAllowed).Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/"+id.Hex()+"/comments",
		strings.NewReader(`{"text": "let me in"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, broker.events)
}

func TestGetRequestVisibility(t *testing.T) {
	owner := testAccount(schema.RoleUser)
	mechanic := testAccount(schema.RoleMechanic)
	stranger := testAccount(schema.RoleUser)
	admin := testAccount(schema.RoleAdmin)

	id := primitive.NewObjectID()
	detail := &store.RequestDetail{
		ServiceRequest: schema.ServiceRequest{
			ID:         id,
			UserID:     owner.ID.String(),
			MechanicID: mechanic.ID.String(),
			Status:     schema.StatusAssigned,
		},
	}

	cases := []struct {
		name    string
		account *schema.Account
		code    int
	}{
		{"owner", owner, http.StatusOK},
		{"assigned mechanic", mechanic, http.StatusOK},
		{"admin", admin, http.StatusOK},
		{"stranger", stranger, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			core := mocks.NewMockRoadGuardCore(ctl)
			s := &Server{store: core, hub: &recordingBroker{}}
			core.EXPECT().GetRequest(id.Hex()).Return(detail, nil).Times(1)

			router := newRequestRouter(s, tc.account)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/requests/"+id.Hex(), nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestListMyRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	user := testAccount(schema.RoleUser)
	core.EXPECT().ListOwnRequests(user.ID.String()).Return([]schema.ServiceRequest{
		{ID: primitive.NewObjectID(), UserID: user.ID.String()},
	}, nil).Times(1)

	router := newRequestRouter(s, user)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/requests/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []schema.ServiceRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestListPendingRequestsForbiddenForMechanic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{store: mocks.NewMockRoadGuardCore(ctl), hub: &recordingBroker{}}

	router := newRequestRouter(s, testAccount(schema.RoleMechanic))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/requests/pending", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListAllRequestsDegradesToEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	core.EXPECT().ListAllRequests().Return(nil, fmt.Errorf("mongo is down")).Times(1)

	router := newRequestRouter(s, testAccount(schema.RoleAdmin))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/requests/all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListAssignedRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	mechanic := testAccount(schema.RoleMechanic)
	core.EXPECT().ListAssignedRequests(mechanic.ID.String()).Return([]store.AssignedRequest{
		{
			ServiceRequest: schema.ServiceRequest{ID: primitive.NewObjectID(), MechanicID: mechanic.ID.String()},
			Owner:          &schema.AccountSummary{ID: "user-1", Name: "stranded"},
		},
	}, nil).Times(1)

	router := newRequestRouter(s, mechanic)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/requests/assigned", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRoadGuardCore(ctl)
	s := &Server{store: core, hub: &recordingBroker{}}

	id := primitive.NewObjectID()
	core.EXPECT().DeleteRequest(id.Hex()).Return(nil).Times(1)

	router := newRequestRouter(s, testAccount(schema.RoleAdmin))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/requests/"+id.Hex(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRequestForbiddenForUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{store: mocks.NewMockRoadGuardCore(ctl), hub: &recordingBroker{}}

	router := newRequestRouter(s, testAccount(schema.RoleUser))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/requests/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
