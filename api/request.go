package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/roadguard/roadguard-api/background"
	"github.com/roadguard/roadguard-api/event"
	"github.com/roadguard/roadguard-api/schema"
	"github.com/roadguard/roadguard-api/store"
)

// createRequest handles POST /api/requests. An optional mechanicId hint
// assigns the request inline when it resolves to a mechanic account; an
// unresolvable hint is ignored and the request stays submitted.
func (s *Server) createRequest(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		ServiceType   string                 `json:"serviceType"`
		ServiceTypes  []string               `json:"serviceTypes"`
		VehicleInfo   schema.VehicleInfo     `json:"vehicleInfo"`
		Description   string                 `json:"description"`
		Location      schema.RequestLocation `json:"location"`
		EstimatedCost string                 `json:"estimatedCost"`
		EstimatedTime string                 `json:"estimatedTime"`
		Priority      schema.RequestPriority `json:"priority"`
		MechanicID    string                 `json:"mechanicId"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, err := s.store.CreateRequest(account.ID.String(), store.CreateRequestParams{
		ServiceType:   body.ServiceType,
		ServiceTypes:  body.ServiceTypes,
		Vehicle:       body.VehicleInfo,
		Description:   body.Description,
		Location:      body.Location,
		EstimatedCost: body.EstimatedCost,
		EstimatedTime: body.EstimatedTime,
		Priority:      body.Priority,
	}, body.MechanicID)
	if err != nil {
		if err == store.ErrMissingServiceType {
			abortWithEncoding(c, http.StatusBadRequest, errorMissingServiceType)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.Broadcast(event.RequestNew, req)
	s.notifyRequestEvent("request_created", req.ID.Hex(), req.UserID)

	c.JSON(http.StatusCreated, req)
}

func (s *Server) listMyRequests(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requests, err := s.store.ListOwnRequests(account.ID.String())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) listPendingRequests(c *gin.Context) {
	requests, err := s.store.ListPendingRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

// listAllRequests is the admin overview. It deliberately degrades to an
// empty list on storage failure; this one read path trades correctness for
// availability.
func (s *Server) listAllRequests(c *gin.Context) {
	requests, err := s.store.ListAllRequests()
	if err != nil {
		log.WithError(err).Error("list all requests")
		c.JSON(http.StatusOK, []schema.ServiceRequest{})
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) listAssignedRequests(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requests, err := s.store.ListAssignedRequests(account.ID.String())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

// assignMechanic handles POST /api/requests/:id/assign (admin only).
func (s *Server) assignMechanic(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	id := c.Param("id")

	var body struct {
		MechanicID string `json:"mechanicId" binding:"required"`
		ETAMinutes *int   `json:"etaMinutes"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	etaMinutes := store.DefaultETAMinutes
	if body.ETAMinutes != nil {
		etaMinutes = *body.ETAMinutes
	}

	req, err := s.store.AssignMechanic(id, account.ID.String(), body.MechanicID, etaMinutes)
	if err != nil {
		switch err {
		case store.ErrInvalidMechanic:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidMechanic)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrRequestClosed:
			abortWithEncoding(c, http.StatusConflict, errorRequestClosed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.hub.Broadcast(event.RequestUpdated, req)
	s.notifyRequestEvent("assigned", req.ID.Hex(), req.UserID, req.MechanicID)

	c.JSON(http.StatusOK, req)
}

// updateRequestStatus handles POST /api/requests/:id/status.
func (s *Server) updateRequestStatus(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	id := c.Param("id")

	var body struct {
		Status schema.RequestStatus `json:"status" binding:"required"`
		Note   string               `json:"note"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, err := s.store.UpdateRequestStatus(id, account.ID.String(), body.Status, body.Note)
	if err != nil {
		switch err {
		case store.ErrInvalidStatus:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrRequestClosed:
			abortWithEncoding(c, http.StatusConflict, errorRequestClosed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.hub.Broadcast(event.RequestUpdated, req)
	s.notifyRequestEvent("status_"+string(body.Status), req.ID.Hex(), req.UserID, req.MechanicID)

	c.JSON(http.StatusOK, req)
}

// addRequestComment handles POST /api/requests/:id/comments. Any role may
// comment, but users and mechanics only on requests they are a party to.
func (s *Server) addRequestComment(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	id := c.Param("id")

	var body struct {
		Text string `json:"text" binding:"required"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, comment, err := s.store.AddRequestComment(id, account, body.Text)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrCommentNotAllowed:
			abortWithEncoding(c, http.StatusForbidden, errorCommentNotAllowed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.hub.Broadcast(event.RequestComment, gin.H{
		"id":      id,
		"comment": comment,
	})

	c.JSON(http.StatusOK, req)
}

// getRequest handles GET /api/requests/:id. Only the owner, the assigned
// mechanic and admins may read a single request.
func (s *Server) getRequest(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	id := c.Param("id")

	detail, err := s.store.GetRequest(id)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	accountID := account.ID.String()
	isOwner := detail.UserID == accountID
	isAssigned := detail.MechanicID != "" && detail.MechanicID == accountID
	isAdmin := account.Role == schema.RoleAdmin
	if !isOwner && !isAssigned && !isAdmin {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// deleteRequest handles DELETE /api/requests/:id (admin only).
func (s *Server) deleteRequest(c *gin.Context) {
	id := c.Param("id")

	if err := s.store.DeleteRequest(id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) listMechanics(c *gin.Context) {
	mechanics, err := s.store.ListMechanics()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, mechanics)
}

// notifyRequestEvent enqueues an out-of-band notification. It is strictly
// best effort: enqueue failures are logged and never surface to the caller.
func (s *Server) notifyRequestEvent(eventType, requestID string, recipients ...string) {
	if s.background == nil {
		return
	}

	to := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r != "" {
			to = append(to, r)
		}
	}
	if len(to) == 0 {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskNotifyRequestEvent,
		Args: []tasks.Arg{
			{Type: "string", Value: eventType},
			{Type: "string", Value: requestID},
			{Type: "[]string", Value: to},
		},
	}); err != nil {
		log.WithError(err).WithField("event", eventType).Warn("enqueue request notification")
	}
}
