package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/hourslot/booking-api/internal/audit"
	"github.com/hourslot/booking-api/internal/cache"
	domain "github.com/hourslot/booking-api/internal/domain/catalog"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/httpresp"
	"github.com/hourslot/booking-api/internal/middleware"
	"github.com/hourslot/booking-api/internal/models"
)

const defaultServiceDescription = "none provided"

type ServiceHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	rdb   *redis.Client
}

func NewServiceHandler(repo domain.Repository, dispatcher *audit.Dispatcher, rdb *redis.Client) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: dispatcher, rdb: rdb}
}

// --------- Requests ---------

// Price and DurationMin are pointers so zero and absent are distinguishable:
// a zero price is valid, an absent one is not. Description keeps the same
// split: only an omitted field gets the default, an explicit "" is stored.
type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" binding:"required"`
	DurationMin *int     `json:"duration_min" binding:"required"`
}

// --------- Handlers ---------

// Create runs behind the admin gate; authorization is decided by the route
// middleware before the body is even bound.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Name, price and duration are required.")
		return
	}

	if *req.Price < 0 {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Price must not be negative.")
		return
	}
	if *req.DurationMin < 1 {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Duration must be a positive number of minutes.")
		return
	}

	description := defaultServiceDescription
	if req.Description != nil {
		description = *req.Description
	}

	service := models.Service{
		Name:        req.Name,
		Description: description,
		Price:       *req.Price,
		DurationMin: *req.DurationMin,
	}

	if err := h.repo.Create(c.Request.Context(), &service); err != nil {
		httperr.Internal(c, "Failed to create service.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionServiceCreated,
		Entity:   "service",
		EntityID: &service.ID,
	})

	h.invalidateList(c)

	httpresp.Created(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var cached []models.Service
	if hit, err := cache.Get(c.Request.Context(), h.rdb, cache.ServicesKey, &cached); err == nil && hit {
		httpresp.List(c, cached)
		return
	}

	services, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to list services.")
		return
	}

	if err := cache.Set(c.Request.Context(), h.rdb, cache.ServicesKey, services, cache.ServicesTTL); err != nil {
		logrus.WithError(err).Warn("service list cache write failed")
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidID, "Malformed service id.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "Failed to delete service.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	serviceID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionServiceDeleted,
		Entity:   "service",
		EntityID: &serviceID,
	})

	h.invalidateList(c)

	httpresp.NoContent(c)
}

func (h *ServiceHandler) invalidateList(c *gin.Context) {
	if err := cache.Delete(c.Request.Context(), h.rdb, cache.ServicesKey); err != nil {
		logrus.WithError(err).Warn("service list cache invalidation failed")
	}
}
