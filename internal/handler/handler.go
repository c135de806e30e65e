// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/middleware"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
	"github.com/popeskul/clinic-channel-gateway/internal/service"
)

const (
	errorCodeNotFound           = "NOT_FOUND"
	errorCodeNoChannelAvailable = "NO_CHANNEL_AVAILABLE"
	errorCodeRateLimited        = "SEND_NOT_ALLOWED"
	errorCodeChannelUnavailable = "CHANNEL_UNAVAILABLE"
	errorCodeInvalidTransition  = "INVALID_TRANSITION"
	errorCodeValidation         = "VALIDATION_ERROR"
	errorCodeBadRequest         = "BAD_REQUEST"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes mounts every API operation on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.ServiceHealth)
		r.Get("/stats", h.GlobalStats)

		r.Route("/channels", func(r chi.Router) {
			r.Post("/", h.CreateChannel)
			r.Get("/", h.ListChannels)
			r.Get("/next", h.NextChannel)

			r.Route("/{channelID}", func(r chi.Router) {
				r.Get("/", h.GetChannel)
				r.Delete("/", h.DeactivateChannel)
				r.Post("/activate", h.ReactivateChannel)
				r.Put("/default", h.SetDefaultChannel)
				r.Get("/antiblock", h.GetAntiblockConfig)
				r.Put("/antiblock", h.UpdateAntiblockConfig)
				r.Get("/can-send", h.CanSend)
				r.Post("/messages", h.RecordSend)
				r.Get("/health", h.ChannelHealth)
				r.Post("/health-check", h.ForceHealthCheck)
			})
		})

		r.Post("/webhooks/delivery", h.DeliveryCallback)

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", h.ListAlerts)
			r.Post("/{alertID}/resolve", h.ResolveAlert)
		})

		r.Post("/admin/reset", h.ForceReset)
	})

	return r
}

func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req CreateChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	ch, err := h.service.Channel.Create(service.CreateChannelInput{
		TenantID:           req.TenantID,
		Name:               req.Name,
		Type:               req.ChannelType,
		Purpose:            req.Purpose,
		EndpointURL:        req.EndpointURL,
		AuthKey:            req.AuthKey,
		IsDefault:          req.IsDefault,
		DailyLimit:         req.DailyLimit,
		HourlyLimit:        req.HourlyLimit,
		MinIntervalSeconds: req.MinIntervalSeconds,
		AutoPauseThreshold: req.AutoPauseThreshold,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to create channel")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ch)
}

func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")

	var purpose *models.ChannelPurpose
	if p := r.URL.Query().Get("purpose"); p != "" {
		pp := models.ChannelPurpose(p)
		if !models.ValidChannelPurpose(pp) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Unknown purpose")
			return
		}
		purpose = &pp
	}

	channels, err := h.service.Channel.List(tenantID, purpose)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to list channels")
		return
	}

	render.JSON(w, r, ChannelListResponse{Channels: channels})
}

func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := h.service.Channel.Get(chi.URLParam(r, "channelID"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to get channel")
		return
	}

	render.JSON(w, r, ch)
}

func (h *Handler) DeactivateChannel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Channel.Deactivate(chi.URLParam(r, "channelID")); err != nil {
		h.handleServiceError(w, r, err, "Failed to deactivate channel")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReactivateChannel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Channel.Reactivate(chi.URLParam(r, "channelID")); err != nil {
		h.handleServiceError(w, r, err, "Failed to reactivate channel")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetDefaultChannel(w http.ResponseWriter, r *http.Request) {
	var req SetDefaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Channel.SetDefault(chi.URLParam(r, "channelID"), req.TenantID, req.Purpose); err != nil {
		h.handleServiceError(w, r, err, "Failed to set default channel")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetAntiblockConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Channel.GetAntiblockConfig(chi.URLParam(r, "channelID"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to get antiblock config")
		return
	}

	render.JSON(w, r, cfg)
}

func (h *Handler) UpdateAntiblockConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateAntiblockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	cfg, err := h.service.Channel.UpdateAntiblockConfig(chi.URLParam(r, "channelID"), service.AntiblockConfigPatch{
		DailyLimit:         req.DailyLimit,
		HourlyLimit:        req.HourlyLimit,
		MinIntervalSeconds: req.MinIntervalSeconds,
		AutoRotate:         req.AutoRotate,
		AutoPauseThreshold: req.AutoPauseThreshold,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to update antiblock config")
		return
	}

	render.JSON(w, r, cfg)
}

// CanSend returns the anti-block permission decision. Refusals are 200s
// with allowed=false; only infrastructure failures produce error codes.
func (h *Handler) CanSend(w http.ResponseWriter, r *http.Request) {
	decision, err := h.service.Antiblock.CanSend(chi.URLParam(r, "channelID"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to evaluate send permission")
		return
	}

	render.JSON(w, r, decision)
}

func (h *Handler) RecordSend(w http.ResponseWriter, r *http.Request) {
	var req RecordSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	if req.TenantID == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "tenant_id is required")
		return
	}

	entryID, err := h.service.Antiblock.RecordSend(chi.URLParam(r, "channelID"), service.SendRequest{
		TenantID:      req.TenantID,
		Category:      req.Category,
		Recipient:     req.Recipient,
		Content:       req.Content,
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to record send")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RecordSendResponse{EntryID: entryID})
}

func (h *Handler) NextChannel(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")
	purpose := models.ChannelPurpose(r.URL.Query().Get("purpose"))

	if tenantID == "" || !models.ValidChannelPurpose(purpose) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "tenant_id and a valid purpose are required")
		return
	}

	ch, err := h.service.Rotator.NextChannel(tenantID, purpose)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to select channel")
		return
	}

	render.JSON(w, r, ch)
}

func (h *Handler) ChannelHealth(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Stats.ChannelHealth(chi.URLParam(r, "channelID"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to get channel health")
		return
	}

	render.JSON(w, r, report)
}

func (h *Handler) ForceHealthCheck(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Monitor.ForceHealthCheck(chi.URLParam(r, "channelID"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to run health check")
		return
	}

	render.JSON(w, r, snapshot)
}

func (h *Handler) DeliveryCallback(w http.ResponseWriter, r *http.Request) {
	var req DeliveryCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	if req.MessageID == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "message_id is required")
		return
	}

	err := h.service.Dispatcher.HandleDeliveryCallback(req.MessageID, req.Status, req.Error)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to apply delivery status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	filter := models.AlertFilter{
		TenantID:  r.URL.Query().Get("tenant_id"),
		ChannelID: r.URL.Query().Get("channel_id"),
		Type:      models.AlertType(r.URL.Query().Get("type")),
		Severity:  models.AlertSeverity(r.URL.Query().Get("severity")),
	}

	if v := r.URL.Query().Get("resolved"); v != "" {
		resolved := v == "true"
		filter.Resolved = &resolved
	}

	alerts, err := h.service.Alerting.List(filter)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to list alerts")
		return
	}

	render.JSON(w, r, AlertListResponse{Alerts: alerts})
}

func (h *Handler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	var req ResolveAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Alerting.Resolve(chi.URLParam(r, "alertID"), req.Note); err != nil {
		h.handleServiceError(w, r, err, "Failed to resolve alert")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats.GlobalStats(r.URL.Query().Get("tenant_id"))
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to compute stats")
		return
	}

	render.JSON(w, r, stats)
}

func (h *Handler) ForceReset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset.ForceReset(); err != nil {
		h.handleServiceError(w, r, err, "Failed to run reset")
		return
	}

	render.JSON(w, r, ResetResponse{
		Status:     "completed",
		ExecutedAt: time.Now(),
	})
}

func (h *Handler) ServiceHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Stats.ServiceHealth()

	if health.Status == "unhealthy" {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, health)
}

// handleServiceError maps service errors onto HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	var rateLimitErr *service.RateLimitError

	switch {
	case errors.Is(err, service.ErrChannelNotFound), errors.Is(err, repository.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Resource not found")
	case errors.Is(err, service.ErrNoChannelAvailable):
		h.sendError(w, r, http.StatusNotFound, errorCodeNoChannelAvailable, "No eligible channel available")
	case errors.Is(err, service.ErrUnknownMessage):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Unknown external message id")
	case errors.As(err, &rateLimitErr):
		h.sendError(w, r, http.StatusTooManyRequests, errorCodeRateLimited, string(rateLimitErr.Reason))
	case errors.Is(err, service.ErrChannelUnavailable):
		h.sendError(w, r, http.StatusConflict, errorCodeChannelUnavailable, "Channel is not active")
	case errors.Is(err, repository.ErrInvalidTransition):
		h.sendError(w, r, http.StatusConflict, errorCodeInvalidTransition, "Invalid message status transition")
	case errors.Is(err, service.ErrInvalidConfig):
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, err.Error())
	default:
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error(logMsg,
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, logMsg)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
