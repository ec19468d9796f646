package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/TPetrica/elite-transportation-backend-sub000/internal/availability/service"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	httputil "github.com/TPetrica/elite-transportation-backend-sub000/pkg/http"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
	log     *logger.Logger
}

type CheckResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	date := strings.TrimSpace(query.Get("date"))
	if date == "" {
		h.writeError(w, "GetSlots", apperrors.InvalidInput("'date' query parameter is required"))
		return
	}

	result, err := h.service.GetAvailableSlots(r.Context(), date, strings.TrimSpace(query.Get("exclude_booking_id")))
	if err != nil {
		h.writeError(w, "GetSlots", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "GetSlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	date := strings.TrimSpace(query.Get("date"))
	at := strings.TrimSpace(query.Get("time"))
	if date == "" || at == "" {
		h.writeError(w, "Check", apperrors.InvalidInput("'date' and 'time' query parameters are required"))
		return
	}

	available, err := h.service.IsTimeAvailable(r.Context(), date, at, strings.TrimSpace(query.Get("exclude_booking_id")))
	if err != nil {
		h.writeError(w, "Check", err)
		return
	}

	if err := httputil.WriteSuccess(w, CheckResponse{Date: date, Time: at, Available: available}); err != nil {
		h.log.Error("failed to write success response", "handler", "Check", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) GetRange(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		h.writeError(w, "GetRange", apperrors.InvalidInput("'from' and 'to' query parameters are required"))
		return
	}

	results, err := h.service.GetAvailableSlotsRange(r.Context(), from, to)
	if err != nil {
		h.writeError(w, "GetRange", err)
		return
	}

	if err := httputil.WriteSuccess(w, results); err != nil {
		h.log.Error("failed to write success response", "handler", "GetRange", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability/slots", h.GetSlots)
	router.GET("/api/v1/availability/check", h.Check)
	router.GET("/api/v1/availability/range", h.GetRange)
}
