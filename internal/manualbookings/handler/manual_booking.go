package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/service"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	httputil "github.com/TPetrica/elite-transportation-backend-sub000/pkg/http"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

type ManualBookingHandler struct {
	service service.ManualBookingService
	log     *logger.Logger
}

func NewManualBookingHandler(service service.ManualBookingService, log *logger.Logger) *ManualBookingHandler {
	return &ManualBookingHandler{
		service: service,
		log:     log,
	}
}

func (h *ManualBookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var mb model.ManualBooking
	if err := json.NewDecoder(r.Body).Decode(&mb); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
			Code:  apperrors.CodeInvalidInput,
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &mb); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, mb); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ManualBookingHandler) ListByDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	blocks, err := h.service.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, "ListByDate", err)
		return
	}

	if err := httputil.WriteSuccess(w, blocks); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByDate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ManualBookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	mb, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, mb); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ManualBookingHandler) Deactivate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	mb, err := h.service.Deactivate(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Deactivate", err)
		return
	}

	if err := httputil.WriteSuccess(w, mb); err != nil {
		h.log.Error("failed to write success response", "handler", "Deactivate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ManualBookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ManualBookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ManualBookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/manual-bookings", h.Create)
	router.GET("/api/v1/manual-bookings", h.ListByDate)
	router.GET("/api/v1/manual-bookings/id/:id", h.GetByID)
	router.POST("/api/v1/manual-bookings/id/:id/deactivate", h.Deactivate)
	router.DELETE("/api/v1/manual-bookings/id/:id", h.Delete)
}
