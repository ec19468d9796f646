package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/service"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	httputil "github.com/TPetrica/elite-transportation-backend-sub000/pkg/http"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

type ExceptionHandler struct {
	service service.ExceptionService
	log     *logger.Logger
}

func NewExceptionHandler(service service.ExceptionService, log *logger.Logger) *ExceptionHandler {
	return &ExceptionHandler{
		service: service,
		log:     log,
	}
}

func (h *ExceptionHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var exc model.DateException
	if err := json.NewDecoder(r.Body).Decode(&exc); err != nil {
		h.writeBadBody(w, "Create")
		return
	}

	if err := h.service.Create(r.Context(), &exc); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, exc); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ExceptionHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		h.writeError(w, "List", apperrors.InvalidInput("'from' and 'to' query parameters are required"))
		return
	}

	exceptions, err := h.service.List(r.Context(), from, to)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteSuccess(w, exceptions); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExceptionHandler) GetByDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	exc, err := h.service.GetByDate(r.Context(), ps.ByName("date"))
	if err != nil {
		h.writeError(w, "GetByDate", err)
		return
	}

	if err := httputil.WriteSuccess(w, exc); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByDate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExceptionHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	exc, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, exc); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExceptionHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.DateExceptionUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeBadBody(w, "Update")
		return
	}

	exc, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, exc); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExceptionHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ExceptionHandler) writeBadBody(w http.ResponseWriter, handler string) {
	if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
		Code:  apperrors.CodeInvalidInput,
	}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", writeErr)
	}
}

func (h *ExceptionHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ExceptionHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/exceptions", h.Create)
	router.GET("/api/v1/exceptions", h.List)
	router.GET("/api/v1/exceptions/date/:date", h.GetByDate)
	router.GET("/api/v1/exceptions/id/:id", h.GetByID)
	router.PATCH("/api/v1/exceptions/id/:id", h.Update)
	router.DELETE("/api/v1/exceptions/id/:id", h.Delete)
}
