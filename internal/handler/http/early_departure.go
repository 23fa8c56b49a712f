package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/handler/http/response"
)

type EarlyDepartureHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type earlyDepartureHandlerImpl struct {
	requestService earlydeparture.RequestService
}

func NewEarlyDepartureHandler(requestService earlydeparture.RequestService) EarlyDepartureHandler {
	return &earlyDepartureHandlerImpl{
		requestService: requestService,
	}
}

// Submit implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req earlydeparture.SubmitRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Early departure request submitted", result)
}

// ListMine implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Early departure request approved", result)
}

// Reject implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Early departure request rejected", result)
}

// Delete implements EarlyDepartureHandler.
func (h *earlyDepartureHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	if err := h.requestService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Early departure request deleted", nil)
}
