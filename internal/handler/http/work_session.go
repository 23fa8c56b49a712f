package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/handler/http/response"
)

type WorkSessionHandler interface {
	StartWork(w http.ResponseWriter, r *http.Request)
	StartLunch(w http.ResponseWriter, r *http.Request)
	EndLunch(w http.ResponseWriter, r *http.Request)
	EndWork(w http.ResponseWriter, r *http.Request)
	GetMySessions(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetUserSessions(w http.ResponseWriter, r *http.Request)
}

type workSessionHandlerImpl struct {
	workSessionService worksession.WorkSessionService
}

func NewWorkSessionHandler(workSessionService worksession.WorkSessionService) WorkSessionHandler {
	return &workSessionHandlerImpl{
		workSessionService: workSessionService,
	}
}

// StartWork implements WorkSessionHandler.
func (h *workSessionHandlerImpl) StartWork(w http.ResponseWriter, r *http.Request) {
	result, err := h.workSessionService.StartWork(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work session started", result)
}

// StartLunch implements WorkSessionHandler.
func (h *workSessionHandlerImpl) StartLunch(w http.ResponseWriter, r *http.Request) {
	result, err := h.workSessionService.StartLunch(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch started", result)
}

// EndLunch implements WorkSessionHandler.
func (h *workSessionHandlerImpl) EndLunch(w http.ResponseWriter, r *http.Request) {
	result, err := h.workSessionService.EndLunch(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch ended", result)
}

// EndWork implements WorkSessionHandler.
func (h *workSessionHandlerImpl) EndWork(w http.ResponseWriter, r *http.Request) {
	result, err := h.workSessionService.EndWork(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session ended", result)
}

// GetMySessions implements WorkSessionHandler.
func (h *workSessionHandlerImpl) GetMySessions(w http.ResponseWriter, r *http.Request) {
	result, err := h.workSessionService.GetMySessions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkSessionHandler. Filters come from query parameters.
func (h *workSessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worksession.SessionFilter{}

	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	result, err := h.workSessionService.ListSessions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetUserSessions implements WorkSessionHandler.
func (h *workSessionHandlerImpl) GetUserSessions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.workSessionService.GetUserSessions(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
