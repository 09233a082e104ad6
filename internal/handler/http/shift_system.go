package http

import (
	"net/http"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/cmlabs-hris/roster-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftSystemHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type shiftSystemHandlerImpl struct {
	shiftSystemRepo shiftsystem.Repository
}

func NewShiftSystemHandler(shiftSystemRepo shiftsystem.Repository) ShiftSystemHandler {
	return &shiftSystemHandlerImpl{
		shiftSystemRepo: shiftSystemRepo,
	}
}

// List implements ShiftSystemHandler.
func (h *shiftSystemHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	systems, err := h.shiftSystemRepo.GetByProjectID(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]shiftsystem.ShiftSystemResponse, 0, len(systems))
	for _, s := range systems {
		resp = append(resp, shiftsystem.MapToResponse(s))
	}

	response.Success(w, resp)
}

// Get implements ShiftSystemHandler.
func (h *shiftSystemHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	id := chi.URLParam(r, "id")

	system, err := h.shiftSystemRepo.GetByID(r.Context(), id, projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shiftsystem.MapToResponse(system))
}
