package handler

import (
	"encoding/json"
	"net/http"

	"campus_portal/internal/api/middleware"
	"campus_portal/internal/app/form"
	"campus_portal/internal/app/service"
	"campus_portal/internal/common"
	"campus_portal/internal/platform/campus"

	"github.com/go-chi/chi/v5"
)

type ProgramsHandler struct {
	programs *service.ProgramsService
}

func NewProgramsHandler(programs *service.ProgramsService) *ProgramsHandler {
	return &ProgramsHandler{programs: programs}
}

func (h *ProgramsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{programID}", h.get)
	r.Put("/{programID}", h.update)
	r.Delete("/{programID}", h.delete)
	r.Patch("/{programID}/publish", h.publish)
	r.Patch("/{programID}/unpublish", h.unpublish)
}

func (h *ProgramsHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListProgramsQuery{
		Page:       page,
		Limit:      limit,
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
		Level:      r.URL.Query().Get("level"),
	}

	list, err := h.programs.List(r.Context(), middleware.TokenFromContext(r.Context()), q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *ProgramsHandler) get(w http.ResponseWriter, r *http.Request) {
	program, err := h.programs.Get(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "programID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, program)
}

func (h *ProgramsHandler) create(w http.ResponseWriter, r *http.Request) {
	var f form.ProgramForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	program, err := h.programs.Create(r.Context(), middleware.TokenFromContext(r.Context()), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, program)
}

func (h *ProgramsHandler) update(w http.ResponseWriter, r *http.Request) {
	var f form.ProgramForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	program, err := h.programs.Update(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "programID"), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, program)
}

func (h *ProgramsHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.programs.Delete(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "programID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Program deleted"})
}

func (h *ProgramsHandler) publish(w http.ResponseWriter, r *http.Request) {
	if err := h.programs.Publish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "programID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Program published"})
}

func (h *ProgramsHandler) unpublish(w http.ResponseWriter, r *http.Request) {
	if err := h.programs.Unpublish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "programID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Program unpublished"})
}
