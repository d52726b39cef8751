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

type EventsHandler struct {
	events *service.EventsService
}

func NewEventsHandler(events *service.EventsService) *EventsHandler {
	return &EventsHandler{events: events}
}

func (h *EventsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{eventID}", h.get)
	r.Put("/{eventID}", h.update)
	r.Delete("/{eventID}", h.delete)
	r.Patch("/{eventID}/publish", h.publish)
	r.Patch("/{eventID}/unpublish", h.unpublish)
}

func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListEventsQuery{
		Page:      page,
		Limit:     limit,
		Search:    r.URL.Query().Get("search"),
		EventType: r.URL.Query().Get("eventType"),
		Status:    r.URL.Query().Get("status"),
	}

	list, err := h.events.List(r.Context(), middleware.TokenFromContext(r.Context()), q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *EventsHandler) get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, event)
}

func (h *EventsHandler) create(w http.ResponseWriter, r *http.Request) {
	var f form.EventForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	event, err := h.events.Create(r.Context(), middleware.TokenFromContext(r.Context()), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, event)
}

func (h *EventsHandler) update(w http.ResponseWriter, r *http.Request) {
	var f form.EventForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	event, err := h.events.Update(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "eventID"), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, event)
}

func (h *EventsHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

func (h *EventsHandler) publish(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Publish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Event published"})
}

func (h *EventsHandler) unpublish(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Unpublish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Event unpublished"})
}
