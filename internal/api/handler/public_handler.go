package handler

import (
	"net/http"

	"campus_portal/internal/app/service"
	"campus_portal/internal/common"
	"campus_portal/internal/platform/campus"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the marketing pages' data: published content only,
// fetched anonymously and shared through the same query cache as the
// dashboards, so a publish action invalidates both surfaces at once.
type PublicHandler struct {
	events   *service.EventsService
	notices  *service.NoticesService
	programs *service.ProgramsService
	blogs    *service.BlogsService
}

func NewPublicHandler(events *service.EventsService, notices *service.NoticesService, programs *service.ProgramsService, blogs *service.BlogsService) *PublicHandler {
	return &PublicHandler{events: events, notices: notices, programs: programs, blogs: blogs}
}

func (h *PublicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.listEvents)
	r.Get("/notices", h.listNotices)
	r.Get("/programs", h.listPrograms)
	r.Get("/blogs", h.listBlogs)
	r.Get("/blogs/{blogSlug}", h.getBlog)
}

func (h *PublicHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	published := true
	q := campus.ListEventsQuery{
		Page:      page,
		Limit:     limit,
		EventType: r.URL.Query().Get("eventType"),
		Published: &published,
	}

	list, err := h.events.List(r.Context(), "", q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *PublicHandler) listNotices(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListNoticesQuery{
		Page:     page,
		Limit:    limit,
		Category: r.URL.Query().Get("category"),
	}

	list, err := h.notices.List(r.Context(), "", q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *PublicHandler) listPrograms(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListProgramsQuery{
		Page:       page,
		Limit:      limit,
		Department: r.URL.Query().Get("department"),
		Level:      r.URL.Query().Get("level"),
	}

	list, err := h.programs.List(r.Context(), "", q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *PublicHandler) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	published := true
	q := campus.ListBlogsQuery{
		Page:      page,
		Limit:     limit,
		Tag:       r.URL.Query().Get("tag"),
		Published: &published,
	}

	list, err := h.blogs.List(r.Context(), "", q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *PublicHandler) getBlog(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogs.GetBySlug(r.Context(), "", chi.URLParam(r, "blogSlug"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, post)
}
