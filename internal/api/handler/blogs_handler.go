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

type BlogsHandler struct {
	blogs *service.BlogsService
}

func NewBlogsHandler(blogs *service.BlogsService) *BlogsHandler {
	return &BlogsHandler{blogs: blogs}
}

func (h *BlogsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/slug/{blogSlug}", h.getBySlug)
	r.Put("/{blogID}", h.update)
	r.Delete("/{blogID}", h.delete)
	r.Patch("/{blogID}/publish", h.publish)
	r.Patch("/{blogID}/unpublish", h.unpublish)
}

func (h *BlogsHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListBlogsQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
	}

	list, err := h.blogs.List(r.Context(), middleware.TokenFromContext(r.Context()), q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *BlogsHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogs.GetBySlug(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "blogSlug"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, post)
}

func (h *BlogsHandler) create(w http.ResponseWriter, r *http.Request) {
	var f form.BlogForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	post, err := h.blogs.Create(r.Context(), middleware.TokenFromContext(r.Context()), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, post)
}

func (h *BlogsHandler) update(w http.ResponseWriter, r *http.Request) {
	var f form.BlogForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	post, err := h.blogs.Update(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "blogID"), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, post)
}

func (h *BlogsHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogs.Delete(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "blogID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Blog post deleted"})
}

func (h *BlogsHandler) publish(w http.ResponseWriter, r *http.Request) {
	if err := h.blogs.Publish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "blogID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Blog post published"})
}

func (h *BlogsHandler) unpublish(w http.ResponseWriter, r *http.Request) {
	if err := h.blogs.Unpublish(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "blogID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Blog post unpublished"})
}
