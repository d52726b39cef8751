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

type NoticesHandler struct {
	notices *service.NoticesService
}

func NewNoticesHandler(notices *service.NoticesService) *NoticesHandler {
	return &NoticesHandler{notices: notices}
}

func (h *NoticesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{noticeID}", h.get)
	r.Put("/{noticeID}", h.update)
	r.Delete("/{noticeID}", h.delete)
	r.Patch("/{noticeID}/pin", h.pin)
	r.Patch("/{noticeID}/unpin", h.unpin)
}

func (h *NoticesHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListNoticesQuery{
		Page:     page,
		Limit:    limit,
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Priority: r.URL.Query().Get("priority"),
	}

	list, err := h.notices.List(r.Context(), middleware.TokenFromContext(r.Context()), q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *NoticesHandler) get(w http.ResponseWriter, r *http.Request) {
	notice, err := h.notices.Get(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "noticeID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, notice)
}

func (h *NoticesHandler) create(w http.ResponseWriter, r *http.Request) {
	var f form.NoticeForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	notice, err := h.notices.Create(r.Context(), middleware.TokenFromContext(r.Context()), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, notice)
}

func (h *NoticesHandler) update(w http.ResponseWriter, r *http.Request) {
	var f form.NoticeForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	notice, err := h.notices.Update(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "noticeID"), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, notice)
}

func (h *NoticesHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.notices.Delete(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "noticeID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Notice deleted"})
}

func (h *NoticesHandler) pin(w http.ResponseWriter, r *http.Request) {
	if err := h.notices.Pin(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "noticeID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Notice pinned"})
}

func (h *NoticesHandler) unpin(w http.ResponseWriter, r *http.Request) {
	if err := h.notices.Unpin(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "noticeID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Notice unpinned"})
}
