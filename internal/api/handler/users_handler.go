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

type UsersHandler struct {
	users *service.UsersService
}

func NewUsersHandler(users *service.UsersService) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{userID}", h.get)
	r.Put("/{userID}", h.update)
	r.Delete("/{userID}", h.delete)
	r.Patch("/{userID}/activate", h.activate)
	r.Patch("/{userID}/deactivate", h.deactivate)
	r.Patch("/{userID}/reset-password", h.resetPassword)
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := campus.ListUsersQuery{
		Page:       page,
		Limit:      limit,
		Search:     r.URL.Query().Get("search"),
		Role:       r.URL.Query().Get("role"),
		Department: r.URL.Query().Get("department"),
	}

	list, err := h.users.List(r.Context(), middleware.TokenFromContext(r.Context()), q)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, list)
}

func (h *UsersHandler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, user)
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	var f form.UserCreateForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	user, err := h.users.Create(r.Context(), middleware.TokenFromContext(r.Context()), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, user)
}

func (h *UsersHandler) update(w http.ResponseWriter, r *http.Request) {
	var f form.UserUpdateForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	user, err := h.users.Update(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID"), f.Request())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, user)
}

func (h *UsersHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

func (h *UsersHandler) activate(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Activate(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "User activated"})
}

func (h *UsersHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Deactivate(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "User deactivated"})
}

func (h *UsersHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var f form.ResetPasswordForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	if err := h.users.ResetPassword(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "userID"), f.NewPassword); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Password reset"})
}
