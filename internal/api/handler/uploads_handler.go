package handler

import (
	"net/http"

	"campus_portal/internal/common"
	"campus_portal/internal/platform/campus"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20 // matches the upload widget's 10 MB cap

type UploadsHandler struct {
	uploader *campus.Uploader
}

func NewUploadsHandler(uploader *campus.Uploader) *UploadsHandler {
	return &UploadsHandler{uploader: uploader}
}

func (h *UploadsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/image", h.uploadImage)
}

func (h *UploadsHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]string{"url": url})
}
