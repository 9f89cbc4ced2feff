package handlers

import (
	"net/http"
	"strings"

	"github.com/PrinceMakavana/restaurant-order-management-system/storage"
	"github.com/PrinceMakavana/restaurant-order-management-system/utils"
)

// UploadImage accepts a multipart image and stores it under a generated key.
// Content type and size are checked before the store is touched, so a bad
// upload never leaves partial state behind.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+4096)
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "image must be 5MB or smaller")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		utils.RespondError(w, http.StatusBadRequest, "only image files are allowed")
		return
	}
	if header.Size > storage.MaxImageSize {
		utils.RespondError(w, http.StatusBadRequest, "image must be 5MB or smaller")
		return
	}

	key := storage.NewImageKey(header.Filename)
	url, err := h.Objects.Put(key, file)
	if err != nil {
		h.Log.WithError(err).Error("image upload failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to store image")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
