package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SURUWE_BACK-END/internal/config"
	"SURUWE_BACK-END/internal/dto"
	"SURUWE_BACK-END/internal/middleware"
	"SURUWE_BACK-END/internal/store"
	"SURUWE_BACK-END/internal/upload"
	"SURUWE_BACK-END/internal/utils"
)

// PhotosHandler manages the owner's photo grid.
type PhotosHandler struct {
	store    *store.Store
	uploader upload.Uploader
	config   *config.Config
	logger   *zap.Logger
}

func NewPhotosHandler(st *store.Store, up upload.Uploader, cfg *config.Config, logger *zap.Logger) *PhotosHandler {
	return &PhotosHandler{store: st, uploader: up, config: cfg, logger: logger}
}

// Photos dispatches for /api/me/photos and /api/me/photos/{id}
func (h *PhotosHandler) Photos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Upload(w, r)
	case http.MethodDelete:
		h.Delete(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST, DELETE are allowed")
	}
}

// Upload godoc
// @Summary      Add a profile photo
// @Description  Compresses and stores the image, appending it to the grid. The grid is capped; position 0 stays the hero image.
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  dto.PhotoUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/me/photos [post]
func (h *PhotosHandler) Upload(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	ctx := r.Context()
	existing, err := h.store.ListPhotos(ctx, profileID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	if len(existing) >= h.config.App.MaxProfilePhotos {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error",
			fmt.Sprintf("photo grid is full (max %d)", h.config.App.MaxProfilePhotos))
		return
	}

	data, name, err := readMultipartFile(w, r, "file")
	if err != nil {
		return
	}

	url, err := h.uploader.Upload(ctx, data, fmt.Sprintf("profiles/%s", profileID))
	if err != nil {
		h.logger.Warn("profile photo upload failed",
			zap.String("profile_id", profileID.String()),
			zap.String("file", name),
			zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Upload failed", "the photo was not saved, try again")
		return
	}

	photo, err := h.store.CreatePhoto(ctx, profileID, url)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.PhotoUploadResponse{Photo: photo})
}

// Delete godoc
// @Summary      Delete a profile photo
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Photo id"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/photos/{id} [delete]
func (h *PhotosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/me/photos/")
	photoID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid photo id")
		return
	}

	if err := h.store.DeletePhoto(r.Context(), profileID, photoID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Photo not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
