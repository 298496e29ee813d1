package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"SURUWE_BACK-END/internal/config"
	"SURUWE_BACK-END/internal/dto"
	"SURUWE_BACK-END/internal/measurements"
	"SURUWE_BACK-END/internal/middleware"
	"SURUWE_BACK-END/internal/models"
	"SURUWE_BACK-END/internal/store"
	"SURUWE_BACK-END/internal/utils"
	"SURUWE_BACK-END/internal/whatsapp"
)

// slugRetries bounds how often profile creation retries a colliding slug.
const slugRetries = 3

// ProfileHandler serves onboarding, the owner dashboard and profile updates.
type ProfileHandler struct {
	store  *store.Store
	config *config.Config
	logger *zap.Logger
}

func NewProfileHandler(st *store.Store, cfg *config.Config, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{store: st, config: cfg, logger: logger}
}

// Create godoc
// @Summary      Create a profile (onboarding)
// @Description  Creates an empty profile from a display name and returns the owner session token.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.ProfileCreateRequest  true  "Onboarding payload"
// @Success      201      {object}  dto.ProfileCreateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}

	var req dto.ProfileCreateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name is required")
		return
	}

	ctx := r.Context()
	var profile *models.Profile
	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		profile, err = h.store.CreateProfile(ctx, utils.Slugify(name), name)
		if !errors.Is(err, store.ErrConflict) {
			break
		}
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	token, err := middleware.IssueToken(profile.ID, &h.config.Session)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	h.logger.Info("profile created", zap.String("profile_id", profile.ID.String()), zap.String("slug", profile.Slug))
	utils.WriteJSONResponse(w, http.StatusCreated, dto.ProfileCreateResponse{Profile: profile, Token: token})
}

// Me dispatches by HTTP method for /api/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetMe(w, r)
	case http.MethodPut:
		h.Update(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET, PUT are allowed")
	}
}

// GetMe godoc
// @Summary      Get my dashboard
// @Description  Resolves the session token to the owner's profile with photos and orders. A 404 means the pointed-to profile is gone and the device should clear its token and re-onboard.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	ctx := r.Context()
	profile, err := h.store.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	photos, err := h.store.ListPhotos(ctx, profile.ID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	orders, err := h.store.ListOrders(ctx, profile.ID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{Profile: profile, Photos: photos, Orders: orders})
}

// Update godoc
// @Summary      Update profile settings
// @Description  Updates phone, theme and style notes. Only supplied fields change; an empty phone clears it.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Profile update payload"
// @Success      200      {object}  models.Profile
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/me [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	patch := store.ProfilePatch{Phone: req.Phone, StyleNotes: req.StyleNotes}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		if !theme.Valid() {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "theme must be dark or light")
			return
		}
		patch.Theme = &theme
	}

	profile, err := h.store.UpdateProfile(r.Context(), profileID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// UpdateMeasurements godoc
// @Summary      Replace measurements
// @Description  Replaces the measurement map wholesale with its gender and unit, stamping the update time. Keys invalid for the new gender are kept.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.MeasurementsUpdateRequest  true  "Measurements payload"
// @Success      200      {object}  models.Profile
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/me/measurements [put]
func (h *ProfileHandler) UpdateMeasurements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only PUT is allowed")
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	var req dto.MeasurementsUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	gender := models.Gender(req.Gender)
	unit := models.MeasurementUnit(req.Unit)
	if !gender.Valid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "gender must be male or female")
		return
	}
	if !unit.Valid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "measurement_unit must be inches or cm")
		return
	}

	profile, err := h.store.ReplaceMeasurements(r.Context(), profileID, req.Measurements, gender, unit, timeNow())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// ShareMessage godoc
// @Summary      Compose the profile share message
// @Description  Returns the WhatsApp text and deep link for sharing the profile. needs_phone is set when the owner has no phone on file yet.
// @Tags         share
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ShareMessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/share-message [get]
func (h *ProfileHandler) ShareMessage(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	message := whatsapp.ProfileShareMessage(h.config.App.BaseURL, profile)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ShareMessageResponse{
		Message:    message,
		Link:       whatsapp.ShareLink(message, ""),
		NeedsPhone: profile.Phone == nil || *profile.Phone == "",
	})
}

// PublicProfile godoc
// @Summary      Tailor-facing profile view
// @Description  Fetches a profile by slug with photos, the key-measurement preview and the full schema sections.
// @Tags         public
// @Produce      json
// @Param        slug  path      string  true  "Profile slug"
// @Success      200   {object}  dto.PublicProfileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profiles/{slug} [get]
func (h *ProfileHandler) PublicProfile(w http.ResponseWriter, r *http.Request, slug string) {
	ctx := r.Context()
	profile, err := h.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "This measurement profile does not exist or may have moved")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	photos, err := h.store.ListPhotos(ctx, profile.ID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PublicProfileResponse{
		Profile:  profile,
		Photos:   photos,
		Preview:  measurements.Preview(profile.Measurements, profile.Gender),
		Sections: measurements.SectionsFor(profile.Gender),
		Unit:     profile.MeasurementUnit.Label(),
	})
}
