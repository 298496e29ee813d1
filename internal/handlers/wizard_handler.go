package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SURUWE_BACK-END/internal/config"
	"SURUWE_BACK-END/internal/dto"
	"SURUWE_BACK-END/internal/middleware"
	"SURUWE_BACK-END/internal/models"
	"SURUWE_BACK-END/internal/store"
	"SURUWE_BACK-END/internal/upload"
	"SURUWE_BACK-END/internal/utils"
	"SURUWE_BACK-END/internal/wizard"
)

// WizardHandler exposes the order wizard as session-scoped endpoints. The
// wizard itself lives in internal/wizard; this layer only translates HTTP.
type WizardHandler struct {
	store    *store.Store
	uploader upload.Uploader
	registry *wizard.Registry
	config   *config.Config
	logger   *zap.Logger
}

func NewWizardHandler(st *store.Store, up upload.Uploader, reg *wizard.Registry, cfg *config.Config, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{store: st, uploader: up, registry: reg, config: cfg, logger: logger}
}

// Wizard dispatches for /api/me/wizard and its sub-paths
func (h *WizardHandler) Wizard(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/me/wizard"), "/")
	if rest == "" {
		if r.Method != http.MethodPost {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
			return
		}
		h.Start(w, r, profileID)
		return
	}

	parts := strings.Split(rest, "/")
	sessionID, err := uuid.Parse(parts[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid session id")
		return
	}
	wiz, ok := h.registry.Get(sessionID, profileID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "wizard session not found or expired")
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is allowed")
			return
		}
		h.writeState(w, sessionID, wiz)
		return
	}

	switch parts[1] {
	case "tailor":
		h.Tailor(w, r, sessionID, wiz)
	case "notes":
		h.Notes(w, r, sessionID, wiz)
	case "attachments":
		h.Attachments(w, r, parts[2:], sessionID, wiz)
	case "back":
		h.Back(w, r, sessionID, wiz)
	case "measurements":
		h.Measurements(w, r, sessionID, wiz)
	case "submit":
		h.Submit(w, r, sessionID, wiz)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown wizard action")
	}
}

// Start godoc
// @Summary      Start a new order wizard
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.WizardStateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/wizard [post]
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request, profileID uuid.UUID) {
	profile, err := h.store.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	sessionID, wiz := h.registry.Start(profile)
	h.logger.Info("wizard started",
		zap.String("profile_id", profileID.String()),
		zap.String("session_id", sessionID.String()))
	h.writeStateStatus(w, http.StatusCreated, sessionID, wiz)
}

// Tailor godoc
// @Summary      Stage 1: who is making this
// @Description  Records tailor name, city and description. Blocked until name and description are non-empty after trimming.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                   true  "Session id"
// @Param        payload  body  dto.WizardTailorRequest  true  "Tailor details"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/me/wizard/{id}/tailor [post]
func (h *WizardHandler) Tailor(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}
	var req dto.WizardTailorRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := wiz.SetTailorDetails(req.TailorName, req.TailorCity, req.Description); err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

// Notes godoc
// @Summary      Stage 2: fit notes
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                  true  "Session id"
// @Param        payload  body  dto.WizardNotesRequest  true  "Fit notes"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/me/wizard/{id}/notes [post]
func (h *WizardHandler) Notes(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}
	var req dto.WizardNotesRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := wiz.SetFitNotes(req.FitNotes); err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

// Attachments stages, removes or toggles reference images during stage 2.
func (h *WizardHandler) Attachments(w http.ResponseWriter, r *http.Request, rest []string, sessionID uuid.UUID, wiz *wizard.Wizard) {
	switch {
	case len(rest) == 0:
		if r.Method != http.MethodPost {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
			return
		}
		h.attachmentAdd(w, r, sessionID, wiz)
	case len(rest) == 1:
		if r.Method != http.MethodDelete {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only DELETE is allowed")
			return
		}
		h.attachmentRemove(w, r, rest[0], sessionID, wiz)
	case len(rest) == 2 && rest[1] == "visibility":
		if r.Method != http.MethodPost {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
			return
		}
		h.attachmentToggle(w, r, rest[0], sessionID, wiz)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown attachment action")
	}
}

func (h *WizardHandler) attachmentAdd(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	data, name, err := readMultipartFile(w, r, "file")
	if err != nil {
		return
	}
	// staged images default to tailor-visible
	if _, err := wiz.AddAttachment(name, data, true); err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

func (h *WizardHandler) attachmentRemove(w http.ResponseWriter, r *http.Request, indexStr string, sessionID uuid.UUID, wiz *wizard.Wizard) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid attachment index")
		return
	}
	if err := wiz.RemoveAttachment(index); err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

func (h *WizardHandler) attachmentToggle(w http.ResponseWriter, r *http.Request, indexStr string, sessionID uuid.UUID, wiz *wizard.Wizard) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid attachment index")
		return
	}
	if err := wiz.ToggleAttachmentVisibility(index); err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

// Back godoc
// @Summary      Step back one stage
// @Description  Back from stage 1 cancels the wizard: the session is dropped and nothing was persisted, apart from a measurement save already committed.
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Session id"
// @Success      200  {object}  dto.WizardStateResponse
// @Success      204  "wizard cancelled"
// @Router       /api/me/wizard/{id}/back [post]
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}
	if cancelled := wiz.Back(); cancelled {
		h.registry.Remove(sessionID)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeState(w, sessionID, wiz)
}

// Measurements godoc
// @Summary      Stage 3: the measurements gate
// @Description  Drives the gate with one of four actions. continue accepts fresh measurements; update opens the editing detour; skip moves on without touching anything; save replaces the working copy and commits it to the profile.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                         true  "Session id"
// @Param        payload  body  dto.WizardMeasurementsRequest  true  "Gate action"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/me/wizard/{id}/measurements [post]
func (h *WizardHandler) Measurements(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}
	var req dto.WizardMeasurementsRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var err error
	switch req.Action {
	case "continue":
		err = wiz.Continue()
	case "update":
		err = wiz.Update()
	case "skip":
		err = wiz.Skip()
	case "save":
		h.applyEdits(wiz, &req)
		err = wiz.SaveMeasurements(r.Context(), h.store)
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "action must be continue, update, skip, or save")
		return
	}
	if err != nil {
		h.writeWizardError(w, err)
		return
	}
	h.writeState(w, sessionID, wiz)
}

// applyEdits replaces the wizard's working copy with the request payload.
func (h *WizardHandler) applyEdits(wiz *wizard.Wizard, req *dto.WizardMeasurementsRequest) {
	editor := wiz.Editor()
	if g := models.Gender(req.Gender); g.Valid() {
		editor.SetGender(g)
	}
	if u := models.MeasurementUnit(req.Unit); u.Valid() {
		editor.SetUnit(u)
	}
	if req.Measurements != nil {
		// full replace: clear then refill through the normalizing setter
		for key := range editor.Values() {
			editor.SetField(key, "")
		}
		for key, value := range req.Measurements {
			editor.SetField(key, strconv.FormatFloat(value, 'f', -1, 64))
		}
	}
}

// Submit godoc
// @Summary      Stage 4: review and send
// @Description  Creates the order (status sent), uploads staged attachments one by one (failures drop the file, never the order) and returns the composed message with its wa.me link. The session is closed on success.
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Session id"
// @Success      201  {object}  dto.WizardSubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/me/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, wiz *wizard.Wizard) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}

	result, err := wiz.Submit(r.Context(), h.store, h.uploader, wizard.SubmitConfig{
		BaseURL:               h.config.App.BaseURL,
		SurfaceUploadFailures: h.config.App.SurfaceUploadFailures,
		Logger:                h.logger,
	})
	if err != nil {
		if errors.Is(err, wizard.ErrWrongStage) {
			h.writeWizardError(w, err)
			return
		}
		// fail closed: no order, no message, wizard stays on review
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	h.registry.Remove(sessionID)
	h.logger.Info("order sent",
		zap.String("order_id", result.Order.ID.String()),
		zap.Int("dropped_uploads", result.DroppedUploads))

	utils.WriteJSONResponse(w, http.StatusCreated, dto.WizardSubmitResponse{
		Order:          result.Order,
		Message:        result.Message,
		Link:           result.Link,
		DroppedUploads: result.DroppedUploads,
		UploadErrors:   result.UploadErrors,
	})
}

// ---------- helpers ----------

func (h *WizardHandler) writeWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wizard.ErrTailorRequired):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, wizard.ErrWrongStage):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, wizard.ErrNoSuchAttachment):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func (h *WizardHandler) writeState(w http.ResponseWriter, sessionID uuid.UUID, wiz *wizard.Wizard) {
	h.writeStateStatus(w, http.StatusOK, sessionID, wiz)
}

func (h *WizardHandler) writeStateStatus(w http.ResponseWriter, status int, sessionID uuid.UUID, wiz *wizard.Wizard) {
	resp := dto.WizardStateResponse{
		SessionID:   sessionID.String(),
		Stage:       wiz.Stage().String(),
		StageNum:    wiz.Stage().Number(),
		Stages:      wizard.TotalSteps,
		TailorName:  wiz.TailorName(),
		TailorCity:  wiz.TailorCity(),
		Description: wiz.Description(),
		FitNotes:    wiz.FitNotes(),
	}
	for i, att := range wiz.Attachments() {
		resp.Attachments = append(resp.Attachments, dto.WizardAttachmentState{
			Index:           i,
			Name:            att.Name,
			Size:            len(att.Data),
			VisibleToTailor: att.Visible,
		})
	}

	switch wiz.Stage() {
	case wizard.StageMeasurements, wizard.StageMeasurementsEdit:
		gate := wiz.Gate()
		editor := wiz.Editor()
		state := &dto.WizardGateState{
			HasMeasurements: gate.HasMeasurements,
			Stale:           gate.Stale,
			Sections:        editor.Sections(),
			Values:          editor.Values(),
			Gender:          string(editor.Gender()),
			Unit:            string(editor.Unit()),
		}
		if gate.LastUpdated != nil {
			state.LastUpdated = utils.FormatRelativeDate(*gate.LastUpdated, timeNow())
		}
		resp.Gate = state
	case wizard.StageReview:
		resp.Preview = wiz.Message(h.config.App.BaseURL)
	}

	utils.WriteJSONResponse(w, status, resp)
}
