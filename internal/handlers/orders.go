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
	"SURUWE_BACK-END/internal/whatsapp"
)

// OrdersHandler serves the owner's order list and order detail.
type OrdersHandler struct {
	store    *store.Store
	uploader upload.Uploader
	config   *config.Config
	logger   *zap.Logger
}

func NewOrdersHandler(st *store.Store, up upload.Uploader, cfg *config.Config, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{store: st, uploader: up, config: cfg, logger: logger}
}

// Orders dispatches for /api/me/orders and its sub-paths
func (h *OrdersHandler) Orders(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/me/orders")
	rest = strings.Trim(rest, "/")

	if rest == "" {
		if r.Method != http.MethodGet {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is allowed")
			return
		}
		h.List(w, r)
		return
	}

	parts := strings.SplitN(rest, "/", 2)
	orderID, err := uuid.Parse(parts[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid order id")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.Detail(w, r, orderID)
		case http.MethodPut:
			h.Update(w, r, orderID)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET, PUT are allowed")
		}
		return
	}

	switch parts[1] {
	case "completed-photo":
		if r.Method != http.MethodPost {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
			return
		}
		h.CompletedPhoto(w, r, orderID)
	case "message":
		h.Message(w, r, orderID)
	case "completed-message":
		h.CompletedMessage(w, r, orderID)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown order action")
	}
}

// List godoc
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me/orders [get]
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	orders, err := h.store.ListOrders(r.Context(), profileID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.OrderListResponse{Orders: orders})
}

// Detail godoc
// @Summary      Get one order with attachments
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/orders/{id} [get]
func (h *OrdersHandler) Detail(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	ctx := r.Context()
	order, err := h.store.GetOrder(ctx, profileID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	// owner sees every attachment, hidden ones included
	attachments, err := h.store.ListAttachments(ctx, order.ID, false)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.OrderDetailResponse{Order: order, Attachments: attachments})
}

// Update godoc
// @Summary      Edit an order
// @Description  Full replace of the supplied tailor/description/fit-notes fields. Status is untouched.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                  true  "Order id"
// @Param        payload  body  dto.OrderUpdateRequest  true  "Order update payload"
// @Success      200  {object}  models.Order
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/orders/{id} [put]
func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	var req dto.OrderUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TailorName != nil && strings.TrimSpace(*req.TailorName) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "tailor_name cannot be empty")
		return
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "description cannot be empty")
		return
	}

	order, err := h.store.UpdateOrder(r.Context(), profileID, orderID, store.OrderPatch{
		TailorName:  req.TailorName,
		TailorCity:  req.TailorCity,
		TailorPhone: req.TailorPhone,
		Description: req.Description,
		FitNotes:    req.FitNotes,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, order)
}

// CompletedPhoto godoc
// @Summary      Attach the finished-piece photo
// @Description  Uploads the photo and escalates the order status to completed. Status never moves backward.
// @Tags         orders
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Order id"
// @Param        file  formData  file    true  "Image file"
// @Success      200  {object}  dto.CompletedPhotoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/me/orders/{id}/completed-photo [post]
func (h *OrdersHandler) CompletedPhoto(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	data, name, err := readMultipartFile(w, r, "file")
	if err != nil {
		return
	}

	ctx := r.Context()
	url, err := h.uploader.Upload(ctx, data, fmt.Sprintf("orders/%s/completed", orderID))
	if err != nil {
		h.logger.Warn("completed photo upload failed",
			zap.String("order_id", orderID.String()),
			zap.String("file", name),
			zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Upload failed", "the photo was not saved, try again")
		return
	}

	order, err := h.store.SetCompletedPhoto(ctx, profileID, orderID, url)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
			return
		}
		if errors.Is(err, store.ErrStatusBackward) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", err.Error())
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CompletedPhotoResponse{Order: order})
}

// Message godoc
// @Summary      Compose the order message
// @Description  Same template for first send and resend: tailor name, description, fit notes when present, profile link.
// @Tags         share
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  dto.ShareMessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/orders/{id}/message [get]
func (h *OrdersHandler) Message(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	ctx := r.Context()
	profile, err := h.store.GetProfile(ctx, profileID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
		return
	}
	order, err := h.store.GetOrder(ctx, profileID, orderID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
		return
	}

	message := whatsapp.OrderMessage(h.config.App.BaseURL, profile, order)
	phone := ""
	if order.TailorPhone != nil {
		phone = *order.TailorPhone
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ShareMessageResponse{
		Message: message,
		Link:    whatsapp.ShareLink(message, phone),
	})
}

// CompletedMessage godoc
// @Summary      Compose the completed-piece message
// @Tags         share
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  dto.ShareMessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/orders/{id}/completed-message [get]
func (h *OrdersHandler) CompletedMessage(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing profile in context")
		return
	}

	order, err := h.store.GetOrder(r.Context(), profileID, orderID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
		return
	}

	message := whatsapp.CompletedOrderMessage(order)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ShareMessageResponse{
		Message: message,
		Link:    whatsapp.ShareLink(message, ""),
	})
}

// PublicOrder godoc
// @Summary      Tailor-facing order view
// @Description  Fetches an order by id under a profile slug, with tailor-visible attachments only.
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Profile slug"
// @Param        id    path  string  true  "Order id"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{slug}/orders/{id} [get]
func (h *OrdersHandler) PublicOrder(w http.ResponseWriter, r *http.Request, slug string, orderID uuid.UUID) {
	ctx := r.Context()
	profile, err := h.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Profile not found")
		return
	}
	order, err := h.store.GetOrder(ctx, profile.ID, orderID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Order not found")
		return
	}

	attachments, err := h.store.ListAttachments(ctx, order.ID, true)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.OrderDetailResponse{Order: order, Attachments: attachments})
}
