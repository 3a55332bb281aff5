package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var request models.CreateItemRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), callerID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", item.ID).Int64("owner_id", item.OwnerID).Msg("item created")

	response := success()
	response.Data = item
	writeResponse(w, r, response)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := success()
	response.Data = items
	writeResponse(w, r, response)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.ItemService.DeleteItem(r.Context(), callerID, itemID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", itemID).Msg("item deleted")
	writeResponse(w, r, success())
}
