package handlers

import (
	"net/http"

	"github.com/ghuser/ecoleta/pkg/httpx"
	"github.com/ghuser/ecoleta/pkg/logger"
	appsvcs "github.com/ghuser/ecoleta/services/point/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewListItemsHandler(svc *appsvcs.Services, log logger.Logger) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, log: log}
}

// Execute lists the item catalog.
//
//	@Summary		List items
//	@Description	Lists every collectible item type in catalog order
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}	ItemResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = ItemResponse{ID: int64(item.ID), Title: item.Title, ImageURL: item.ImageURL}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
