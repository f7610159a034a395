package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ecoleta/pkg/httpx"
	"github.com/ghuser/ecoleta/pkg/logger"
	appsvcs "github.com/ghuser/ecoleta/services/point/application/services"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// GetPointHandler handles GET /points/{pointID} requests.
type GetPointHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewGetPointHandler(svc *appsvcs.Services, log logger.Logger) *GetPointHandler {
	return &GetPointHandler{svc: svc, log: log}
}

// Execute returns a point with the titles of the items it accepts.
//
//	@Summary		Get collection point
//	@Tags			points
//	@Produce		json
//	@Param			pointID	path		int	true	"Point id"
//	@Success		200		{object}	GetPointResponse
//	@Failure		400		{object}	errhttp.ErrorResponse
//	@Failure		404		{object}	errhttp.ErrorResponse
//	@Router			/points/{pointID} [get]
func (h *GetPointHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "pointID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "point id must be a positive integer")
		return
	}

	view, err := h.svc.Query.GetPointDetail(r.Context(), models.PointID(id))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toGetPointResponse(view))
}
