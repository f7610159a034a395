package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/ecoleta/pkg/errhttp"
	"github.com/ghuser/ecoleta/pkg/httpx"
	"github.com/ghuser/ecoleta/pkg/logger"
	pkgvalidator "github.com/ghuser/ecoleta/pkg/validator"
	appsvcs "github.com/ghuser/ecoleta/services/point/application/services"
	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// PostPointHandler handles POST /points requests.
type PostPointHandler struct {
	svc       *appsvcs.Services
	log       logger.Logger
	maxMemory int64
}

// NewPostPointHandler returns a PostPointHandler. maxMemory bounds the part of
// the multipart form held in memory; the rest spills to temporary files.
func NewPostPointHandler(svc *appsvcs.Services, log logger.Logger, maxMemory int64) *PostPointHandler {
	return &PostPointHandler{svc: svc, log: log, maxMemory: maxMemory}
}

// Execute registers a new collection point.
//
//	@Summary		Register collection point
//	@Description	Registers a point with its photo and the item ids it accepts
//	@Tags			points
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Entity name"
//	@Param			email		formData	string	true	"Contact e-mail"
//	@Param			whatsapp	formData	string	true	"WhatsApp number"
//	@Param			uf			formData	string	true	"State code"
//	@Param			city		formData	string	true	"City"
//	@Param			latitude	formData	number	true	"Latitude"
//	@Param			longitude	formData	number	true	"Longitude"
//	@Param			items		formData	string	true	"Comma-separated item ids"
//	@Param			image		formData	file	true	"Point photo"
//	@Success		201			{object}	CreatePointResponse
//	@Failure		400			{object}	errhttp.ErrorResponse
//	@Failure		413			{object}	errhttp.ErrorResponse
//	@Failure		415			{object}	errhttp.ErrorResponse
//	@Failure		422			{object}	errhttp.ErrorResponse
//	@Failure		503			{object}	errhttp.ErrorResponse
//	@Router			/points [post]
func (h *PostPointHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateForm[CreatePointRequest](w, r, h.maxMemory)
	if !ok {
		return
	}

	image, err := readImage(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Registration.Register(r.Context(), models.Submission{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		UF:        req.UF,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Items:     req.Items,
		Image:     image,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatePointResponse{ID: int64(id)})
}

// readImage loads the "image" file part. A missing part is a field error.
func readImage(r *http.Request) (*models.ImageUpload, error) {
	f, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, pointdomain.NewFieldError("image", "is required")
	}
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &models.ImageUpload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// writeError logs server-side failures before delegating to errhttp.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if status := errhttp.StatusOf(err); status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	errhttp.WriteError(w, err)
}
