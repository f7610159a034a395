// Package services contains stateless domain services for the point bounded context.
// They enforce submission rules on domain types and perform no I/O.
package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

const maxTextFieldLength = 255

// ValidateSubmission checks every scalar field and the image presence of sub,
// returning a Point draft (no ID, no image ref) or the first *FieldError found.
// Fields are checked in wire order: name, email, whatsapp, uf, city, latitude,
// longitude, image.
func ValidateSubmission(sub models.Submission) (*models.Point, error) {
	texts := []struct {
		field string
		value *string
	}{
		{"name", &sub.Name},
		{"email", &sub.Email},
		{"whatsapp", &sub.Whatsapp},
		{"uf", &sub.UF},
		{"city", &sub.City},
	}
	for _, f := range texts {
		v, err := requireText(f.field, *f.value)
		if err != nil {
			return nil, err
		}
		*f.value = v
	}

	lat, err := parseCoordinate("latitude", sub.Latitude, 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate("longitude", sub.Longitude, 180)
	if err != nil {
		return nil, err
	}

	if sub.Image == nil || len(sub.Image.Data) == 0 {
		return nil, pointdomain.NewFieldError("image", "is required")
	}

	return &models.Point{
		EntityName: sub.Name,
		Email:      sub.Email,
		Whatsapp:   sub.Whatsapp,
		Location:   orb.Point{lon, lat},
		City:       sub.City,
		UF:         sub.UF,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// NormalizeItems parses the raw items field into a deduplicated, non-empty set.
func NormalizeItems(raw string) (models.ItemIDSet, error) {
	ids, err := models.ParseItemIDs(raw)
	if err != nil {
		return nil, pointdomain.NewFieldError("items", "%v", err)
	}
	if len(ids) == 0 {
		return nil, pointdomain.NewFieldError("items", "at least one item is required")
	}
	return ids, nil
}

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", pointdomain.NewFieldError(field, "must not be empty")
	}
	if len(v) > maxTextFieldLength {
		return "", pointdomain.NewFieldError(field, "must not exceed %d characters", maxTextFieldLength)
	}
	return v, nil
}

func parseCoordinate(field, raw string, limit float64) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, pointdomain.NewFieldError(field, "must not be empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, pointdomain.NewFieldError(field, "must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, pointdomain.NewFieldError(field, "must be finite")
	}
	if v < -limit || v > limit {
		return 0, pointdomain.NewFieldError(field, "must be between %g and %g", -limit, limit)
	}
	return v, nil
}
