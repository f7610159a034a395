package handlers

import (
	"time"

	appsvcs "github.com/ghuser/ecoleta/services/point/application/services"
)

// CreatePointRequest holds the text parts of the POST /points multipart form.
// The image arrives as the file part "image".
type CreatePointRequest struct {
	Name      string `form:"name"      validate:"required,max=255" example:"Green Corp"`
	Email     string `form:"email"     validate:"required,email,max=255" example:"contact@greencorp.example"`
	Whatsapp  string `form:"whatsapp"  validate:"required,max=255" example:"5511999999999"`
	UF        string `form:"uf"        validate:"required,max=255" example:"SP"`
	City      string `form:"city"      validate:"required,max=255" example:"São Paulo"`
	Latitude  string `form:"latitude"  validate:"required" example:"-23.5"`
	Longitude string `form:"longitude" validate:"required" example:"-46.6"`
	Items     string `form:"items"     validate:"required" example:"1,3"`
} // @name CreatePointRequest

// CreatePointResponse is returned on successful registration.
type CreatePointResponse struct {
	ID int64 `json:"id" example:"1"`
} // @name CreatePointResponse

// PointBody is the point part of GET /points/{pointID}.
type PointBody struct {
	ID        int64     `json:"id"         example:"1"`
	Name      string    `json:"name"       example:"Green Corp"`
	Email     string    `json:"email"      example:"contact@greencorp.example"`
	Whatsapp  string    `json:"whatsapp"   example:"5511999999999"`
	Image     string    `json:"image"      example:"3f2a9c0e1b7d4a6f8e2c5b1a-front.jpg"`
	ImageURL  string    `json:"image_url"  example:"http://localhost:8080/uploads/3f2a9c0e1b7d4a6f8e2c5b1a-front.jpg"`
	Latitude  float64   `json:"latitude"   example:"-23.5"`
	Longitude float64   `json:"longitude"  example:"-46.6"`
	City      string    `json:"city"       example:"São Paulo"`
	UF        string    `json:"uf"         example:"SP"`
	CreatedAt time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
} // @name Point

// ItemTitle is one accepted item of a point.
type ItemTitle struct {
	Title string `json:"title" example:"Lamp"`
} // @name ItemTitle

// GetPointResponse is returned by GET /points/{pointID}.
type GetPointResponse struct {
	Point PointBody   `json:"point"`
	Items []ItemTitle `json:"items"`
} // @name GetPointResponse

// ItemResponse is one catalog entry returned by GET /items.
type ItemResponse struct {
	ID       int64  `json:"id"        example:"1"`
	Title    string `json:"title"     example:"Lamp"`
	ImageURL string `json:"image_url" example:"http://localhost:8080/uploads/lamps.svg"`
} // @name Item

func toGetPointResponse(v *appsvcs.PointView) GetPointResponse {
	p := v.Point
	items := make([]ItemTitle, len(v.Items))
	for i, title := range v.Items {
		items[i] = ItemTitle{Title: title}
	}
	return GetPointResponse{
		Point: PointBody{
			ID:        int64(p.ID),
			Name:      p.EntityName,
			Email:     p.Email,
			Whatsapp:  p.Whatsapp,
			Image:     p.ImageRef,
			ImageURL:  v.ImageURL,
			Latitude:  p.Latitude(),
			Longitude: p.Longitude(),
			City:      p.City,
			UF:        p.UF,
			CreatedAt: p.CreatedAt,
		},
		Items: items,
	}
}
