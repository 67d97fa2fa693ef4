package httpdto

import (
	"encoding/json"

	"estatehub/internal/domain/property"

	"gorm.io/datatypes"
)

type ImageInput struct {
	URL       string `json:"url" binding:"required,url"`
	ImageType string `json:"imageType" binding:"required,oneof=MAIN GALLERY FLOORPLAN"`
}

type CreatePropertyRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Price        float64         `json:"price" binding:"required,gt=0"`
	Address      string          `json:"address" binding:"required"`
	PropertyType string          `json:"propertyType" binding:"required,oneof=HOUSE APARTMENT COMMERCIAL LAND"`
	Status       string          `json:"status" binding:"required,oneof=AVAILABLE SOLD RENTED"`
	NumBedrooms  *int            `json:"numBedrooms" binding:"required,gte=0"`
	NumBathrooms *int            `json:"numBathrooms" binding:"required,gte=0"`
	SquareMeters float64         `json:"squareMeters" binding:"required,gt=0"`
	YearBuilt    int             `json:"yearBuilt" binding:"required,gt=0"`
	Latitude     *float64        `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64        `json:"longitude" binding:"required,gte=-180,lte=180"`
	Features     json.RawMessage `json:"features"`
	Images       []ImageInput    `json:"images" binding:"omitempty,dive"`
	UserID       uint            `json:"userId" binding:"required,gt=0"`
}

func (r CreatePropertyRequest) ToEntity() property.Property {
	p := property.Property{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Address:      r.Address,
		PropertyType: property.PropertyType(r.PropertyType),
		Status:       property.Status(r.Status),
		NumBedrooms:  *r.NumBedrooms,
		NumBathrooms: *r.NumBathrooms,
		SquareMeters: r.SquareMeters,
		YearBuilt:    r.YearBuilt,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		UserID:       r.UserID,
	}
	if len(r.Features) > 0 {
		p.Features = datatypes.JSON(r.Features)
	}
	for _, img := range r.Images {
		p.Images = append(p.Images, property.Image{
			URL:       img.URL,
			ImageType: property.ImageType(img.ImageType),
		})
	}
	return p
}

// UpdatePropertyRequest carries the partial field set; absent fields stay
// untouched.
type UpdatePropertyRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Address      *string  `json:"address"`
	PropertyType *string  `json:"propertyType" binding:"omitempty,oneof=HOUSE APARTMENT COMMERCIAL LAND"`
	Status       *string  `json:"status" binding:"omitempty,oneof=AVAILABLE SOLD RENTED"`
	NumBedrooms  *int     `json:"numBedrooms" binding:"omitempty,gte=0"`
	NumBathrooms *int     `json:"numBathrooms" binding:"omitempty,gte=0"`
	SquareMeters *float64 `json:"squareMeters" binding:"omitempty,gt=0"`
	YearBuilt    *int     `json:"yearBuilt" binding:"omitempty,gt=0"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

func (r UpdatePropertyRequest) ToUpdates() property.Updates {
	u := property.Updates{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Address:      r.Address,
		NumBedrooms:  r.NumBedrooms,
		NumBathrooms: r.NumBathrooms,
		SquareMeters: r.SquareMeters,
		YearBuilt:    r.YearBuilt,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
	if r.PropertyType != nil {
		t := property.PropertyType(*r.PropertyType)
		u.PropertyType = &t
	}
	if r.Status != nil {
		st := property.Status(*r.Status)
		u.Status = &st
	}
	return u
}
