package property

import (
	"time"

	"gorm.io/datatypes"
)

type PropertyType string

const (
	TypeHouse      PropertyType = "HOUSE"
	TypeApartment  PropertyType = "APARTMENT"
	TypeCommercial PropertyType = "COMMERCIAL"
	TypeLand       PropertyType = "LAND"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusSold      Status = "SOLD"
	StatusRented    Status = "RENTED"
)

type ImageType string

const (
	ImageMain      ImageType = "MAIN"
	ImageGallery   ImageType = "GALLERY"
	ImageFloorplan ImageType = "FLOORPLAN"
)

// Property represents the properties table
type Property struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title"`
	Description  string         `json:"description" gorm:"type:text"`
	Price        float64        `json:"price"`
	Address      string         `json:"address" gorm:"index"`
	PropertyType PropertyType   `json:"propertyType" gorm:"type:varchar(20);index"`
	Status       Status         `json:"status" gorm:"type:varchar(20);index"`
	NumBedrooms  int            `json:"numBedrooms"`
	NumBathrooms int            `json:"numBathrooms"`
	SquareMeters float64        `json:"squareMeters"`
	YearBuilt    int            `json:"yearBuilt"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Features     datatypes.JSON `json:"features,omitempty" gorm:"type:jsonb"`
	UserID       uint           `json:"userId" gorm:"index"`
	Images       []Image        `json:"images" gorm:"foreignKey:PropertyID"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Image rows never outlive their property; deletion is explicit, not a
// store-level cascade.
type Image struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	URL        string    `json:"url"`
	ImageType  ImageType `json:"imageType" gorm:"type:varchar(20)"`
	PropertyID uint      `json:"propertyId" gorm:"index"`
}

func (Property) TableName() string {
	return "properties"
}

func (Image) TableName() string {
	return "images"
}

func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCommercial, TypeLand:
		return true
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusSold, StatusRented:
		return true
	}
	return false
}

func ValidImageType(t ImageType) bool {
	switch t {
	case ImageMain, ImageGallery, ImageFloorplan:
		return true
	}
	return false
}
