package repository

import (
	"context"
	"errors"
	"fmt"

	"estatehub/internal/domain/property"
	estate_errors "estatehub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresPropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PostgresPropertyRepository{db: db}
}

// Create persists the property together with its image batch through the
// GORM association. The two inserts are not atomic across a crash; see the
// delete path for the same accepted weakness.
func (r *PostgresPropertyRepository) Create(ctx context.Context, p *property.Property) error {
	res := r.db.WithContext(ctx).Create(p)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return estate_errors.ErrNotFound
		}
		return res.Error
	}
	return nil
}

func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id uint) (property.Property, error) {
	var p property.Property
	err := r.db.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return property.Property{}, estate_errors.ErrNotFound
		}
		return property.Property{}, err
	}
	return p, nil
}

func (r *PostgresPropertyRepository) Search(ctx context.Context, f property.SearchFilter) ([]property.Property, error) {
	q := r.db.WithContext(ctx).Model(&property.Property{})

	if f.Location != "" {
		q = q.Where("address ILIKE ?", "%"+f.Location+"%")
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.NumBedrooms != nil {
		q = q.Where("num_bedrooms = ?", *f.NumBedrooms)
	}
	if f.NumBathrooms != nil {
		q = q.Where("num_bathrooms = ?", *f.NumBathrooms)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.PropertyType != nil {
		q = q.Where("property_type = ?", *f.PropertyType)
	}
	if f.MinSquareMeters != nil {
		q = q.Where("square_meters >= ?", *f.MinSquareMeters)
	}
	if f.YearBuilt != nil {
		q = q.Where("year_built = ?", *f.YearBuilt)
	}

	if f.HasProximity() {
		// Requires the postgis extension. A store without it fails the query,
		// which is the intended behaviour rather than a silent non-spatial
		// fallback.
		radius := f.RadiusMeters
		if radius <= 0 {
			radius = property.DefaultRadiusMeters
		}
		q = q.Where(
			"ST_DWithin(ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			*f.Longitude, *f.Latitude, radius,
		)
	}

	var properties []property.Property
	err := q.Preload("Images").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("property search: %w", err)
	}
	return properties, nil
}

func (r *PostgresPropertyRepository) Update(ctx context.Context, id uint, u property.Updates) (property.Property, error) {
	values := map[string]interface{}{}
	if u.Title != nil {
		values["title"] = *u.Title
	}
	if u.Description != nil {
		values["description"] = *u.Description
	}
	if u.Price != nil {
		values["price"] = *u.Price
	}
	if u.Address != nil {
		values["address"] = *u.Address
	}
	if u.PropertyType != nil {
		values["property_type"] = *u.PropertyType
	}
	if u.Status != nil {
		values["status"] = *u.Status
	}
	if u.NumBedrooms != nil {
		values["num_bedrooms"] = *u.NumBedrooms
	}
	if u.NumBathrooms != nil {
		values["num_bathrooms"] = *u.NumBathrooms
	}
	if u.SquareMeters != nil {
		values["square_meters"] = *u.SquareMeters
	}
	if u.YearBuilt != nil {
		values["year_built"] = *u.YearBuilt
	}
	if u.Latitude != nil {
		values["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		values["longitude"] = *u.Longitude
	}

	if len(values) > 0 {
		res := r.db.WithContext(ctx).
			Model(&property.Property{}).
			Where("id = ?", id).
			Updates(values)
		if res.Error != nil {
			return property.Property{}, res.Error
		}
		if res.RowsAffected == 0 {
			return property.Property{}, estate_errors.ErrNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresPropertyRepository) DeleteImages(ctx context.Context, propertyID uint) error {
	return r.db.WithContext(ctx).
		Delete(&property.Image{}, "property_id = ?", propertyID).Error
}

func (r *PostgresPropertyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&property.Property{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return estate_errors.ErrNotFound
	}
	return nil
}
