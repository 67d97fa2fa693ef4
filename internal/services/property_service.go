package services

import (
	"context"
	"fmt"

	"estatehub/internal/domain/property"
	"estatehub/internal/repository"
	estate_errors "estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

type PropertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	log          *logger.Logger
}

func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository, log *logger.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		log:          log,
	}
}

// SearchResult is one page of matching properties. TotalCount mirrors the
// length of this page, not the count across all pages; callers depending on
// the original API shape expect exactly that.
type SearchResult struct {
	Properties []property.Property `json:"properties"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalCount int                 `json:"totalCount"`
}

// Create persists the property with its image batch after checking the
// owning user resolves.
func (s *PropertyService) Create(ctx context.Context, p *property.Property) error {
	exists, err := s.userRepo.Exists(ctx, p.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("owner user %d: %w", p.UserID, estate_errors.ErrNotFound)
	}
	return s.propertyRepo.Create(ctx, p)
}

func (s *PropertyService) Search(ctx context.Context, f property.SearchFilter) (SearchResult, error) {
	properties, err := s.propertyRepo.Search(ctx, f)
	if err != nil {
		return SearchResult{}, err
	}
	if properties == nil {
		properties = []property.Property{}
	}
	return SearchResult{
		Properties: properties,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalCount: len(properties),
	}, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id uint) (property.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

// Update merges only the supplied fields over the stored row. An empty
// update set reads the row back unchanged; it never creates one.
func (s *PropertyService) Update(ctx context.Context, id uint, u property.Updates) (property.Property, error) {
	if u.Empty() {
		return s.propertyRepo.GetByID(ctx, id)
	}
	return s.propertyRepo.Update(ctx, id, u)
}

// Delete purges dependent images before the property row. The sequence is
// not transactional: a failure between the two steps leaves the property
// without images, which is logged and surfaced.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.propertyRepo.DeleteImages(ctx, id); err != nil {
		return err
	}
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if s.log != nil {
			s.log.Errorf("property %d: images purged but property delete failed: %s", id, err)
		}
		return err
	}
	return nil
}
