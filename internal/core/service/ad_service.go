package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostpaws/petfinder-system/internal/api/metrics"
	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// maxListResults caps the number of ads returned by List. There is no
// pagination beyond the cap.
const maxListResults = 50

type AdService struct {
	repo   ports.AdRepository
	logger zerolog.Logger
}

func NewAdService(repo ports.AdRepository, logger zerolog.Logger) *AdService {
	return &AdService{repo: repo, logger: logger}
}

// Create parses the user-supplied event time and persists the listing
// attributed to its owner. time.Parse rejects impossible calendar dates
// ("31.02.2025"), which is exactly the contract.
func (s *AdService) Create(ctx context.Context, input ports.CreateAdInput) (string, error) {
	eventTime, err := time.Parse(domain.EventTimeLayout, input.Time)
	if err != nil {
		return "", domain.ErrBadTimeFormat
	}

	ad := &domain.Ad{
		UserID:      input.UserID,
		Status:      domain.AdStatus(input.Status),
		Type:        input.Type,
		Breed:       input.Breed,
		Color:       input.Color,
		Size:        input.Size,
		Distincts:   input.Distincts,
		Nickname:    input.Nickname,
		Danger:      input.Danger,
		Location:    input.Location,
		GeoLocation: input.GeoLocation,
		Time:        eventTime,
		Contact: domain.Contact{
			Name:  input.ContactName,
			Phone: input.ContactPhone,
			Email: input.ContactEmail,
		},
		Extras:    input.Extras,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, ad)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create ad")
		return "", fmt.Errorf("create ad: %w", err)
	}

	metrics.AdsCreatedTotal.WithLabelValues(input.Status).Inc()
	s.logger.Info().Str("ad_id", id).Str("user_id", input.UserID).Str("status", input.Status).Msg("ad created")
	return id, nil
}

// List returns up to maxListResults ads, newest first, applying only the
// filters present.
func (s *AdService) List(ctx context.Context, input ports.ListAdsInput) ([]ports.AdView, error) {
	ads, err := s.repo.List(ctx, ports.ListAdsFilter{
		Status: input.Status,
		Type:   input.Type,
		Breed:  input.Breed,
		Size:   input.Size,
		Danger: input.Danger,
		Limit:  maxListResults,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list ads")
		return nil, fmt.Errorf("list ads: %w", err)
	}

	views := make([]ports.AdView, 0, len(ads))
	for _, ad := range ads {
		views = append(views, toAdView(ad))
	}
	return views, nil
}

func toAdView(ad *domain.Ad) ports.AdView {
	return ports.AdView{
		ID:           ad.ID,
		Status:       string(ad.Status),
		Type:         ad.Type,
		Breed:        ad.Breed,
		Color:        ad.Color,
		Size:         ad.Size,
		Distincts:    ad.Distincts,
		Nickname:     ad.Nickname,
		Danger:       ad.Danger,
		Location:     ad.Location,
		GeoLocation:  ad.GeoLocation,
		Time:         ad.Time.Format(domain.EventTimeLayout),
		ContactName:  ad.Contact.Name,
		ContactPhone: ad.Contact.Phone,
		ContactEmail: ad.Contact.Email,
		Extras:       ad.Extras,
	}
}
