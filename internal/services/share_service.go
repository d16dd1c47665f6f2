package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"smarttrip/internal/models/db_models"
	"smarttrip/internal/models/request_models"
	"smarttrip/internal/models/response_models"
	"smarttrip/internal/repositories"
	"smarttrip/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const defaultShareTTLDays = 30

type ShareServiceInterface interface {
	CreateShare(ctx context.Context, req request_models.CreateShareRequest) (*response_models.ShareCreated, error)
	GetShare(ctx context.Context, id string) (*response_models.SharedItinerary, error)
	DeleteShare(ctx context.Context, id, deleteToken string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type shareService struct {
	repo    repositories.IItineraryRepository
	ttlDays int
}

func NewShareService(repo repositories.IItineraryRepository) ShareServiceInterface {
	return &shareService{repo: repo, ttlDays: shareTTLDays()}
}

func shareTTLDays() int {
	if v := os.Getenv("SHARE_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultShareTTLDays
}

func (s *shareService) CreateShare(ctx context.Context, req request_models.CreateShareRequest) (*response_models.ShareCreated, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	req.Params.Normalize()

	id := uuid.New()
	ttl := utils.ShareExpiry(s.ttlDays)

	token, err := utils.CreateShareToken(id, time.Until(ttl))
	if err != nil {
		return nil, fmt.Errorf("%w: signing delete token: %v", utils.ErrDatabaseError, err)
	}
	tokenHash, err := utils.HashToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing delete token: %v", utils.ErrDatabaseError, err)
	}

	row := &db_models.Itinerary{
		Markdown:        req.Markdown,
		Country:         req.Params.Country,
		City:            req.Params.City,
		CityEn:          req.Params.CityEn,
		CountryCode:     req.Params.CountryCode,
		Nights:          req.Params.Nights,
		BudgetMode:      req.Params.BudgetMode,
		CompanionType:   req.Params.CompanionType,
		Pace:            req.Params.Pace,
		TravelStyles:    pq.StringArray(req.Params.TravelStyles),
		DayStartHour:    req.Params.DayStartHour,
		DayEndHour:      req.Params.DayEndHour,
		ExpiresAt:       ttl,
		DeleteTokenHash: tokenHash,
	}
	row.ID = id

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.ShareCreated{
		ID:          id.String(),
		DeleteToken: token,
		ExpiresAt:   utils.FormatRFC3339KST(ttl),
	}, nil
}

func (s *shareService) GetShare(ctx context.Context, id string) (*response_models.SharedItinerary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed share id", utils.ErrInvalidInput)
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if time.Now().After(row.ExpiresAt) {
		return nil, utils.ErrShareExpired
	}

	return &response_models.SharedItinerary{
		ID:            row.ID.String(),
		Markdown:      row.Markdown,
		Country:       row.Country,
		City:          row.City,
		Nights:        row.Nights,
		BudgetMode:    row.BudgetMode,
		CompanionType: row.CompanionType,
		Pace:          row.Pace,
		TravelStyles:  []string(row.TravelStyles),
		CreatedAt:     utils.FormatRFC3339KST(time.Unix(row.CreatedAt, 0)),
		ExpiresAt:     utils.FormatRFC3339KST(row.ExpiresAt),
	}, nil
}

func (s *shareService) DeleteShare(ctx context.Context, id, deleteToken string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed share id", utils.ErrInvalidInput)
	}
	if deleteToken == "" {
		return utils.ErrInvalidToken
	}

	claims, err := utils.ValidateShareToken(deleteToken)
	if err != nil {
		return utils.ErrInvalidToken
	}
	if claims.ItineraryID != id {
		return utils.ErrInvalidToken
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return utils.ErrItineraryNotFound
	}
	if err := utils.CompareToken(row.DeleteTokenHash, deleteToken); err != nil {
		return utils.ErrInvalidToken
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *shareService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return n, nil
}
