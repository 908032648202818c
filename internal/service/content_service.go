package service

import (
	"context"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

type IContentService interface {
	GetContent(ctx context.Context, lang string) ([]*dto.EducationalCardResponse, error)
}

// contentService serves the educational catalog through a short-lived
// in-process cache; the catalog only changes on reseed.
type contentService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{
		uowFactory: uowFactory,
		cache:      gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *contentService) GetContent(ctx context.Context, lang string) ([]*dto.EducationalCardResponse, error) {
	cacheKey := "cards:" + lang
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]*dto.EducationalCardResponse), nil
	}

	cards, err := s.loadCards(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 && lang != "es" {
		cards, err = s.loadCards(ctx, "es")
		if err != nil {
			return nil, err
		}
	}

	s.cache.Set(cacheKey, cards, gocache.DefaultExpiration)
	return cards, nil
}

func (s *contentService) loadCards(ctx context.Context, lang string) ([]*dto.EducationalCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cards, err := uow.EducationalCardRepository().FindAll(ctx,
		specification.ByLanguage{Language: lang},
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EducationalCardResponse, 0, len(cards))
	for _, card := range cards {
		result = append(result, &dto.EducationalCardResponse{
			Id:          card.Id,
			Title:       card.Title,
			Category:    card.Category,
			Description: card.Description,
			Content:     card.Content,
			Icon:        card.Icon,
			Color:       card.Color,
			Order:       card.SortOrder,
		})
	}
	return result, nil
}
