package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"campusai-be/internal/apperror"
	"campusai-be/internal/dto"
	"campusai-be/internal/entity"
	"campusai-be/internal/repository/unitofwork"
)

type IFaqService interface {
	// GetFaqs returns all FAQs, or only those in category when it is
	// non-empty.
	GetFaqs(ctx context.Context, category string) ([]dto.FaqResponse, error)
}

type faqService struct {
	factory unitofwork.RepositoryFactory
	cache   *cache.Cache
}

func NewFaqService(factory unitofwork.RepositoryFactory) IFaqService {
	return &faqService{
		factory: factory,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *faqService) GetFaqs(ctx context.Context, category string) ([]dto.FaqResponse, error) {
	cacheKey := "faqs:" + category
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]dto.FaqResponse), nil
	}

	uow := s.factory.NewUnitOfWork(ctx)

	var (
		faqs []*entity.Faq
		err  error
	)
	if category == "" {
		faqs, err = uow.FaqRepository().FindAll(ctx)
	} else {
		faqs, err = uow.FaqRepository().FindAllByCategory(ctx, category)
	}
	if err != nil {
		return nil, apperror.NewStorage("failed to load faqs", err)
	}

	out := make([]dto.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, dto.FaqResponse{
			Id:       f.Id,
			Category: f.Category,
			Question: f.Question,
			Answer:   f.Answer,
		})
	}

	s.cache.Set(cacheKey, out, cache.DefaultExpiration)
	return out, nil
}
