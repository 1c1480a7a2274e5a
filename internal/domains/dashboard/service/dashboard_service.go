package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"hypehouse-backend/internal/domains/dashboard/model"
	"hypehouse-backend/internal/domains/dashboard/repository"
)

type ServiceInterface interface {
	Summary(ctx context.Context) (*model.Summary, error)
}

type dashboardService struct {
	repo repository.RepositoryInterface
}

func NewDashboardService(repo repository.RepositoryInterface) ServiceInterface {
	return &dashboardService{repo: repo}
}

// Summary đếm các section song song, mỗi query một transaction riêng
func (s *dashboardService) Summary(ctx context.Context) (*model.Summary, error) {
	var (
		summary model.Summary
		mu      sync.Mutex
	)
	g, ctx := errgroup.WithContext(ctx)

	for _, section := range model.Sections {
		g.Go(func() error {
			c, err := s.repo.CountSection(ctx, section)
			if err != nil {
				return err
			}
			mu.Lock()
			summary.Set(section, c)
			mu.Unlock()
			return nil
		})
	}
	g.Go(func() error {
		demos, err := s.repo.CountDemos(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		summary.Demos = demos
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
