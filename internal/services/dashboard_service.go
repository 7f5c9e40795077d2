package services

import (
	"context"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
)

// DashboardSummary is the landing-page snapshot: one count per
// collection plus the lifetime visitor total.
type DashboardSummary struct {
	Properties int64 `json:"properties"`
	Leads      int64 `json:"leads"`
	Banners    int64 `json:"banners"`
	Headings   int64 `json:"headings"`
	BlogPosts  int64 `json:"blogPosts"`
	GreenForms int64 `json:"greenForms"`
	Visits     int64 `json:"visits"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	RecordVisit(ctx context.Context) (int64, error)
	Visits(ctx context.Context) (int64, error)
}

type dashboardService struct {
	properties repositories.PropertyRepository
	leads      repositories.LeadRepository
	banners    repositories.BannerRepository
	headings   repositories.HeadingRepository
	blogs      repositories.BlogRepository
	green      repositories.GreenRepository
	visits     repositories.VisitRepository
}

func NewDashboardService(
	properties repositories.PropertyRepository,
	leads repositories.LeadRepository,
	banners repositories.BannerRepository,
	headings repositories.HeadingRepository,
	blogs repositories.BlogRepository,
	green repositories.GreenRepository,
	visits repositories.VisitRepository,
) DashboardService {
	return &dashboardService{
		properties: properties,
		leads:      leads,
		banners:    banners,
		headings:   headings,
		blogs:      blogs,
		green:      green,
		visits:     visits,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&summary.Properties, s.properties.Count},
		{&summary.Leads, s.leads.Count},
		{&summary.Banners, s.banners.Count},
		{&summary.Headings, s.headings.Count},
		{&summary.BlogPosts, s.blogs.Count},
		{&summary.GreenForms, s.green.Count},
		{&summary.Visits, s.visits.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return summary, nil
}

func (s *dashboardService) RecordVisit(ctx context.Context) (int64, error) {
	return s.visits.Increment(ctx)
}

func (s *dashboardService) Visits(ctx context.Context) (int64, error) {
	return s.visits.Count(ctx)
}
