package usecases

import (
	"context"
	"sort"
	"strings"

	"paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/shared/logger"
)

type SearchPapersQuery struct {
	UserID     uint
	Text       string
	Subject    string
	GradeLevel string
	OwnedOnly  bool
}

// SearchPapersUseCase is the catalog query service. Every call re-reads the
// catalog and the caller's ledger rows; nothing is cached across requests.
// Active papers are visible to everyone; a paper the caller owns stays
// listed for them even after deactivation.
type SearchPapersUseCase struct {
	paperRepo    paper.Repository
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewSearchPapersUseCase(
	paperRepo paper.Repository,
	purchaseRepo purchase.Repository,
	logger logger.Interface,
) *SearchPapersUseCase {
	return &SearchPapersUseCase{
		paperRepo:    paperRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *SearchPapersUseCase) Execute(ctx context.Context, query SearchPapersQuery) ([]*dto.ListingDTO, error) {
	owned := map[uint]bool{}
	if query.UserID != 0 {
		records, err := uc.purchaseRepo.ListCompletedByUser(ctx, query.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load user purchases", "user_id", query.UserID, "error", err)
			return nil, err
		}
		for _, rec := range records {
			owned[rec.PaperID()] = true
		}
	}

	filter := paper.Filter{
		Text:       query.Text,
		Subject:    query.Subject,
		GradeLevel: query.GradeLevel,
		ActiveOnly: true,
	}
	papers, err := uc.paperRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search papers", "error", err)
		return nil, err
	}

	seen := map[uint]bool{}
	for _, p := range papers {
		seen[p.ID()] = true
	}

	// Owned papers stay visible to their owner even when deactivated, so
	// fetch any owned IDs the active-only query missed and apply the same
	// filter predicates in memory.
	var missing []uint
	for id := range owned {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		ownedPapers, err := uc.paperRepo.GetByIDs(ctx, missing)
		if err != nil {
			uc.logger.Errorw("failed to load owned papers", "user_id", query.UserID, "error", err)
			return nil, err
		}
		for _, p := range ownedPapers {
			if matchesFilter(p, filter) {
				papers = append(papers, p)
			}
		}
	}

	listings := make([]*dto.ListingDTO, 0, len(papers))
	for _, p := range papers {
		isOwned := owned[p.ID()]
		if query.OwnedOnly && !isOwned {
			continue
		}
		listings = append(listings, dto.NewListingDTO(p, isOwned))
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

// matchesFilter mirrors the repository's filter predicates, minus the active
// flag, for papers fetched outside the filtered query.
func matchesFilter(p *paper.Paper, f paper.Filter) bool {
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(p.Title()), needle) &&
			!strings.Contains(strings.ToLower(p.Description()), needle) &&
			!strings.Contains(strings.ToLower(p.Subject()), needle) {
			return false
		}
	}
	if f.Subject != "" && p.Subject() != f.Subject {
		return false
	}
	if f.GradeLevel != "" && p.GradeLevel() != f.GradeLevel {
		return false
	}
	return true
}
