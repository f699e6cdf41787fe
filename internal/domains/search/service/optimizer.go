package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	"hostelhub/internal/domains/search/model/dto"
	"hostelhub/internal/domains/search/repository"
	visitorRepo "hostelhub/internal/domains/visitor/repository"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/timezone"
)

// minSharedPrefix is the prefix length two terms must share before the
// optimizer suggests them as synonyms.
const minSharedPrefix = 4

type Optimizer interface {
	Analyze(ctx context.Context) (dto.OptimizationReport, error)
}

type optimizerServiceImpl struct {
	queryRepo    repository.Query
	activityRepo visitorRepo.Activity
	hostelRepo   hostelRepo.Hostel
	cfg          *config.Config
	otel         otel.Otel
}

func NewOptimizer(
	queryRepo repository.Query,
	activityRepo visitorRepo.Activity,
	hostelRepo hostelRepo.Hostel,
	cfg *config.Config,
	otel otel.Otel,
) Optimizer {
	return &optimizerServiceImpl{
		queryRepo:    queryRepo,
		activityRepo: activityRepo,
		hostelRepo:   hostelRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Analyze builds an on-demand report over the recent query log:
// frequent zero-result terms, synonym candidates pairing those terms
// with hostel-name terms, and cities searched more than they are
// viewed.
func (s *optimizerServiceImpl) Analyze(ctx context.Context) (res dto.OptimizationReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Analyze")
	defer scope.End()
	defer scope.TraceIfError(err)

	opt := s.cfg.App.SearchOptimizer

	zeroResult, err := s.queryRepo.ZeroResultKeywords(ctx, opt.WindowDays, opt.MinOccurrences, 50)
	if err != nil {
		log.Error().Err(err).Msg("failed to analyze zero-result keywords")

		return res, fmt.Errorf("failed to analyze zero-result keywords: %w", err)
	}

	hostelTerms, err := s.hostelNameTerms(ctx)
	if err != nil {
		return res, err
	}

	queryShares, err := s.queryRepo.CityQueryShares(ctx, opt.WindowDays)
	if err != nil {
		log.Error().Err(err).Msg("failed to analyze city query shares")

		return res, fmt.Errorf("failed to analyze city query shares: %w", err)
	}

	viewShares, err := s.activityRepo.CityViewShares(ctx, opt.WindowDays)
	if err != nil {
		log.Error().Err(err).Msg("failed to analyze city view shares")

		return res, fmt.Errorf("failed to analyze city view shares: %w", err)
	}

	res.ZeroResultTerms = make([]dto.ZeroResultTerm, len(zeroResult))
	for i, t := range zeroResult {
		res.ZeroResultTerms[i] = dto.ZeroResultTerm{Term: t.Term, Count: t.Count}
	}

	viewTermShares := make([]repository.TermShare, len(viewShares))
	for i, v := range viewShares {
		viewTermShares[i] = repository.TermShare(v)
	}

	res.SynonymSuggestions = suggestSynonyms(zeroResult, hostelTerms)
	res.BoostSuggestions = suggestBoosts(queryShares, viewTermShares)
	res.WindowDays = opt.WindowDays
	res.GeneratedAt = timezone.Now()

	return res, nil
}

func (s *optimizerServiceImpl) hostelNameTerms(ctx context.Context) ([]string, error) {
	hostels, err := s.hostelRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    hostelModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    hostelModel.TableName,
			},
		},
	}, hostelModel.FieldID, hostelModel.FieldName)
	if err != nil {
		return nil, fmt.Errorf("failed to get hostel names: %w", err)
	}

	seen := map[string]bool{}
	terms := []string{}

	for _, hostel := range hostels {
		for _, word := range strings.Fields(strings.ToLower(hostel.Name)) {
			if len(word) >= minSharedPrefix && !seen[word] {
				seen[word] = true
				terms = append(terms, word)
			}
		}
	}

	sort.Strings(terms)

	return terms, nil
}

// suggestSynonyms pairs zero-result query terms with hostel-name terms
// sharing a prefix of at least minSharedPrefix characters.
func suggestSynonyms(zeroResult []repository.TermShare, hostelTerms []string) []dto.SynonymSuggestion {
	suggestions := []dto.SynonymSuggestion{}

	for _, zr := range zeroResult {
		for _, word := range strings.Fields(zr.Term) {
			if len(word) < minSharedPrefix {
				continue
			}

			for _, hostelTerm := range hostelTerms {
				if word == hostelTerm {
					continue
				}

				prefix := sharedPrefix(word, hostelTerm)
				if len(prefix) >= minSharedPrefix {
					suggestions = append(suggestions, dto.SynonymSuggestion{
						QueryTerm:    word,
						HostelTerm:   hostelTerm,
						SharedPrefix: prefix,
					})
				}
			}
		}
	}

	return suggestions
}

// suggestBoosts flags cities whose share of searches exceeds their
// share of views, meaning demand outpaces what visitors are shown.
func suggestBoosts(queryShares, viewShares []repository.TermShare) []dto.BoostSuggestion {
	totalQueries := 0
	for _, q := range queryShares {
		totalQueries += q.Count
	}

	totalViews := 0
	for _, v := range viewShares {
		totalViews += v.Count
	}

	if totalQueries == 0 {
		return []dto.BoostSuggestion{}
	}

	views := map[string]int{}
	for _, v := range viewShares {
		views[v.Term] = v.Count
	}

	suggestions := []dto.BoostSuggestion{}

	for _, q := range queryShares {
		queryShare := float64(q.Count) / float64(totalQueries)

		viewShare := 0.0
		if totalViews > 0 {
			viewShare = float64(views[q.Term]) / float64(totalViews)
		}

		if queryShare > viewShare {
			suggestions = append(suggestions, dto.BoostSuggestion{
				City:       q.Term,
				QueryShare: queryShare,
				ViewShare:  viewShare,
			})
		}
	}

	return suggestions
}

func sharedPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return a[:i]
}
