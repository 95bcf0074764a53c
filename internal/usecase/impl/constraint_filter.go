package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
)

// Rejection reasons.
const (
	rejectAllergy = "allergy"
	rejectDisease = "disease"
)

// ExclusionSet is the set of food names and keywords a plan must avoid, with the
// severity reported by the exclusion table.
type ExclusionSet map[string]string

// Contains reports whether name is excluded. Matching ignores case and surrounding space.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[normalizeTag(name)]

	return ok
}

// Names returns the normalised excluded names.
func (s ExclusionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	return names
}

// ConstraintFilter removes dishes that violate disease or allergy constraints.
type ConstraintFilter struct {
	exclusionRepo repository.DiseaseExclusionRepository
	logger        *slog.Logger
}

// NewConstraintFilter creates a new constraint filter.
func NewConstraintFilter(exclusionRepo repository.DiseaseExclusionRepository, logger *slog.Logger) *ConstraintFilter {
	return &ConstraintFilter{
		exclusionRepo: exclusionRepo,
		logger:        logger,
	}
}

func (f *ConstraintFilter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// ResolveExclusions resolves disease codes to the excluded food set.
// A lookup failure is returned, never replaced by an empty set.
func (f *ConstraintFilter) ResolveExclusions(ctx context.Context, diseases []string) (ExclusionSet, error) {
	set := make(ExclusionSet)
	codes := normalizeTags(diseases)
	if len(codes) == 0 {
		return set, nil
	}

	items, err := f.exclusionRepo.ExcludedItems(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve disease exclusions: %w: %w", domainerrors.ErrExclusionLookupFailed, err)
	}

	for _, item := range items {
		name := normalizeTag(item.FoodName)
		if name == "" {
			continue
		}
		set[name] = item.Severity
	}

	f.log(ctx).Debug("Resolved disease exclusions",
		slog.Any("diseases", codes),
		slog.Int("excluded_count", len(set)),
	)

	return set, nil
}

// Filter returns the dishes passing both the disease and the allergy check, in input order.
// The input slice and its dishes are left untouched.
func (f *ConstraintFilter) Filter(ctx context.Context, dishes []*entity.Dish, exclusions ExclusionSet, allergies []string) []*entity.Dish {
	allergySet := toSet(normalizeTags(allergies))
	safe := make([]*entity.Dish, 0, len(dishes))

	for _, dish := range dishes {
		if dish == nil {
			continue
		}
		if reason, tag, rejected := f.violation(dish, exclusions, allergySet); rejected {
			f.log(ctx).Debug("Dish rejected",
				slog.String("dish", dish.Title),
				slog.String("reason", reason),
				slog.String("tag", tag),
			)

			continue
		}
		safe = append(safe, dish)
	}

	return safe
}

// IsSafe reports whether a single dish passes both checks.
func (f *ConstraintFilter) IsSafe(dish *entity.Dish, exclusions ExclusionSet, allergies []string) bool {
	_, _, rejected := f.violation(dish, exclusions, toSet(normalizeTags(allergies)))

	return !rejected
}

func (f *ConstraintFilter) violation(dish *entity.Dish, exclusions ExclusionSet, allergies map[string]struct{}) (reason, tag string, rejected bool) {
	for _, t := range dish.AllergyTags {
		if _, ok := allergies[normalizeTag(t)]; ok {
			return rejectAllergy, t, true
		}
	}

	if len(exclusions) == 0 {
		return "", "", false
	}

	for _, ing := range dish.Ingredients {
		if exclusions.Contains(ing.Name) {
			return rejectDisease, ing.Name, true
		}
	}
	for _, kw := range dish.DiseaseKeywords {
		if exclusions.Contains(kw) {
			return rejectDisease, kw, true
		}
	}

	return "", "", false
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeTags lower-cases and trims the tags, dropping blanks and duplicates.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := normalizeTag(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}

	return set
}
