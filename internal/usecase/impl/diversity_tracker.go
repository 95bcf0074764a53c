package impl

import (
	"slices"

	"dietplan/internal/domain/entity"
	"dietplan/internal/usecase"
)

// diversityTracker accumulates the titles used during one weekly run. It is owned by
// a single run and folded only between days, so it needs no locking.
type diversityTracker struct {
	ceiling   int
	varieties []string
	rotation  int

	frequency map[string]int
	seeded    map[string]struct{}

	categories map[entity.DishType][]string
	inCategory map[entity.DishType]map[string]struct{}
}

func newDiversityTracker(level entity.DiversityLevel, varieties []string, prior map[entity.DishType][]string) *diversityTracker {
	t := &diversityTracker{
		ceiling:    level.Ceiling(),
		varieties:  slices.Clone(varieties),
		frequency:  make(map[string]int),
		seeded:     make(map[string]struct{}),
		categories: make(map[entity.DishType][]string, len(entity.DishCategories)),
		inCategory: make(map[entity.DishType]map[string]struct{}, len(entity.DishCategories)),
	}
	for _, category := range entity.DishCategories {
		t.inCategory[category] = make(map[string]struct{})
		for _, title := range prior[category] {
			t.seeded[title] = struct{}{}
		}
	}

	return t
}

// exclusions returns the titles the next day must avoid: every seeded title plus every
// title that reached the diversity ceiling, sorted for stable catalog queries.
func (t *diversityTracker) exclusions() []string {
	titles := make([]string, 0, len(t.seeded)+len(t.frequency))
	for title := range t.seeded {
		titles = append(titles, title)
	}
	for title, count := range t.frequency {
		if _, ok := t.seeded[title]; ok {
			continue
		}
		if count >= t.ceiling {
			titles = append(titles, title)
		}
	}
	slices.Sort(titles)

	return titles
}

// preferredVariety is the staple variety the rotation asks for on the next day.
func (t *diversityTracker) preferredVariety() string {
	if len(t.varieties) == 0 {
		return ""
	}

	return t.varieties[t.rotation%len(t.varieties)]
}

// recordDay folds one generated day into the tracker. Every selection counts, so a
// title served in two slots or to two people uses two of its allowed repeats. The rice
// rotation advances once.
func (t *diversityTracker) recordDay(plans []*entity.DailyDietPlan) {
	for _, plan := range plans {
		for _, dish := range plan.Dishes() {
			t.count(dish.Title, dish.DishType)
		}
		for _, fruit := range plan.Fruits() {
			t.count(fruit.Fruit.Name, entity.DishTypeSnack)
		}
	}
	t.rotation++
}

func (t *diversityTracker) count(title string, category entity.DishType) {
	t.frequency[title]++

	seen, tracked := t.inCategory[category]
	if !tracked {
		return
	}
	if _, ok := seen[title]; !ok {
		seen[title] = struct{}{}
		t.categories[category] = append(t.categories[category], title)
	}
}

// dayContext is the state handed to the next day's generation.
func (t *diversityTracker) dayContext() *usecase.DayContext {
	return &usecase.DayContext{
		ExcludeTitles:    t.exclusions(),
		PreferredVariety: t.preferredVariety(),
		TitleUses:        t.titleCounts(),
		Ceiling:          t.ceiling,
	}
}

// usedCategories returns this week's titles per category, ready to seed the next week.
func (t *diversityTracker) usedCategories() map[entity.DishType][]string {
	out := make(map[entity.DishType][]string, len(t.categories))
	for category, titles := range t.categories {
		out[category] = slices.Clone(titles)
	}

	return out
}

// titleCounts returns how many times each title was selected this week.
func (t *diversityTracker) titleCounts() map[string]int {
	out := make(map[string]int, len(t.frequency))
	for title, count := range t.frequency {
		out[title] = count
	}

	return out
}
