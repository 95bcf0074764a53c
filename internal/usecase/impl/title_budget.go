package impl

import (
	"maps"
	"slices"

	"dietplan/internal/usecase"
)

// titleBudget counts the selections of one day on top of the week so far, so that
// later slots and later family members see the titles that just ran out.
// A nil budget or a zero ceiling tracks nothing.
type titleBudget struct {
	ceiling int
	uses    map[string]int
}

func newTitleBudget(day usecase.DayContext) *titleBudget {
	if day.Ceiling <= 0 {
		return nil
	}

	uses := make(map[string]int, len(day.TitleUses))
	maps.Copy(uses, day.TitleUses)

	return &titleBudget{ceiling: day.Ceiling, uses: uses}
}

func (b *titleBudget) enabled() bool {
	return b != nil
}

func (b *titleBudget) record(titles ...string) {
	if b == nil {
		return
	}
	for _, title := range titles {
		b.uses[title]++
	}
}

// spent returns the titles that reached the ceiling, sorted.
func (b *titleBudget) spent() []string {
	if b == nil {
		return nil
	}

	var titles []string
	for title, n := range b.uses {
		if n >= b.ceiling {
			titles = append(titles, title)
		}
	}
	slices.Sort(titles)

	return titles
}

// dayContext derives the context for the next plan of the day.
func (b *titleBudget) dayContext(day usecase.DayContext) *usecase.DayContext {
	if b == nil {
		return &day
	}

	day.ExcludeTitles = mergeTitles(day.ExcludeTitles, b.spent())
	day.TitleUses = maps.Clone(b.uses)

	return &day
}
