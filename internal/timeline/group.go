package timeline

import (
	"fmt"
	"math"

	"github.com/mmynk/justsplit/internal/models"
)

// Group is a cluster of expenses drawn as one marker.
// Position is the mean of the member positions.
type Group struct {
	Position float64
	Expenses []models.Expense
}

// GroupNearbyExpenses positions every expense against the event window and
// merges nearby ones. See Group for the clustering rules.
func (t *Timeline) GroupNearbyExpenses(expenses []models.Expense, event *models.Event) ([]Group, error) {
	w, err := WindowFor(event)
	if err != nil {
		return nil, err
	}
	return t.Group(expenses, w)
}

// Group clusters expenses in a single greedy pass over the input order.
// Each expense joins the first group whose centroid is closer than the
// proximity threshold, otherwise it starts a new group. The centroid is
// recomputed from all member positions on every add. No sorting happens, so
// earlier expenses anchor the groups and the result depends on input order.
//
// Every expense ends up in exactly one group.
func (t *Timeline) Group(expenses []models.Expense, w Window) ([]Group, error) {
	type cluster struct {
		centroid  float64
		positions []float64
		expenses  []models.Expense
	}

	clusters := make([]*cluster, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Date.IsZero() {
			return nil, fmt.Errorf("%w: expense %q has no date", ErrInvalidDate, expense.ID)
		}
		pos := t.Position(expense.Date, w)

		var match *cluster
		for _, c := range clusters {
			if math.Abs(c.centroid-pos) < t.threshold {
				match = c
				break
			}
		}
		if match == nil {
			clusters = append(clusters, &cluster{
				centroid:  pos,
				positions: []float64{pos},
				expenses:  []models.Expense{expense},
			})
			continue
		}

		match.positions = append(match.positions, pos)
		match.expenses = append(match.expenses, expense)
		match.centroid = mean(match.positions)
	}

	groups := make([]Group, len(clusters))
	for i, c := range clusters {
		groups[i] = Group{Position: c.centroid, Expenses: c.expenses}
	}
	return groups, nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
