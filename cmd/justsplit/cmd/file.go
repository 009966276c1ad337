package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/timeline"
)

// eventFile is the YAML layout read by every command.
type eventFile struct {
	Event    eventEntry     `yaml:"event"`
	Expenses []expenseEntry `yaml:"expenses"`
}

type eventEntry struct {
	Name         string   `yaml:"name"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"` // empty = ongoing
	Participants []string `yaml:"participants"`
}

type expenseEntry struct {
	ID           string   `yaml:"id"`
	Description  string   `yaml:"description"`
	Amount       string   `yaml:"amount"`
	Currency     string   `yaml:"currency"`
	Date         string   `yaml:"date"`
	PaidBy       string   `yaml:"paid_by"`
	Participants []string `yaml:"participants"`
	Settled      bool     `yaml:"settled"`
}

// loadEventFile reads and validates an event file. Expenses without an ID
// are numbered in file order.
func loadEventFile(path string, tl *timeline.Timeline) (*models.Event, []models.Expense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read event file: %w", err)
	}

	var file eventFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	w, err := tl.ParseWindow(file.Event.Start, file.Event.End)
	if err != nil {
		return nil, nil, fmt.Errorf("event: %w", err)
	}
	event := &models.Event{
		ID:           "file",
		Name:         file.Event.Name,
		StartDate:    w.Start,
		EndDate:      w.End,
		Participants: file.Event.Participants,
	}

	expenses := make([]models.Expense, len(file.Expenses))
	for i, e := range file.Expenses {
		date, err := tl.ParseDate(e.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("expense %d: %w", i+1, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
		if err != nil {
			return nil, nil, fmt.Errorf("expense %d: invalid amount %q: %w", i+1, e.Amount, err)
		}
		if amount.IsNegative() {
			return nil, nil, fmt.Errorf("expense %d: amount cannot be negative", i+1)
		}

		id := e.ID
		if id == "" {
			id = fmt.Sprintf("expense-%d", i+1)
		}
		expenses[i] = models.Expense{
			ID:           id,
			EventID:      event.ID,
			Description:  e.Description,
			Amount:       amount,
			Currency:     strings.ToUpper(e.Currency),
			Date:         date,
			PaidBy:       e.PaidBy,
			Participants: e.Participants,
			Settled:      e.Settled,
		}
	}

	return event, expenses, nil
}
