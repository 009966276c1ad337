package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/justsplit/internal/timeline"
)

const tripYAML = `
event:
  name: Lisbon
  start: 2023-06-01
  end: 2023-06-11
  participants: [Alice, Bob]
expenses:
  - description: Flights
    amount: 200
    currency: eur
    date: 2023-05-20
    paid_by: Alice
  - id: dinner
    description: Dinner
    amount: "45.50"
    currency: EUR
    date: 2023-06-05
    paid_by: Bob
    settled: true
  - description: Tram
    amount: 4.5
    currency: EUR
    date: 2023-06-05T06:00
    paid_by: Bob
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write event file: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	// Flag variables outlive a single Execute.
	nowFlag, threshold, debug = "", timeline.DefaultProximityThreshold, false
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadEventFile(t *testing.T) {
	event, expenses, err := loadEventFile(writeFile(t, tripYAML), timeline.New())
	if err != nil {
		t.Fatalf("loadEventFile failed: %v", err)
	}

	if event.Name != "Lisbon" || event.EndDate == nil {
		t.Errorf("unexpected event %+v", event)
	}
	if len(event.Participants) != 2 {
		t.Errorf("expected 2 participants, got %d", len(event.Participants))
	}
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}
	if expenses[0].ID != "expense-1" || expenses[1].ID != "dinner" {
		t.Errorf("unexpected ids %q, %q", expenses[0].ID, expenses[1].ID)
	}
	if expenses[0].Currency != "EUR" {
		t.Errorf("expected upper-cased currency, got %s", expenses[0].Currency)
	}
	if expenses[1].Amount.String() != "45.5" {
		t.Errorf("expected amount 45.5, got %s", expenses[1].Amount)
	}
	if !expenses[1].Settled {
		t.Error("expected dinner to be settled")
	}
}

func TestLoadEventFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "event: [oops"},
		{"missing start", "event:\n  name: Trip\n"},
		{"end before start", "event:\n  start: 2023-06-10\n  end: 2023-06-01\n"},
		{"bad expense date", "event:\n  start: 2023-06-01\nexpenses:\n  - amount: 1\n    date: soon\n"},
		{"bad amount", "event:\n  start: 2023-06-01\nexpenses:\n  - amount: lots\n    date: 2023-06-02\n"},
		{"negative amount", "event:\n  start: 2023-06-01\nexpenses:\n  - amount: -3\n    date: 2023-06-02\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := loadEventFile(writeFile(t, tt.content), timeline.New()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTimelineCommand(t *testing.T) {
	out, err := execute(t, "timeline", writeFile(t, tripYAML), "--now", "2023-06-20")
	if err != nil {
		t.Fatalf("timeline failed: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Lisbon (2023-06-01 to 2023-06-11)",
		"-8.0%",
		"Flights 200 EUR",
		"Dinner 45.5 EUR, Tram 4.5 EUR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", writeFile(t, tripYAML), "--now", "2023-06-06")
	if err != nil {
		t.Fatalf("summary failed: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Dates:     Jun 1, 2023 - Jun 11, 2023",
		"Progress:  50%",
		"Expenses:  3 (33% settled)",
		"Total EUR: 250.00 (unsettled 204.50)",
		"Bob owes Alice 97.75 EUR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCommand_InvalidFlags(t *testing.T) {
	path := writeFile(t, tripYAML)

	if _, err := execute(t, "timeline", path, "--now", "whenever"); err == nil {
		t.Error("expected error for invalid --now")
	}
	if _, err := execute(t, "timeline", path, "--threshold", "0"); err == nil {
		t.Error("expected error for zero threshold")
	}
	if _, err := execute(t, "summary"); err == nil {
		t.Error("expected error for missing file argument")
	}
}
