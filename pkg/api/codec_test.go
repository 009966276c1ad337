package api

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCodec_EmptyBody(t *testing.T) {
	var req ListEventsRequest
	if err := (Codec{}).Unmarshal(nil, &req); err != nil {
		t.Errorf("expected empty body to decode, got %v", err)
	}
}

func TestCodec_DecimalAmounts(t *testing.T) {
	data, err := (Codec{}).Marshal(&AddExpenseRequest{
		EventID:  "e1",
		Amount:   decimal.RequireFromString("12.30"),
		Currency: "EUR",
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"amount":"12.3"`) {
		t.Errorf("expected amount as JSON string, got %s", data)
	}

	var req AddExpenseRequest
	if err := (Codec{}).Unmarshal([]byte(`{"eventId":"e1","amount":7.25,"currency":"usd"}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !req.Amount.Equal(decimal.RequireFromString("7.25")) {
		t.Errorf("expected amount 7.25, got %s", req.Amount)
	}
}

func TestCodec_Invalid(t *testing.T) {
	var req GetEventRequest
	err := (Codec{}).Unmarshal([]byte(`{"eventId":`), &req)
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if !strings.Contains(err.Error(), "GetEventRequest") {
		t.Errorf("expected error to name the message type, got %v", err)
	}
}
