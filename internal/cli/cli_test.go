package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{
		"version", "health", "users", "devices", "wearables", "bloodwork",
		"measurements", "supplements", "journal", "goals", "metrics",
		"insights", "documents",
	} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"config", "debug", "format", "query"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestDocumentsCmd_HasWatchSubcommand(t *testing.T) {
	cmd := documentsCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if strings.HasPrefix(sub.Use, "watch") {
			found = true
		}
	}
	if !found {
		t.Error("expected 'watch' subcommand under documents")
	}
}

func TestGoalsAddCmd_RequiresMetric(t *testing.T) {
	cmd := goalsCmd()
	var add bool
	for _, sub := range cmd.Commands() {
		if sub.Use == "add" {
			add = true
			if sub.Flags().Lookup("metric") == nil {
				t.Error("expected --metric flag on goals add")
			}
		}
	}
	if !add {
		t.Fatal("expected 'add' subcommand under goals")
	}
}

// --- printJSON ---

func TestPrintJSON_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, map[string]string{"k": "v"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["k"] != "v" {
		t.Errorf("expected k=v, got %v", payload["k"])
	}
}

func TestPrintJSON_QueryExtractsWireName(t *testing.T) {
	in := domain.Insight{ID: "ins_1", Title: "Sleep debt"}

	var buf bytes.Buffer
	if err := printJSON(&buf, in, "$.title"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"Sleep debt"` {
		t.Errorf("expected query result %q, got %q", `"Sleep debt"`, got)
	}
}

func TestPrintJSON_BadQuery(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, map[string]string{}, "$.["); err == nil {
		t.Fatal("expected error for malformed query")
	}
}

// --- pointer formatting ---

func TestFmtPtrInt(t *testing.T) {
	if got := fmtPtrInt(nil); got != "-" {
		t.Errorf("expected '-' for nil, got %q", got)
	}
	n := 7
	if got := fmtPtrInt(&n); got != "7" {
		t.Errorf("expected '7', got %q", got)
	}
}

func TestLimitPtr(t *testing.T) {
	if limitPtr(0) != nil {
		t.Error("expected nil for 0")
	}
	if limitPtr(-1) != nil {
		t.Error("expected nil for negative")
	}
	if p := limitPtr(25); p == nil || *p != 25 {
		t.Errorf("expected 25, got %v", p)
	}
}

// --- entryValue ---

func TestEntryValue(t *testing.T) {
	f := 7.5
	b := true
	s := 3
	txt := "felt great"

	cases := []struct {
		name  string
		entry domain.CustomMetricEntry
		want  string
	}{
		{"numeric", domain.CustomMetricEntry{ValueNumeric: &f}, "7.5"},
		{"boolean", domain.CustomMetricEntry{ValueBoolean: &b}, "true"},
		{"scale", domain.CustomMetricEntry{ValueScale: &s}, "3"},
		{"text", domain.CustomMetricEntry{ValueText: &txt}, "felt great"},
		{"empty", domain.CustomMetricEntry{}, "-"},
	}
	for _, c := range cases {
		if got := entryValue(c.entry); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}
