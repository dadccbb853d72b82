package ui

import (
	"strings"
	"testing"
)

func TestColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "TITLE"},
		Rows: [][]string{
			{"abc123", "Call the plumber"},
			{"def456", "Taxes"},
		},
	}

	widths := table.ColumnWidths()
	if widths[0] != 6 {
		t.Errorf("Expected ID column width 6, got %d", widths[0])
	}
	if widths[1] != len("Call the plumber") {
		t.Errorf("Expected TITLE column to fit widest cell, got %d", widths[1])
	}
}

func TestColumnWidthsRespectsMax(t *testing.T) {
	table := &Table{
		Headers:  []string{"TITLE"},
		Rows:     [][]string{{strings.Repeat("x", 100)}},
		MaxWidth: 20,
	}

	if w := table.ColumnWidths()[0]; w != 20 {
		t.Errorf("Expected capped width 20, got %d", w)
	}
}

func TestRenderTruncatesLongCells(t *testing.T) {
	table := &Table{
		Headers:  []string{"TITLE"},
		Rows:     [][]string{{strings.Repeat("x", 100)}},
		MaxWidth: 10,
	}

	out := table.Render()
	if !strings.Contains(out, "…") {
		t.Error("Expected long cell to be truncated with ellipsis")
	}
	if strings.Contains(out, strings.Repeat("x", 11)) {
		t.Error("Expected no cell content beyond the max width")
	}
}

func TestRenderEmptyTable(t *testing.T) {
	table := &Table{}
	if out := table.Render(); out != "" {
		t.Errorf("Expected empty output for headerless table, got %q", out)
	}
}

func TestTruncateID(t *testing.T) {
	if got := TruncateID("0123456789"); got != "012345" {
		t.Errorf("Expected 6-char prefix, got %q", got)
	}
	if got := TruncateID("abc"); got != "abc" {
		t.Errorf("Expected short ID unchanged, got %q", got)
	}
}
