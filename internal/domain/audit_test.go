package domain

import "testing"

func TestStatusFor(t *testing.T) {
	t.Parallel()

	if got := StatusFor("Acme Corp.", "Acme Corp"); got != StatusAltered {
		t.Errorf("changed value: got %s, want %s", got, StatusAltered)
	}
	if got := StatusFor("Acme Corp", "Acme Corp"); got != StatusOriginal {
		t.Errorf("unchanged value: got %s, want %s", got, StatusOriginal)
	}
	if got := StatusFor("", ""); got != StatusOriginal {
		t.Errorf("empty cell: got %s, want %s", got, StatusOriginal)
	}
}

func TestAuditSummary_AlterationRate(t *testing.T) {
	t.Parallel()

	if rate := (AuditSummary{}).AlterationRate(); rate != 0 {
		t.Errorf("empty table rate = %v, want 0", rate)
	}
	if rate := (AuditSummary{TotalRows: 4, AlteredRows: 1}).AlterationRate(); rate != 25 {
		t.Errorf("rate = %v, want 25", rate)
	}
}
