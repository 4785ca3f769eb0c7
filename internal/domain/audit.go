package domain

// AuditStatus marks whether standardization changed a row's value.
type AuditStatus string

const (
	StatusOriginal AuditStatus = "ORIGINAL"
	StatusAltered  AuditStatus = "ALTERADO"
)

// StatusFor compares the original and canonical values as strings.
func StatusFor(original, canonical string) AuditStatus {
	if original != canonical {
		return StatusAltered
	}
	return StatusOriginal
}

// AuditSummary aggregates per-row audit statuses for a whole run.
type AuditSummary struct {
	TotalRows   int
	AlteredRows int
}

// AlterationRate returns the percentage of altered rows, 0 for empty tables.
func (s AuditSummary) AlterationRate() float64 {
	if s.TotalRows == 0 {
		return 0
	}
	return float64(s.AlteredRows) / float64(s.TotalRows) * 100
}
