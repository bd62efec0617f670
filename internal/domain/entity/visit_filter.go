package entity

// VisitFilter is a domain-level filter for querying visit listings.
// Used by the repository layer to avoid coupling with delivery DTOs.
// Filters combine conjunctively; date bounds are inclusive and compare on
// the date portion only.
type VisitFilter struct {
	PatientQuery string // Substring match on last name, first name or national id
	DateFrom     string // Format: YYYY-MM-DD
	DateTo       string // Format: YYYY-MM-DD
}
