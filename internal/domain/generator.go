package domain

// Generator is a physical rentable unit. InService is toggled by an
// admin and only gates future assignment; Available is false iff the
// unit is currently held by an approved or invoiced rental.
//
// JSON keys match the legacy data files so an existing generators.json
// is readable without migration.
type Generator struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	InService bool   `json:"is_active"`
	Available bool   `json:"is_available"`
}

// AvailabilityReport is the public availability summary for the
// booking calendar.
type AvailabilityReport struct {
	Total     int         `json:"total"`
	Available int         `json:"available"`
	Details   []Generator `json:"details"`
}
