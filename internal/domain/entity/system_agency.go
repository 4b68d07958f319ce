package entity

// SystemAgency is a single row of the system_agency table.
// Every Article points at exactly one SystemAgency through SystemAgencyID.
type SystemAgency struct {
	ID   int64
	Name string
}
