package models

// Summary holds overall record counts by status class.
type Summary struct {
	Total      int
	Errors500  int
	Success200 int
	NullStatus int
}

// Other returns the number of records with a status other than 200 or 500.
func (s Summary) Other() int {
	return s.Total - s.Errors500 - s.Success200 - s.NullStatus
}

// ProviderStats represents record counts for one inferred provider
type ProviderStats struct {
	Provider  string
	Total     int
	Errors500 int
}
