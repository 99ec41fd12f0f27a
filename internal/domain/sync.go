package domain

// CatalogSyncResult reports what a catalog file sync changed in the recipe store
type CatalogSyncResult struct {
	Inserted []string `json:"inserted"`
	Updated  []string `json:"updated"`
	Skipped  []string `json:"skipped"`
	// Orphans are stored recipes absent from the file; they are reported, never deleted
	Orphans []string `json:"orphans"`
}

// Changed reports whether the sync wrote anything
func (r *CatalogSyncResult) Changed() bool {
	return len(r.Inserted) > 0 || len(r.Updated) > 0
}
