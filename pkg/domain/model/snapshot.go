package model

import "time"

const (
	// DataVersion tags both the persisted snapshot and the JSON export.
	// Payloads carrying another version are discarded.
	DataVersion = "2.0"

	// SnapshotKey is the single storage key the snapshot lives under
	SnapshotKey = "cms-dashboard-data"
)

// Snapshot is the persisted state of the vendor store
type Snapshot struct {
	Vendors     []*Vendor `json:"vendors"`
	LastUpdated time.Time `json:"lastUpdated"`
	Version     string    `json:"version"`
}

// ExportEnvelope is the JSON export document
type ExportEnvelope struct {
	Vendors  []*Vendor      `json:"vendors"`
	Version  string         `json:"version"`
	Exported time.Time      `json:"exported"`
	Metadata ExportMetadata `json:"metadata"`
}

// ExportMetadata summarises the exported collection
type ExportMetadata struct {
	TotalVendors int      `json:"totalVendors"`
	TopChoices   []string `json:"topChoices"`
	AvgScore     int      `json:"avgScore"`
}
