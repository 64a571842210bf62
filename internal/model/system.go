package model

// VersionInfo describes the running build and its database schema.
type VersionInfo struct {
	AppVersion      string          `json:"app_version"`
	DbVersion       int64           `json:"db_version"`
	LatestDbVersion int64           `json:"latest_db_version"`
	MigrationNeeded bool            `json:"migration_needed"`
	Features        map[string]bool `json:"features"`
}
