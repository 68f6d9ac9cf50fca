package models

import "time"

// Requests and responses for the scanner HTTP endpoints.

type ScanRequest struct {
	Type string `query:"type" json:"type" default:"swing" validate:"oneof=intraday swing longterm"`
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
