package model

import "time"

// VersionHeader carries the snapshot version on POST /state.
const VersionHeader = "X-State-Version"

// EmptyState is served when no state row exists yet.
var EmptyState = []byte(`{}`)

type State struct {
	Data      string    `db:"json_data"`
	Version   int64     `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
