package monitor

import "errors"

var (
	ErrTenantRequired = errors.New("tenant id is required")
)
