package foundry

import "time"

const (
	// DefaultAPIVersion is the project API version the toolkit targets.
	DefaultAPIVersion = "2025-05-15-preview"

	// ARMEndpoint is the management plane used for connection provisioning.
	ARMEndpoint = "https://management.azure.com"

	// ARMAPIVersion is the management API version for project connections.
	ARMAPIVersion = "2025-10-01-preview"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	// writeRatePerSec throttles control-plane writes; provisioning is
	// one-shot so a low ceiling is harmless and keeps retried scripts from
	// hammering the service.
	writeRatePerSec = 2
	writeBurst      = 4
)
