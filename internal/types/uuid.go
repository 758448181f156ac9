package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier.
// ulid.Make uses a process-wide monotonic entropy source, so two calls in the
// same millisecond still yield distinct, increasing values.
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex emp_01HZX3K8Q2V6Y7T9ABCDEF1234
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_EMPLOYEE            = "emp"
	UUID_PREFIX_JOB                 = "job"
	UUID_PREFIX_CANDIDATE           = "cand"
	UUID_PREFIX_APPLICATION         = "app"
	UUID_PREFIX_LEAVE_REQUEST       = "leave"
	UUID_PREFIX_ASSET               = "asset"
	UUID_PREFIX_ONBOARDING_TASK     = "onb"
	UUID_PREFIX_TRAINING_PROGRAM    = "trn"
	UUID_PREFIX_TRAINING_ENROLLMENT = "enr"
	UUID_PREFIX_PERFORMANCE_REVIEW  = "rev"
	UUID_PREFIX_PROFILE             = "user"
	UUID_PREFIX_REQUEST             = "req"
)
