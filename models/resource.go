package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResourceHandle addresses a user's storage resource. Handles are UUIDv7
// strings allocated by the provisioning worker.
type ResourceHandle string

var ErrInvalidResourceHandle = errors.New("invalid resource handle")

// ParseResourceHandle validates s as a resource handle.
func ParseResourceHandle(s string) (ResourceHandle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidResourceHandle, s, err)
	}
	return ResourceHandle(id.String()), nil
}

func (h ResourceHandle) String() string {
	return string(h)
}

// ResourceState is the server-side creation state of a storage resource.
type ResourceState string

const (
	ResourceStateRequested ResourceState = "requested"
	ResourceStateOK        ResourceState = "ok"
	ResourceStateFailed    ResourceState = "failed"
)

// Resource is the directory's record of a user's storage resource.
type Resource struct {
	Owner     Principal      `json:"owner"`
	Handle    ResourceHandle `json:"handle,omitempty"`
	State     ResourceState  `json:"state"`
	Reason    string         `json:"reason,omitempty"`
	Attempts  int            `json:"attempts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r Resource) TableName() string {
	return "resources"
}
