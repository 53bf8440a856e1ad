package persistence

import (
	"context"
	"encoding/json"

	"campusplanner/internal/domain"
	"campusplanner/internal/logging"
)

// Default export filenames.
const (
	DefaultJSONFilename = "campusplanner.json"
	DefaultCSVFilename  = "campusplanner.csv"
)

// Slot is the durable key-value layer the gateway persists through. The
// SQLite repository satisfies it; tests substitute an in-memory fake.
type Slot interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key string, value string) error
}

// Blob is an export artifact: a suggested filename and its content. The
// caller decides how to deliver it; the gateway never touches the
// filesystem for exports.
type Blob struct {
	Name string
	Data []byte
}

// Gateway serializes the task list to and from the durable slot and the
// JSON/CSV exchange formats. Storage failures are logged and swallowed:
// the in-memory state stays authoritative even when the durable copy is
// stale, and a corrupt or missing slot reads as an empty list.
type Gateway struct {
	slot         Slot
	key          string
	jsonFilename string
	csvFilename  string
}

// NewGateway creates a gateway persisting under the given slot key, using
// the default export filenames.
func NewGateway(slot Slot, key string) *Gateway {
	return NewGatewayWithFilenames(slot, key, DefaultJSONFilename, DefaultCSVFilename)
}

// NewGatewayWithFilenames creates a gateway with configured export filenames.
func NewGatewayWithFilenames(slot Slot, key, jsonFilename, csvFilename string) *Gateway {
	return &Gateway{
		slot:         slot,
		key:          key,
		jsonFilename: jsonFilename,
		csvFilename:  csvFilename,
	}
}

// Load reads the task list from the durable slot. A missing key, a read
// failure, or corrupt JSON all yield an empty list; the failure is logged,
// never surfaced to the caller.
func (g *Gateway) Load(ctx context.Context) []*domain.Task {
	value, found, err := g.slot.Get(ctx, g.key)
	if err != nil {
		logging.Warnf("loading tasks from storage: %v", err)
		return []*domain.Task{}
	}
	if !found {
		logging.Debugf("storage slot %q empty, starting with no tasks\n", g.key)
		return []*domain.Task{}
	}

	var tasks []*domain.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		logging.Warnf("parsing stored tasks: %v", err)
		return []*domain.Task{}
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks
}

// Save serializes the full list and writes it to the durable slot. A write
// failure (e.g. quota exceeded) is logged and swallowed; the caller's
// in-memory state remains authoritative.
func (g *Gateway) Save(ctx context.Context, tasks []*domain.Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		logging.Warnf("serializing tasks for storage: %v", err)
		return
	}

	if err := g.slot.Put(ctx, g.key, string(data)); err != nil {
		logging.Warnf("saving tasks to storage: %v", err)
	}
}
