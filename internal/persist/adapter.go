package persist

import "context"

// Adapter abstracts the persistence backend behind the stores. Two
// strategies exist: a local file store (no external change source) and a
// Redis-backed remote store with realtime change notifications.
//
// Values are opaque JSON blobs; the adapter never inspects them. Conflict
// policy is last-writer-wins at blob granularity: inbound snapshots always
// overwrite local state, and concurrent editors can clobber each other.
// That is an accepted limitation of a single-operator tool, not a bug.
type Adapter interface {
	// Load reads the current value for key. ok is false when the key has
	// never been written; corrupt or unreadable values return an error so
	// callers can fall back to the bundled defaults.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Write stores the full value for key. Local state is expected to be
	// updated optimistically before Write is called; a failed write is
	// surfaced to the operator but never rolled back.
	Write(ctx context.Context, key string, value []byte) error

	// Subscribe registers fn for inbound change notifications on key and
	// returns a stop function. Backends without an external change source
	// return a no-op stop immediately. The subscription ends when ctx is
	// cancelled or stop is called.
	Subscribe(ctx context.Context, key string, fn func(value []byte)) (stop func(), err error)

	// Close releases backend resources.
	Close() error
}

const (
	// KeyEntries names the persisted portfolio collection blob.
	KeyEntries = "entries"
	// KeyProfile names the persisted contact/SEO record blob.
	KeyProfile = "profile"
)
