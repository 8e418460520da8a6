// meta/meta.go
package meta

// MaxAnytimeDepth bounds the iterative deepening of an anytime search that is
// never killed.
const MaxAnytimeDepth = 100

// MaxTurns stops games that would otherwise never end.
const MaxTurns = 500

// DefaultDepth is the search depth of strategies given without one.
const DefaultDepth = 4

// SegmentPrefix names the shared memory segments of anytime searches.
const SegmentPrefix = "blobwar-"

// Environment variables overriding the command line defaults.
const (
	EnvBoard    = "BLOBWAR_BOARD"
	EnvLogLevel = "BLOBWAR_LOG_LEVEL"
	EnvRedisURL = "BLOBWAR_REDIS_URL"
	EnvShmDir   = "BLOBWAR_SHM_DIR"
)
