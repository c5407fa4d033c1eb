package debug

import (
	"os"
	"strconv"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type debug struct {
	Tokens bool
	Parse  bool
}

var (
	d *debug

	mu     sync.Mutex
	logger log.Logger
)

func init() {
	d = &debug{}
	d.Tokens = boolEnv("FDF_DEBUG_TOKENS")
	d.Parse = boolEnv("FDF_DEBUG_PARSE")
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether FDF_DEBUG_TOKENS is set.
func Tokens() bool {
	return d.Tokens
}

// Parse reports whether FDF_DEBUG_PARSE is set.
func Parse() bool {
	return d.Parse
}

// SetLogger replaces the logger debug output is written to.
func SetLogger(l log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func Logger() log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes msg and the key value pairs at debug level.
func Log(msg string, keyvals ...any) {
	kvs := make([]any, 0, len(keyvals)+2)
	kvs = append(kvs, "msg", msg)
	kvs = append(kvs, keyvals...)
	_ = level.Debug(Logger()).Log(kvs...)
}
