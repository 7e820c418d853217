package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// Bump when lexPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists token streams keyed by source content hash, so
// unchanged files skip the lexer on repeated runs.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// lexPayload is the on-disk record for one lexed file.
type lexPayload struct {
	Schema  uint16
	Path    string
	Hash    [32]byte
	MaxDiag int
	Tokens  []token.Token
	Diags   []diag.Diagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard
// per-user location ($XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	// "lex" subdirectory keeps the cache easy to inspect and clear.
	return filepath.Join(c.dir, "lex", hex.EncodeToString(key[:])+".mp")
}

// Get looks up a cached token stream for file's content. A nil receiver
// or any read/decode failure is a miss; the lexer is the fallback.
func (c *DiskCache) Get(file *source.File) (*TokenizeResult, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload lexPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false
	}

	bag := diag.NewBag(payload.MaxDiag)
	for _, d := range payload.Diags {
		bag.Add(d)
	}
	return &TokenizeResult{
		File:   file,
		Tokens: payload.Tokens,
		Bag:    bag,
	}, true
}

// Put serializes res under its file's content hash. A nil receiver is
// a no-op; write failures are swallowed since the cache is advisory.
func (c *DiskCache) Put(file *source.File, res *TokenizeResult) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &lexPayload{
		Schema:  diskCacheSchemaVersion,
		Path:    file.Path,
		Hash:    file.Hash,
		MaxDiag: res.Bag.Cap(),
		Tokens:  res.Tokens,
		Diags:   res.Bag.Items(),
	}
	_ = c.write(c.pathFor(file.Hash), payload)
}

func (c *DiskCache) write(p string, payload *lexPayload) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement.
	return os.Rename(f.Name(), p)
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
