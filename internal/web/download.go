package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// downloadTTL bounds how long an export waits to be fetched.
const downloadTTL = 5 * time.Minute

// download is one exported file waiting behind a one-time URL. The
// indirection exists because browsers refuse file downloads served
// straight from a non-GET response on insecure origins.
type download struct {
	path        string
	filename    string
	contentType string
	expires     time.Time
}

type downloadStore struct {
	mu    sync.Mutex
	items map[string]download
	now   func() time.Time
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]download),
		now:   time.Now,
	}
}

// put registers a file and returns the token for its download URL.
func (d *downloadStore) put(path, filename, contentType string) string {
	token := uuid.NewString()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items[token] = download{
		path:        path,
		filename:    filename,
		contentType: contentType,
		expires:     d.now().Add(downloadTTL),
	}
	return token
}

// take redeems a token. Each token works exactly once; expired or
// unknown tokens fail.
func (d *downloadStore) take(token string) (download, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	item, ok := d.items[token]
	if !ok {
		return download{}, false
	}
	delete(d.items, token)
	if d.now().After(item.expires) {
		return download{}, false
	}
	return item, true
}
