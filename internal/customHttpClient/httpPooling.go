package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/nkondratev/doctasks/internal/config"
)

var once sync.Once
var sharedTransport *http.Transport

// GetPooledTransport returns the shared connection-pooled transport used for
// all outbound calls (tracker, model hosts). One pool for the process.
func GetPooledTransport() *http.Transport {
	once.Do(func() {
		sharedTransport = &http.Transport{
			MaxIdleConns:        config.MaxIdleConns,
			MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
			IdleConnTimeout:     config.IdleConnTimeout,
		}
	})
	return sharedTransport
}

// GetPooledClient wraps the shared transport in a client with no overall
// timeout; callers bound requests with their own contexts.
func GetPooledClient() *http.Client {
	return &http.Client{Transport: GetPooledTransport()}
}
