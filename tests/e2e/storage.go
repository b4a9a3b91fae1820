//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

var errStorageUnavailable = errors.New("storage unavailable")

// MemoryReceiptStorage stands in for the receipt bucket
type MemoryReceiptStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func (m *MemoryReceiptStorage) UploadReceipt(_ context.Context, filename string, body io.Reader, _ int64, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return "", errStorageUnavailable
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	key := fmt.Sprintf("receipts/%d_%s", time.Now().UnixMilli(), filename)
	m.objects[key] = data
	return key, nil
}

// FailUploads makes every following upload fail until Reset
func (m *MemoryReceiptStorage) FailUploads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = true
}

func (m *MemoryReceiptStorage) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

func (m *MemoryReceiptStorage) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func (m *MemoryReceiptStorage) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = nil
	m.fail = false
}
