package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
)

// MockMediaService is an in-memory implementation of MediaService for testing
type MockMediaService struct {
	uploadedFiles map[string][]byte // map of key to file content
	failNext      error
	mu            sync.RWMutex
}

// NewMockMediaService creates a new mock media service
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global media service instance
func (m *MockMediaService) SetAsMockForTesting() {
	SetMediaService(m)
}

// FailNextUpload makes the next UploadFile call return the given error,
// simulating a provider failure
func (m *MockMediaService) FailNextUpload(err error) {
	m.mu.Lock()
	m.failNext = err
	m.mu.Unlock()
}

// UploadFile simulates forwarding a file to the media host
func (m *MockMediaService) UploadFile(fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	m.mu.Lock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		m.mu.Unlock()
		return nil, err
	}
	m.mu.Unlock()

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("%s/mock_%s", strings.Trim(folder, "/"), fileHeader.Filename)

	m.mu.Lock()
	m.uploadedFiles[key] = content
	m.mu.Unlock()

	return &UploadResult{
		URL:    fmt.Sprintf("https://media.test/%s", key),
		Key:    key,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
	}, nil
}

// DeleteFile simulates deleting a hosted file
func (m *MockMediaService) DeleteFile(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedFiles, key)
	m.mu.Unlock()

	return nil
}

// FileExists checks if a file exists in mock storage
func (m *MockMediaService) FileExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[key]
	return exists
}

// UploadedCount returns the number of files held by the mock
func (m *MockMediaService) UploadedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.uploadedFiles)
}

// Clear removes all files from mock storage
func (m *MockMediaService) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.mu.Unlock()
}
