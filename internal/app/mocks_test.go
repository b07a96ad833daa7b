package app

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockShell is a mock implementation of Shell for testing.
type MockShell struct {
	mock.Mock
}

func (m *MockShell) Execute(req Request) (Status, error) {
	args := m.Called(req)
	return args.Get(0).(Status), args.Error(1)
}

// MockEnvStore is a mock implementation of EnvStore for testing.
type MockEnvStore struct {
	mock.Mock
}

func (m *MockEnvStore) Environ() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockEnvStore) Unsetenv(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockLogger is a mock implementation of Logger for testing.
// It records formatted lines and accepts any call.
type MockLogger struct {
	logs []string
}

func (m *MockLogger) Info(format string, args ...any) {
	m.logs = append(m.logs, "INFO: "+fmt.Sprintf(format, args...))
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.logs = append(m.logs, "DEBUG: "+fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.logs = append(m.logs, "WARN: "+fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...any) {
	m.logs = append(m.logs, "ERROR: "+fmt.Sprintf(format, args...))
}

func (m *MockLogger) GetLogs() []string {
	return m.logs
}

func strPtr(s string) *string { return &s }
