// Package mocks provides mock implementations for testing against the
// backend ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. The mocks are generated using go:generate
// directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockBackend := mocks.NewMockIdentityBackend(ctrl)
//	mockBackend.EXPECT().VerifyCredentials(gomock.Any(), gomock.Any()).Return(result, nil)
package mocks

// Generate mocks for the backend port interfaces from internal/ports.
// This creates MockIdentityBackend, MockDirectoryBackend, and
// MockSessionCache.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/aeroedge/hr-ui-api/internal/ports IdentityBackend,DirectoryBackend,SessionCache
