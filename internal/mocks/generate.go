// Package mocks provides gomock implementations of the ports used by the web tier.
//
// Mocks are generated with go.uber.org/mock (mockgen). To regenerate after
// interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockIdentityAPI(ctrl)
//	api.EXPECT().Me(gomock.Any(), "tok").Return(identity, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_api_mock.go github.com/jobconnect/jobconnect-web/internal/ports IdentityAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=marketplace_api_mock.go github.com/jobconnect/jobconnect-web/internal/ports MarketplaceAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/jobconnect/jobconnect-web/internal/ports SessionStore
