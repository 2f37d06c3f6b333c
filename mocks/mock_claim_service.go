package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medclaims/internal/domain"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) ProcessClaim(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimResult), args.Error(1)
}
