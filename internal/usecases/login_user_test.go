package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoginUserImpl_Execute(t *testing.T) {
	user := domain.User{ID: 1, Username: "alice", HashedPassword: "hashed", IsActive: true}
	token := domain.AccessToken{Token: "jwt", ExpiresAt: time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)}

	tests := map[string]struct {
		username        string
		password        string
		setExpectations func(repo *domain.MockUserRepository, hasher *domain.MockPasswordHasher, issuer *domain.MockTokenIssuer)
		expectedToken   domain.AccessToken
		expectedErr     error
	}{
		"success": {
			username: "alice",
			password: "s3cretpass",
			setExpectations: func(repo *domain.MockUserRepository, hasher *domain.MockPasswordHasher, issuer *domain.MockTokenIssuer) {
				repo.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(user, true, nil)
				hasher.EXPECT().Compare("hashed", "s3cretpass").Return(true)
				issuer.EXPECT().Issue(user).Return(token, nil)
			},
			expectedToken: token,
		},
		"unknown-user": {
			username: "bob",
			password: "s3cretpass",
			setExpectations: func(repo *domain.MockUserRepository, hasher *domain.MockPasswordHasher, issuer *domain.MockTokenIssuer) {
				repo.EXPECT().GetUserByUsername(mock.Anything, "bob").Return(domain.User{}, false, nil)
			},
			expectedErr: domain.NewUnauthorizedErr(incorrectCredentialsMessage),
		},
		"wrong-password": {
			username: "alice",
			password: "nope",
			setExpectations: func(repo *domain.MockUserRepository, hasher *domain.MockPasswordHasher, issuer *domain.MockTokenIssuer) {
				repo.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(user, true, nil)
				hasher.EXPECT().Compare("hashed", "nope").Return(false)
			},
			expectedErr: domain.NewUnauthorizedErr(incorrectCredentialsMessage),
		},
		"inactive-user": {
			username: "alice",
			password: "s3cretpass",
			setExpectations: func(repo *domain.MockUserRepository, hasher *domain.MockPasswordHasher, issuer *domain.MockTokenIssuer) {
				inactive := user
				inactive.IsActive = false
				repo.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(inactive, true, nil)
				hasher.EXPECT().Compare("hashed", "s3cretpass").Return(true)
			},
			expectedErr: domain.NewUnauthorizedErr(inactiveUserMessage),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockUserRepository(t)
			hasher := domain.NewMockPasswordHasher(t)
			issuer := domain.NewMockTokenIssuer(t)
			tt.setExpectations(repo, hasher, issuer)

			got, err := NewLoginUserImpl(repo, hasher, issuer).Execute(context.Background(), tt.username, tt.password)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedToken, got)
		})
	}
}

func TestInitLoginUser_Initialize(t *testing.T) {
	i := InitLoginUser{
		UserRepo: domain.NewMockUserRepository(t),
		Hasher:   domain.NewMockPasswordHasher(t),
		Issuer:   domain.NewMockTokenIssuer(t),
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[LoginUser]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
