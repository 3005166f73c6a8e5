package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", 1)
	userID := uuid.New()

	tokenString, err := manager.Issue(userID, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestManagerVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 1)
	verifier := NewManager("secret-b", 1)

	tokenString, err := issuer.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestManagerVerifyRejectsExpired(t *testing.T) {
	manager := NewManager("test-secret", -1)

	tokenString, err := manager.Issue(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = manager.Verify(tokenString)
	assert.Error(t, err)
}

func TestManagerVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 1)

	_, err := manager.Verify("not.a.token")
	assert.Error(t, err)
}
