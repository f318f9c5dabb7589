package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
    hash, err := HashPassword("s3cret-password")
    require.NoError(t, err)
    assert.NotEqual(t, "s3cret-password", hash)

    assert.True(t, CheckPasswordHash("s3cret-password", hash))
    assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestInitializeEncryptionKeyLength(t *testing.T) {
    assert.Error(t, InitializeEncryption("too-short"))
    assert.NoError(t, InitializeEncryption("TestEncryptionKey123456789012345"))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
    require.NoError(t, InitializeEncryption("TestEncryptionKey123456789012345"))

    plaintext := "HDFC 50100212345678 IFSC HDFC0001234"
    encrypted, err := EncryptSensitiveData(plaintext)
    require.NoError(t, err)
    assert.NotEqual(t, plaintext, encrypted)

    decrypted, err := DecryptSensitiveData(encrypted)
    require.NoError(t, err)
    assert.Equal(t, plaintext, decrypted)
}

func TestEncryptEmptyString(t *testing.T) {
    require.NoError(t, InitializeEncryption("TestEncryptionKey123456789012345"))

    encrypted, err := EncryptSensitiveData("")
    require.NoError(t, err)
    assert.Empty(t, encrypted)
}

func TestGenerateAndValidateToken(t *testing.T) {
    require.NoError(t, InitializeJWT("test-jwt-secret-0123456789abcdefghij"))

    token, err := GenerateToken(42, "user@example.com", true)
    require.NoError(t, err)

    claims, err := ValidateToken(token)
    require.NoError(t, err)
    assert.Equal(t, uint(42), claims.UserID)
    assert.Equal(t, "user@example.com", claims.Email)
    assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
    require.NoError(t, InitializeJWT("test-jwt-secret-0123456789abcdefghij"))

    _, err := ValidateToken("not-a-token")
    assert.Error(t, err)
}
