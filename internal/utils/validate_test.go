package utils_test

import (
	"testing"

	"docshare-backend/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidateLength(t *testing.T) {
	v, err := utils.ValidateLength("  alice  ", "username", 3, 50)
	assert.NoError(t, err)
	assert.Equal(t, "alice", v)

	_, err = utils.ValidateLength("ab", "username", 3, 50)
	assert.Error(t, err)

	var vErr *utils.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "username", vErr.Field)
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, utils.ValidateUsername("alice_01", "username"))
	assert.Error(t, utils.ValidateUsername("alice 01", "username"))
	assert.Error(t, utils.ValidateUsername("alice@home", "username"))
	assert.Error(t, utils.ValidateUsername("", "username"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, utils.ValidateEmail("a@x.com", "email"))
	assert.Error(t, utils.ValidateEmail("not-an-email", "email"))
	assert.Error(t, utils.ValidateEmail("a@x", "email"))
	assert.Error(t, utils.ValidateEmail("a b@x.com", "email"))
}

func TestValidateLong(t *testing.T) {
	n, err := utils.ValidateLong(" 1000000 ", "storage_quota")
	assert.NoError(t, err)
	assert.Equal(t, int64(1000000), n)

	n, err = utils.ValidateLong("-5", "storage_quota")
	assert.NoError(t, err)
	assert.Equal(t, int64(-5), n)

	_, err = utils.ValidateLong("abc", "storage_quota")
	var vErr *utils.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "storage_quota", vErr.Field)
}
