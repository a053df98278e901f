package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "person", SnakeCase("Person"))
	assert.Equal(t, "created_at", SnakeCase("CreatedAt"))
	assert.Equal(t, "id", SnakeCase("ID"))
	assert.Equal(t, "user_id", SnakeCase("UserID"))
	assert.Equal(t, "is_older_than", SnakeCase("IsOlderThan"))
	assert.Equal(t, "Is_Adult", AddUnderscore("IsAdult"))
	assert.Equal(t, "", SnakeCase(""))
}

func TestSnakeCaseAcronyms(t *testing.T) {
	assert.Equal(t, "http_code", SnakeCase("HTTPCode"))
	assert.Equal(t, "api_key", SnakeCase("APIKey"))
	assert.Equal(t, "user_id", SnakeCase("UserID"))
	assert.Equal(t, "created_at", SnakeCase("Created_At"))
}

func TestSnakeCaseMultiByte(t *testing.T) {
	assert.Equal(t, "école_name", SnakeCase("ÉCOLEName"))
	assert.Equal(t, "àb", SnakeCase("ÀB"))
	assert.Equal(t, "über_id", SnakeCase("ÜberID"))
}
