package naming

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "UserInfo"},
		{"full_name", "FullName"},
		{"user_id", "UserID"},
		{"http_code", "HTTPCode"},
		{"full-admin", "FullAdmin"},
		{"already", "Already"},
		{"a", "A"},
		{"ab", "Ab"},
		{"a_b", "AB"},
		{"xml_parser", "XMLParser"},
		{"api_url", "APIURL"},
		{"userInfo", "UserInfo"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pascal(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "userInfo"},
		{"full_name", "fullName"},
		{"user_id", "userID"},
		{"http_code", "httpCode"},
		{"full-admin", "fullAdmin"},
		{"already", "already"},
		{"a", "a"},
		{"user", "user"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Camel(tt.input))
		})
	}
}

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Username", "username"},
		{"FullName", "full_name"},
		{"HTTPCode", "http_code"},
		{"UserID", "user_id"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"AB", "ab"},
		{"ABC", "abc"},
		{"", ""},
		{"userInfo", "user_info"},
		{"UserIDs", "user_ids"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snake(tt.input))
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UserProfile", "user-profile"},
		{"order_item", "order-item"},
		{"HTTPCode", "http-code"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kebab(tt.input))
		})
	}
}

// Camel(Pascal(s)) must start with a lowercase letter and keep the word
// boundaries of the input.
func TestCaseRoundTrip(t *testing.T) {
	for _, s := range []string{"user_info", "http_code", "full_name", "order_item_detail"} {
		t.Run(s, func(t *testing.T) {
			c := Camel(Pascal(s))
			require.NotEmpty(t, c)
			assert.True(t, unicode.IsLower(rune(c[0])))
			assert.Equal(t, Snake(s), Snake(c))
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"category", "categories"},
		{"status", "statuses"},
		{"key", "keys"},
		{"company", "companies"},
		{"user", "users"},
		{"box", "boxes"},
		{"quiz", "quizes"},
		{"branch", "branches"},
		{"dish", "dishes"},
		{"day", "days"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Plural(tt.input))
		})
	}
}

func TestSingular(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"categories", "category"},
		{"products", "product"},
		{"statuses", "status"},
		{"people", "person"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Singular(tt.input))
		})
	}
}

func TestPropertyName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"category_id", "category"},
		{"owner_ID", "owner"},
		{"category", "category"},
		{"id", "id"},
		{"_id", "_id"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PropertyName(tt.input))
		})
	}
}

func TestIsAuditField(t *testing.T) {
	for _, name := range AuditFields() {
		assert.True(t, IsAuditField(name), name)
	}
	assert.True(t, IsAuditField("CREATED_AT"))
	assert.True(t, IsAuditField("Id"))
	assert.False(t, IsAuditField("name"))
	assert.False(t, IsAuditField("created"))
	assert.False(t, IsAuditField(""))
}

func TestEscapeKeyword(t *testing.T) {
	kw := KeywordSet("class", "object", "fun")
	assert.Equal(t, "class_", EscapeKeyword("class", kw))
	assert.Equal(t, "Class_", EscapeKeyword("Class", kw))
	assert.Equal(t, "name", EscapeKeyword("name", kw))
	assert.Equal(t, "", EscapeKeyword("", kw))
}
