package waitlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"john.doe@example.co.uk",
		"user+tag@sub.domain.io",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@dot",
		"two@@signs.com",
		"spaces in@local.com",
		"@nodomain.com",
		"nobody@",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidHandle(t *testing.T) {
	valid := []string{
		"abc",
		"alice_1",
		"@alice_1",
		"ABC_def_123",
		strings.Repeat("a", 15),
		"@" + strings.Repeat("a", 15),
	}
	for _, handle := range valid {
		assert.True(t, ValidHandle(handle), "expected %q to be valid", handle)
	}

	invalid := []string{
		"",
		"ab",
		"@ab",
		strings.Repeat("a", 16),
		"has-dash",
		"has space",
		"emoji🙂bad",
		"@@double",
	}
	for _, handle := range invalid {
		assert.False(t, ValidHandle(handle), "expected %q to be invalid", handle)
	}
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "alice", NormalizeHandle("@alice"))
	assert.Equal(t, "alice", NormalizeHandle("alice"))
	// Only one leading @ is stripped; case is untouched.
	assert.Equal(t, "@alice", NormalizeHandle("@@alice"))
	assert.Equal(t, "Foo_Bar", NormalizeHandle("@Foo_Bar"))
}

func TestHandleKey(t *testing.T) {
	assert.Equal(t, "foo_bar", handleKey("Foo_Bar"))
	assert.Equal(t, "foo_bar", handleKey("@FOO_BAR"))
	assert.Equal(t, handleKey("Foo_Bar"), handleKey("foo_bar"))
}
