package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinCommand(t *testing.T) {
	assert.Equal(t, `join "alice" as: governor`, joinCommand("alice:governor"))
	assert.Equal(t, `join "bob"`, joinCommand("bob"))
	assert.Equal(t, `join "carol"`, joinCommand("carol:"))
}
