package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestMigrateCommandArgs(t *testing.T) {
	t.Run("rejects unknown command", func(t *testing.T) {
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"migrate", "sideways"})

		err := root.Execute()
		assert.ErrorContains(t, err, "invalid argument")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"migrate", "up", "down"})

		assert.Error(t, root.Execute())
	})

	t.Run("requires postgres driver", func(t *testing.T) {
		t.Setenv("EXERCISE_DATABASE_DRIVER", "memory")
		t.Setenv("EXERCISE_SERVER_LOG_LEVEL", "error")

		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"migrate", "status"})

		err := root.Execute()
		assert.ErrorContains(t, err, "migrations require")
	})
}

func TestServeRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"serve", "extra"})

	assert.Error(t, root.Execute())
}
