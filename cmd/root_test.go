package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "status", "export", "config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestServeCommand_PortFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	assert.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestExportCommand_RequiredFlags(t *testing.T) {
	assert.NotNil(t, exportCmd.Flags().Lookup("partition"))
	assert.NotNil(t, exportCmd.Flags().Lookup("out"))
}
