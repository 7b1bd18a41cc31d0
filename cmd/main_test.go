package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kirsrus/teams/controller/archive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintFixtures(t *testing.T) {
	var buf bytes.Buffer
	team, err := printFixtures(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, team.MemberCount())

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "Beata Nowak ("))
	assert.True(t, strings.HasSuffix(lines[0], ") 1992-10-22 92102201347 K projektant (01-Jan-2020)"))
	assert.True(t, strings.HasSuffix(lines[1], ") 1993-03-15 92031507772 M programista (01-Jun-2019)"))
	assert.True(t, strings.HasSuffix(lines[2], ") 1990-07-01 90070100211 M 5"))
	assert.Equal(t, "Team: Test", lines[3])
	assert.Equal(t, "Leader: "+lines[2], lines[4])
	assert.Equal(t, lines[0], lines[5])
	assert.Equal(t, lines[1], lines[6])
	assert.Equal(t, "", lines[7])
	assert.Equal(t, "2", lines[8])
	assert.Equal(t, "1", lines[9])
	assert.Equal(t, "taboret_szafa", lines[10])
	assert.Equal(t, "mistrz.pijany", lines[11])
}

func TestExport(t *testing.T) {
	team, err := printFixtures(&bytes.Buffer{})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	cfg.Export.Dir = dir
	cfg.Export.Formats = []string{"binary", "xml", "sqlite"}
	defer func() { cfg.Export.Dir = "" }()

	archiveCtl, err := archive.NewArchive(&archive.ConfigArchive{})
	require.NoError(t, err)
	require.NoError(t, export(archiveCtl, team))

	for _, name := range []string{"team.bin", "team.xml", "team.sqlite"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}

	cfg.Export.Formats = []string{"json"}
	assert.Error(t, export(archiveCtl, team))
}
