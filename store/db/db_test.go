package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/store"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeam(t *testing.T) *model.Team {
	leader, err := model.NewTeamLeader("Adam", "Kowalski", "1990-07-01", "90070100211", model.GenderM, 5)
	require.NoError(t, err)
	beata, err := model.NewTeamMember("Beata", "Nowak", "1992-10-22", "92102201347", model.GenderK, "projektant", "01-Jan-2020")
	require.NoError(t, err)
	jan, err := model.NewTeamMember("Jan", "Janowski", "1993-03-15", "92031507772", model.GenderM, "programista", "01-Jun-2019")
	require.NoError(t, err)

	team := model.NewTeam("Test", leader)
	team.AddMember(beata)
	team.AddMember(jan)
	return team
}

func newDb(t *testing.T) *Db {
	d, err := NewDb(&ConfigDb{})
	require.NoError(t, err)
	return d
}

func TestNewDb(t *testing.T) {
	_, err := NewDb(nil)
	assert.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	d := newDb(t)
	path := filepath.Join(t.TempDir(), "team.sqlite")
	team := testTeam(t)

	require.NoError(t, d.Write(path, team))
	got, err := d.Read(path)
	require.NoError(t, err)
	assert.Equal(t, team.String(), got.String())
}

func TestWriteKeepsOrder(t *testing.T) {
	d := newDb(t)
	path := filepath.Join(t.TempDir(), "team.sqlite")
	team := testTeam(t)
	team.SortByPesel()

	require.NoError(t, d.Write(path, team))
	got, err := d.Read(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.MemberCount())
	assert.Equal(t, "92031507772", got.Members()[0].Pesel())
	assert.Equal(t, "92102201347", got.Members()[1].Pesel())
}

func TestWriteOverwrites(t *testing.T) {
	d := newDb(t)
	path := filepath.Join(t.TempDir(), "team.sqlite")
	team := testTeam(t)
	require.NoError(t, d.Write(path, team))

	team.RemoveEveryone()
	team.Name = "Pusty"
	require.NoError(t, d.Write(path, team))

	got, err := d.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Pusty", got.Name)
	assert.Equal(t, 0, got.MemberCount())
	assert.Equal(t, "Adam", got.Leader.Name)
}

func TestReadNotDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.sqlite")
	require.NoError(t, os.WriteFile(path, []byte("to nie jest baza danych, tylko tekst"), 0o644))

	_, err := newDb(t).Read(path)
	require.Error(t, err)
	assert.Equal(t, store.ErrMalformed, errors.Cause(err), errors.ErrorStack(err))
}

func TestReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.sqlite")
	_, err := newDb(t).Read(path)
	require.Error(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteWithoutLeader(t *testing.T) {
	err := newDb(t).Write(filepath.Join(t.TempDir(), "team.sqlite"), &model.Team{})
	assert.Equal(t, model.ErrMissingLeader, errors.Cause(err))
}
