package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Фиксированное "сейчас" для стабильного возраста
var testNow = time.Date(2021, time.March, 10, 15, 30, 0, 0, time.UTC)

func init() {
	now = func() time.Time { return testNow }
}

func beata(t *testing.T) *TeamMember {
	m, err := NewTeamMember("Beata", "Nowak", "1992-10-22", "92102201347", GenderK, "projektant", "01-Jan-2020")
	require.NoError(t, err)
	return m
}

func jan(t *testing.T) *TeamMember {
	m, err := NewTeamMember("Jan", "Janowski", "1993-03-15", "92031507772", GenderM, "programista", "01-Jun-2019")
	require.NoError(t, err)
	return m
}

func adam(t *testing.T) *TeamLeader {
	l, err := NewTeamLeader("Adam", "Kowalski", "1990-07-01", "90070100211", GenderM, 5)
	require.NoError(t, err)
	return l
}

func testTeam(t *testing.T) *Team {
	team := NewTeam("Test", adam(t))
	team.AddMember(beata(t))
	team.AddMember(jan(t))
	return team
}
