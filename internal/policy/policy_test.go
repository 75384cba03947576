package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	profile := map[string]string{
		"Profissao": "Estudante",
		"cidade":    "Luanda",
	}

	t.Run("all pairs present and equal", func(t *testing.T) {
		assert.True(t, Matches(profile, []Restriction{
			{Key: "profissao", Value: "estudante"},
			{Key: "cidade", Value: "luanda"},
		}))
	})

	t.Run("case-insensitive on both sides", func(t *testing.T) {
		assert.True(t, Matches(profile, []Restriction{{Key: "PROFISSAO", Value: "ESTUDANTE"}}))
	})

	t.Run("missing key fails", func(t *testing.T) {
		assert.False(t, Matches(profile, []Restriction{{Key: "idade", Value: "25"}}))
	})

	t.Run("wrong value fails", func(t *testing.T) {
		assert.False(t, Matches(profile, []Restriction{{Key: "profissao", Value: "professor"}}))
	})

	t.Run("one failing pair fails the whole set", func(t *testing.T) {
		assert.False(t, Matches(profile, []Restriction{
			{Key: "profissao", Value: "estudante"},
			{Key: "cidade", Value: "benguela"},
		}))
	})

	t.Run("empty restriction list matches anything", func(t *testing.T) {
		assert.True(t, Matches(profile, nil))
		assert.True(t, Matches(nil, nil))
	})
}

func TestEvaluate(t *testing.T) {
	student := map[string]string{"profissao": "estudante"}
	professor := map[string]string{"profissao": "professor"}

	t.Run("whitelist admits matching profile", func(t *testing.T) {
		r := []Restriction{{Key: "profissao", Value: "estudante"}}
		assert.True(t, Evaluate(TypeWhitelist, student, r))
		assert.False(t, Evaluate(TypeWhitelist, professor, r))
	})

	t.Run("blacklist excludes matching profile", func(t *testing.T) {
		r := []Restriction{{Key: "profissao", Value: "estudante"}}
		assert.False(t, Evaluate(TypeBlacklist, student, r))
		assert.True(t, Evaluate(TypeBlacklist, professor, r))
	})

	t.Run("empty restrictions allow everyone under both types", func(t *testing.T) {
		assert.True(t, Evaluate(TypeWhitelist, student, nil))
		assert.True(t, Evaluate(TypeBlacklist, student, nil))
		assert.True(t, Evaluate(TypeWhitelist, nil, []Restriction{}))
		assert.True(t, Evaluate(TypeBlacklist, nil, []Restriction{}))
	})

	t.Run("empty profile fails whitelist, passes blacklist", func(t *testing.T) {
		r := []Restriction{{Key: "profissao", Value: "estudante"}}
		assert.False(t, Evaluate(TypeWhitelist, nil, r))
		assert.True(t, Evaluate(TypeBlacklist, nil, r))
	})

	t.Run("unknown policy type behaves as whitelist", func(t *testing.T) {
		r := []Restriction{{Key: "profissao", Value: "estudante"}}
		assert.True(t, Evaluate(Type("SOMETHING"), student, r))
		assert.False(t, Evaluate(Type("SOMETHING"), professor, r))
	})
}

func TestValidateRestrictions(t *testing.T) {
	assert.True(t, ValidateRestrictions(nil))
	assert.True(t, ValidateRestrictions([]Restriction{{Key: "profissao", Value: "estudante"}}))
	assert.True(t, ValidateRestrictions([]Restriction{{Key: "cidade", Value: ""}}))
	assert.False(t, ValidateRestrictions([]Restriction{{Key: "", Value: "x"}}))
	assert.False(t, ValidateRestrictions([]Restriction{{Key: "   ", Value: "x"}}))
}
