package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContentAcceptsCleanText(t *testing.T) {
	s := NewSupportService(nil)

	ok, reason := s.FilterContent("The supplies screen keeps showing an outdated quantity.")
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestFilterContentAcceptsEmptyText(t *testing.T) {
	s := NewSupportService(nil)

	ok, _ := s.FilterContent("")
	assert.True(t, ok)
}

func TestFilterContentRejectsBannedWords(t *testing.T) {
	s := NewSupportService(nil)

	ok, reason := s.FilterContent("this app is bullshit")
	assert.False(t, ok)
	assert.Equal(t, "inappropriate_language", reason)
}

func TestFilterContentMatchesWholeWordsOnly(t *testing.T) {
	s := NewSupportService(nil)

	// "assistant" contains "ass" but is not a banned word.
	ok, _ := s.FilterContent("the assistant stopped responding")
	assert.True(t, ok)
}

func TestFilterContentRejectsURLs(t *testing.T) {
	s := NewSupportService(nil)

	ok, reason := s.FilterContent("check out https://example.com/offer")
	assert.False(t, ok)
	assert.Equal(t, "url_not_allowed", reason)

	ok, reason = s.FilterContent("visit www.example.com now")
	assert.False(t, ok)
	assert.Equal(t, "url_not_allowed", reason)
}

func TestFilterContentRejectsRepeatedCharacters(t *testing.T) {
	s := NewSupportService(nil)

	ok, reason := s.FilterContent("why is it brokennnnnnnn")
	assert.False(t, ok)
	assert.Equal(t, "spam_detected", reason)
}
