package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *PresentationParserAdapter {
	return NewPresentationParserAdapter(NewMarkdownSplitter())
}

func TestPresentationParserAdapter_Parse(t *testing.T) {
	content := []byte(`---
title: Quarterly Review
author: Sam
theme: mono
date: 2024-03-01
---

# Intro

Welcome

---

## Numbers

Revenue up
`)

	p, err := newTestParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "Quarterly Review", p.Title)
	assert.Equal(t, "Sam", p.Author)
	assert.Equal(t, "mono", p.Theme)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.Date)

	require.Equal(t, 2, p.SlideCount())
	assert.Equal(t, "Intro", p.Slides[0].Title)
	assert.Equal(t, 0, p.Slides[0].Index)
	assert.Equal(t, 1, p.Slides[1].Index)
	assert.Equal(t, 0, p.CurrentIndex)
}

func TestPresentationParserAdapter_Parse_QuotedDate(t *testing.T) {
	// A quoted date survives YAML decoding as a string rather than a
	// time.Time; both spellings must land on the same day.
	content := []byte("---\ndate: \"2024-03-01\"\n---\n# Slide")

	p, err := newTestParser().Parse(content)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.Date)
}

func TestPresentationParserAdapter_Parse_DefaultsDate(t *testing.T) {
	p, err := newTestParser().Parse([]byte("# Slide"))
	require.NoError(t, err)
	assert.False(t, p.Date.IsZero())
}

func TestPresentationParserAdapter_Parse_BadDateIgnored(t *testing.T) {
	content := []byte("---\ntitle: X\ndate: not-a-date\n---\n# Slide")

	p, err := newTestParser().Parse(content)
	require.NoError(t, err)
	assert.False(t, p.Date.IsZero())
}

func TestPresentationParserAdapter_Parse_EmptyDeckFails(t *testing.T) {
	_, err := newTestParser().Parse([]byte("---\ntitle: Empty\n---\n\n\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one slide")
}
