package article

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSetsPublishedAtOnce(t *testing.T) {
	a := &Article{Title: "Go Basics", Slug: "go-basics", Status: StatusDraft}

	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, a.Publish(first))
	assert.Equal(t, StatusPublished, a.Status)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, first, *a.PublishedAt)

	// Publishing again must not move the original timestamp
	second := first.Add(48 * time.Hour)
	require.NoError(t, a.Publish(second))
	assert.Equal(t, first, *a.PublishedAt)
}

func TestUnpublishKeepsPublishedAt(t *testing.T) {
	a := &Article{Status: StatusDraft}
	publishedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, a.Publish(publishedAt))

	require.NoError(t, a.Unpublish())
	assert.Equal(t, StatusDraft, a.Status)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, publishedAt, *a.PublishedAt)
}

func TestArchivedIsTerminal(t *testing.T) {
	a := &Article{Status: StatusPublished}
	a.Archive()
	assert.Equal(t, StatusArchived, a.Status)

	assert.ErrorIs(t, a.Publish(time.Now()), ErrArchived)
	assert.ErrorIs(t, a.Unpublish(), ErrArchived)
	assert.ErrorIs(t, a.Schedule(time.Now().Add(time.Hour), time.Now()), ErrArchived)
	assert.Equal(t, StatusArchived, a.Status)
}

func TestSchedule(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("future time is accepted", func(t *testing.T) {
		a := &Article{Status: StatusDraft}
		at := now.Add(2 * time.Hour)
		require.NoError(t, a.Schedule(at, now))
		assert.Equal(t, StatusScheduled, a.Status)
		require.NotNil(t, a.ScheduledFor)
		assert.Equal(t, at, *a.ScheduledFor)
	})

	t.Run("zero time is rejected", func(t *testing.T) {
		a := &Article{Status: StatusDraft}
		assert.ErrorIs(t, a.Schedule(time.Time{}, now), ErrScheduleNotSet)
	})

	t.Run("past time is rejected", func(t *testing.T) {
		a := &Article{Status: StatusDraft}
		assert.ErrorIs(t, a.Schedule(now.Add(-time.Minute), now), ErrSchedulePassed)
	})

	t.Run("current time is rejected", func(t *testing.T) {
		a := &Article{Status: StatusDraft}
		assert.ErrorIs(t, a.Schedule(now, now), ErrSchedulePassed)
	})
}

func TestPublishClearsScheduledFor(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := &Article{Status: StatusDraft}
	require.NoError(t, a.Schedule(now.Add(time.Hour), now))

	require.NoError(t, a.Publish(now.Add(time.Hour)))
	assert.Nil(t, a.ScheduledFor)
}

func TestReadTimeMinutes(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
		{1000, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadTimeMinutes(tt.words), "words=%d", tt.words)
	}
}

func TestRecalcReadTime(t *testing.T) {
	// 250 + 150 = 400 words across two lectures -> 2 minutes
	a := &Article{
		Sections: []Section{
			{Lectures: []Lecture{{Content: strings.Repeat("word ", 250)}}},
			{Lectures: []Lecture{{Content: strings.Repeat("word ", 150)}}},
		},
	}
	a.RecalcReadTime()
	assert.Equal(t, 2, a.ReadTime)

	a.Sections = nil
	a.RecalcReadTime()
	assert.Equal(t, 0, a.ReadTime)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t "))
	assert.Equal(t, 3, WordCount("learn go fast"))
	assert.Equal(t, 3, WordCount("  learn\n\ngo\tfast  "))
}

func TestIsAllowedVideoURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", true},
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://youtu.be/abc123", true},
		{"http://vimeo.com/12345", true},
		{"https://player.vimeo.com/video/12345", true},
		{"https://fast.wistia.com/embed/abc", true},
		{"https://www.loom.com/share/abc", true},
		{"https://www.dailymotion.com/video/x123", true},
		{"https://example.com/video.mp4", false},
		{"https://notyoutube.com/watch", false},
		{"ftp://youtube.com/video", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAllowedVideoURL(tt.url), "url=%q", tt.url)
	}
}
