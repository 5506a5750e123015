package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentation_Validate(t *testing.T) {
	tests := []struct {
		name         string
		presentation Presentation
		wantErr      bool
		errMsg       string
	}{
		{
			name: "valid presentation",
			presentation: Presentation{
				Title: "Demo",
				Slides: []Slide{
					{Content: "# Hello", Index: 0},
				},
			},
			wantErr: false,
		},
		{
			name: "no title is allowed",
			presentation: Presentation{
				Slides: []Slide{
					{Content: "# Hello", Index: 0},
				},
			},
			wantErr: false,
		},
		{
			name:         "no slides",
			presentation: Presentation{Title: "Demo"},
			wantErr:      true,
			errMsg:       "at least one slide",
		},
		{
			name: "current index out of range",
			presentation: Presentation{
				Slides: []Slide{
					{Content: "# Hello", Index: 0},
				},
				CurrentIndex: 3,
			},
			wantErr: true,
			errMsg:  "out of range",
		},
		{
			name: "negative current index",
			presentation: Presentation{
				Slides: []Slide{
					{Content: "# Hello", Index: 0},
				},
				CurrentIndex: -1,
			},
			wantErr: true,
			errMsg:  "out of range",
		},
		{
			name: "invalid slide",
			presentation: Presentation{
				Slides: []Slide{
					{Content: "   ", Index: 0},
				},
			},
			wantErr: true,
			errMsg:  "slide 1 validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.presentation.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPresentation_ValidateSetsDefaultTheme(t *testing.T) {
	p := Presentation{
		Slides: []Slide{{Content: "# Hello", Index: 0}},
	}

	require.NoError(t, p.Validate())
	assert.Equal(t, "dark", p.Theme)
}

func TestPresentation_Navigation(t *testing.T) {
	deck := func() *Presentation {
		return &Presentation{
			Slides: []Slide{
				{Content: "one", Index: 0},
				{Content: "two", Index: 1},
				{Content: "three", Index: 2},
			},
		}
	}

	t.Run("advance stops at last slide", func(t *testing.T) {
		p := deck()
		assert.True(t, p.Advance())
		assert.True(t, p.Advance())
		assert.False(t, p.Advance())
		assert.Equal(t, 2, p.CurrentIndex)
	})

	t.Run("rewind stops at first slide", func(t *testing.T) {
		p := deck()
		assert.False(t, p.Rewind())
		assert.Equal(t, 0, p.CurrentIndex)

		p.CurrentIndex = 2
		assert.True(t, p.Rewind())
		assert.True(t, p.Rewind())
		assert.False(t, p.Rewind())
		assert.Equal(t, 0, p.CurrentIndex)
	})

	t.Run("first and last jump and report changes", func(t *testing.T) {
		p := deck()
		assert.False(t, p.First())
		assert.True(t, p.Last())
		assert.Equal(t, 2, p.CurrentIndex)
		assert.False(t, p.Last())
		assert.True(t, p.First())
		assert.Equal(t, 0, p.CurrentIndex)
	})

	t.Run("index stays in range throughout", func(t *testing.T) {
		p := deck()
		for i := 0; i < 10; i++ {
			p.Advance()
			require.NoError(t, p.Validate())
		}
		for i := 0; i < 10; i++ {
			p.Rewind()
			require.NoError(t, p.Validate())
		}
	})
}

func TestPresentation_CurrentSlide(t *testing.T) {
	p := &Presentation{
		Slides: []Slide{
			{Content: "one", Index: 0},
			{Content: "two", Index: 1},
		},
		CurrentIndex: 1,
	}

	slide, err := p.CurrentSlide()
	require.NoError(t, err)
	assert.Equal(t, "two", slide.Content)

	p.CurrentIndex = 5
	_, err = p.CurrentSlide()
	require.Error(t, err)
}

func TestPresentation_GetSlideByIndex(t *testing.T) {
	p := &Presentation{
		Slides: []Slide{{Content: "one", Index: 0}},
	}

	slide, err := p.GetSlideByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "one", slide.Content)

	_, err = p.GetSlideByIndex(-1)
	assert.Error(t, err)

	_, err = p.GetSlideByIndex(1)
	assert.Error(t, err)
}
