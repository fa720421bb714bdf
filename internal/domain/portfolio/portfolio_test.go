package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twoloom/internal/shared/i18n"
)

func TestNewPortfolio(t *testing.T) {
	tests := []struct {
		name        string
		title       i18n.LocalizedText
		description i18n.LocalizedText
		wantError   bool
	}{
		{
			name:        "valid portfolio",
			title:       i18n.LocalizedText{"ko": "프로젝트"},
			description: i18n.LocalizedText{"ko": "설명"},
			wantError:   false,
		},
		{
			name:        "title only in non-default locale",
			title:       i18n.LocalizedText{"en": "Project"},
			description: i18n.LocalizedText{"ko": "설명"},
			wantError:   true,
		},
		{
			name:        "missing description",
			title:       i18n.LocalizedText{"ko": "프로젝트"},
			description: i18n.LocalizedText{},
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPortfolio(tt.title, tt.description, nil, nil)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, StatusDraft, p.Status())
				assert.NotNil(t, p.Images())
				assert.NotNil(t, p.TechStack())
			}
		})
	}
}

func TestPortfolio_ChangeStatus(t *testing.T) {
	p, err := NewPortfolio(
		i18n.LocalizedText{"ko": "프로젝트"},
		i18n.LocalizedText{"ko": "설명"},
		nil, nil,
	)
	require.NoError(t, err)

	require.NoError(t, p.ChangeStatus(StatusPublished))
	assert.True(t, p.Status().IsPublished())

	require.NoError(t, p.ChangeStatus(StatusDraft))
	assert.False(t, p.Status().IsPublished())

	assert.Error(t, p.ChangeStatus(Status("archived")))
}

func TestPortfolio_SetID(t *testing.T) {
	p, err := NewPortfolio(
		i18n.LocalizedText{"ko": "프로젝트"},
		i18n.LocalizedText{"ko": "설명"},
		nil, nil,
	)
	require.NoError(t, err)

	require.NoError(t, p.SetID(42))
	assert.Equal(t, uint(42), p.ID())
	assert.Error(t, p.SetID(43))
}

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name      string
		catName   i18n.LocalizedText
		slug      string
		wantError bool
		wantSlug  string
	}{
		{
			name:      "valid category",
			catName:   i18n.LocalizedText{"ko": "웹"},
			slug:      "web",
			wantError: false,
			wantSlug:  "web",
		},
		{
			name:      "slug normalized to lowercase",
			catName:   i18n.LocalizedText{"ko": "웹"},
			slug:      " Web-App ",
			wantError: false,
			wantSlug:  "web-app",
		},
		{
			name:      "empty slug",
			catName:   i18n.LocalizedText{"ko": "웹"},
			slug:      "",
			wantError: true,
		},
		{
			name:      "invalid slug characters",
			catName:   i18n.LocalizedText{"ko": "웹"},
			slug:      "web app!",
			wantError: true,
		},
		{
			name:      "name missing default locale",
			catName:   i18n.LocalizedText{"en": "Web"},
			slug:      "web",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(tt.catName, tt.slug, 0)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				require.NotNil(t, c)
				assert.Equal(t, tt.wantSlug, c.Slug())
				assert.True(t, c.IsActive())
			}
		})
	}
}
