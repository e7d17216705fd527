package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opatija/backend/internal/i18n"
	"opatija/backend/internal/models"
)

func TestHomeMeta(t *testing.T) {
	b := NewBuilder(i18n.NewBundle())

	en := b.Home(i18n.LocaleEnglish)
	assert.Equal(t, "/", en.Meta.Path)
	assert.Equal(t, "en", en.Meta.Language)
	assert.Equal(t, "ltr", en.Meta.Dir)
	assert.False(t, en.Meta.RTL)

	he := b.Home(i18n.LocaleHebrew)
	assert.Equal(t, "he", he.Meta.Language)
	assert.Equal(t, "rtl", he.Meta.Dir)
	assert.True(t, he.Meta.RTL)

	assert.NotEqual(t, en.Title, he.Title, "hero title translated")
}

func TestEveryPageCarriesNavAndFooter(t *testing.T) {
	b := NewBuilder(i18n.NewBundle())

	builders := map[string]func(i18n.Locale) Page{
		"/":                b.Home,
		"/services":        b.Services,
		"/experiences":     b.Experiences,
		"/gallery":         b.Gallery,
		"/about":           b.About,
		"/contact":         b.Contact,
		"/personal":        b.Personal,
		"/elite-journeys":  b.EliteJourneys,
		"/private-flights": b.PrivateFlights,
		"/boutique":        b.Boutique,
	}

	for path, build := range builders {
		for _, locale := range i18n.Locales() {
			page := build(locale)
			assert.Equal(t, path, page.Meta.Path, "path %s locale %s", path, locale)
			assert.NotEmpty(t, page.Title, "path %s locale %s", path, locale)
			assert.Contains(t, page.Sections, "nav", "path %s", path)
			assert.Contains(t, page.Sections, "footer", "path %s", path)
		}
	}
}

func TestContactFormMetadata(t *testing.T) {
	b := NewBuilder(i18n.NewBundle())

	page := b.Contact(i18n.LocaleEnglish)
	form, ok := page.Sections["form"].(map[string]any)
	require.True(t, ok)

	travelerTypes := form["travelerTypes"].([]Option)
	require.Len(t, travelerTypes, len(models.TravelerTypes))
	for i, opt := range travelerTypes {
		assert.Equal(t, models.TravelerTypes[i], opt.Value)
		assert.NotEmpty(t, opt.Label)
		assert.NotEqual(t, opt.Value, opt.Label, "labels are localized, not raw keys")
	}

	assert.Len(t, form["experienceTypes"].([]Option), len(models.ExperienceTypes))
	assert.Len(t, form["budgets"].([]Option), len(models.BudgetRanges))
	assert.Len(t, form["destinations"].([]Option), len(models.Destinations))
}

func TestContactFormLabelsLocalized(t *testing.T) {
	b := NewBuilder(i18n.NewBundle())

	en := b.Contact(i18n.LocaleEnglish).Sections["form"].(map[string]any)
	he := b.Contact(i18n.LocaleHebrew).Sections["form"].(map[string]any)

	enBudgets := en["budgets"].([]Option)
	heBudgets := he["budgets"].([]Option)
	require.Equal(t, len(enBudgets), len(heBudgets))

	for i := range enBudgets {
		assert.Equal(t, enBudgets[i].Value, heBudgets[i].Value, "stored values are locale independent")
	}
}

func TestNotFound(t *testing.T) {
	b := NewBuilder(i18n.NewBundle())

	page := b.NotFound(i18n.LocaleHebrew)
	assert.True(t, page.Meta.RTL)
	assert.NotEmpty(t, page.Title)
	assert.Contains(t, page.Sections, "message")
}
