package pages

import (
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/models"
)

// Meta carries the rendering context every page payload starts with.
type Meta struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Dir      string `json:"dir"`
	RTL      bool   `json:"rtl"`
}

// Page is one localized marketing page: the metadata the client shell needs
// plus named content sections.
type Page struct {
	Meta     Meta           `json:"meta"`
	Title    string         `json:"title"`
	Sections map[string]any `json:"sections"`
}

// Option pairs a stable stored value with its localized display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Builder assembles page payloads from the translation bundle.
type Builder struct {
	bundle *i18n.Bundle
}

func NewBuilder(bundle *i18n.Bundle) *Builder {
	return &Builder{bundle: bundle}
}

func (b *Builder) page(locale i18n.Locale, path string, title string, sections map[string]any) Page {
	return Page{
		Meta: Meta{
			Path:     path,
			Language: string(locale),
			Dir:      string(locale.Direction()),
			RTL:      locale.IsRTL(),
		},
		Title:    title,
		Sections: sections,
	}
}

func (b *Builder) nav(t func(string) string) map[string]any {
	return map[string]any{
		"home":        t("nav.home"),
		"services":    t("nav.services"),
		"experiences": t("nav.experiences"),
		"gallery":     t("nav.gallery"),
		"about":       t("nav.about"),
		"flights":     t("nav.flights"),
		"contact":     t("nav.contact"),
	}
}

func (b *Builder) footer(t func(string) string) map[string]any {
	return map[string]any{
		"description":  t("footer.description"),
		"quickLinks":   t("footer.quickLinks"),
		"destinations": t("footer.destinations"),
		"contact":      t("footer.contact"),
		"rights":       t("footer.rights"),
		"crafted":      t("footer.crafted"),
	}
}

func (b *Builder) options(t func(string) string, prefix string, values []string) []Option {
	opts := make([]Option, 0, len(values))
	for _, value := range values {
		opts = append(opts, Option{Value: value, Label: t(prefix + value)})
	}
	return opts
}

// Home builds the landing page: hero, featured destinations, service and
// experience teasers, about block, and the inquiry call to action.
func (b *Builder) Home(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	destinations := []map[string]any{
		{"key": "italy", "name": t("dest.italy"), "tagline": t("dest.italy.tagline")},
		{"key": "greece", "name": t("dest.greece"), "tagline": t("dest.greece.tagline")},
		{"key": "austria", "name": t("dest.austria"), "tagline": t("dest.austria.tagline")},
		{"key": "srilanka", "name": t("dest.srilanka"), "tagline": t("dest.srilanka.tagline")},
		{"key": "worldwide", "name": t("dest.worldwide"), "tagline": t("dest.worldwide.tagline")},
	}

	return b.page(locale, "/", t("hero.discover"), map[string]any{
		"nav": b.nav(t),
		"hero": map[string]any{
			"tagline":     t("hero.tagline"),
			"discover":    t("hero.discover"),
			"description": t("hero.description"),
			"ctaExplore":  t("hero.cta.explore"),
			"ctaPlan":     t("hero.cta.plan"),
			"scroll":      t("hero.scroll"),
		},
		"destinations": map[string]any{
			"tagline":    t("destinations.tagline"),
			"title":      t("destinations.title"),
			"highlights": t("destinations.highlights"),
			"items":      destinations,
		},
		"services": map[string]any{
			"tagline":     t("services.tagline"),
			"title":       t("services.title"),
			"description": t("services.description"),
			"cta":         t("services.cta"),
		},
		"experiences": map[string]any{
			"tagline":     t("experiences.tagline"),
			"title":       t("experiences.title"),
			"description": t("experiences.description"),
			"cta":         t("experiences.cta"),
		},
		"about": map[string]any{
			"tagline":     t("about.tagline"),
			"title":       t("about.title"),
			"description": t("about.description"),
			"cta":         t("about.cta"),
		},
		"contact": map[string]any{
			"tagline":     t("contact.tagline"),
			"title":       t("contact.title"),
			"description": t("contact.description"),
		},
		"footer": b.footer(t),
	})
}

func (b *Builder) Services(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	items := []map[string]any{
		{"key": "custom", "title": t("services.custom.title"), "description": t("services.custom.desc")},
		{"key": "accommodations", "title": t("services.accommodations.title"), "description": t("services.accommodations.desc")},
		{"key": "concierge", "title": t("services.concierge.title"), "description": t("services.concierge.desc")},
		{"key": "access", "title": t("services.access.title"), "description": t("services.access.desc")},
	}

	return b.page(locale, "/services", t("services.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("services.page.tagline"),
			"title":       t("services.page.title"),
			"description": t("services.page.description"),
		},
		"items":  items,
		"cta":    t("services.page.cta"),
		"footer": b.footer(t),
	})
}

func (b *Builder) Experiences(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/experiences", t("experiences.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("experiences.page.tagline"),
			"title":       t("experiences.page.title"),
			"description": t("experiences.page.description"),
		},
		"categories": b.options(t, models.ExperienceLabelPrefix, models.ExperienceTypes),
		"cta":        t("experiences.cta"),
		"footer":     b.footer(t),
	})
}

func (b *Builder) Gallery(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/gallery", t("gallery.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("gallery.tagline"),
			"title":       t("gallery.title"),
			"description": t("gallery.description"),
		},
		"filters": append(
			[]Option{{Value: "all", Label: t("gallery.filter.all")}},
			b.options(t, models.DestinationLabelPrefix, []string{"italy", "greece", "austria", "srilanka"})...,
		),
		"footer": b.footer(t),
	})
}

func (b *Builder) About(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/about", t("about.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("about.page.tagline"),
			"title":       t("about.page.title"),
			"description": t("about.page.description"),
		},
		"stats": []map[string]any{
			{"key": "travelers", "label": t("about.stat.travelers")},
			{"key": "destinations", "label": t("about.stat.destinations")},
			{"key": "experiences", "label": t("about.stat.experiences")},
			{"key": "support", "label": t("about.stat.support")},
		},
		"cta":    t("about.cta"),
		"footer": b.footer(t),
	})
}

// Contact builds the inquiry page, including the form metadata: labels for
// every field plus the canonical option lists with localized display labels.
func (b *Builder) Contact(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/contact", t("contact.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("contact.page.tagline"),
			"title":       t("contact.page.title"),
			"description": t("contact.page.description"),
		},
		"form": map[string]any{
			"labels": map[string]any{
				"name":                t("contact.form.name"),
				"email":               t("contact.form.email"),
				"phone":               t("contact.form.phone"),
				"country":             t("contact.form.country"),
				"destination":         t("contact.form.destination"),
				"destinationSelect":   t("contact.form.destination.select"),
				"travelers":           t("contact.form.travelers"),
				"dates":               t("contact.form.dates"),
				"budget":              t("contact.form.budget"),
				"budgetSelect":        t("contact.form.budget.select"),
				"travelerType":        t("contact.form.travelerType"),
				"experienceType":      t("contact.form.experienceType"),
				"requests":            t("contact.form.requests"),
				"requestsPlaceholder": t("contact.form.requests.placeholder"),
				"submit":              t("contact.form.submit"),
				"submitting":          t("contact.form.submitting"),
			},
			"destinations":    b.options(t, models.DestinationLabelPrefix, models.Destinations),
			"budgets":         b.options(t, models.BudgetLabelPrefix, models.BudgetRanges),
			"travelerTypes":   b.options(t, models.TravelerLabelPrefix, models.TravelerTypes),
			"experienceTypes": b.options(t, models.ExperienceLabelPrefix, models.ExperienceTypes),
			"success": map[string]any{
				"title":   t("contact.success.title"),
				"message": t("contact.success.message"),
			},
			"error": t("contact.error"),
		},
		"footer": b.footer(t),
	})
}

// PrivateFlights builds the empty-leg flights page shell; the handler embeds
// the live listing alongside it.
func (b *Builder) PrivateFlights(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/private-flights", t("flights.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("flights.page.tagline"),
			"title":       t("flights.page.title"),
			"description": t("flights.page.description"),
		},
		"upcoming": map[string]any{
			"title": t("flights.upcoming.title"),
			"empty": t("flights.upcoming.empty"),
			"columns": map[string]any{
				"route":    t("flights.col.route"),
				"date":     t("flights.col.date"),
				"aircraft": t("flights.col.aircraft"),
				"seats":    t("flights.col.seats"),
				"price":    t("flights.col.price"),
			},
		},
		"cta":    t("flights.cta"),
		"footer": b.footer(t),
	})
}

// Personal, EliteJourneys, and Boutique are narrow campaign pages reusing the
// services and experiences copy blocks.
func (b *Builder) Personal(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/personal", t("services.custom.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"title":       t("services.custom.title"),
			"description": t("services.custom.desc"),
		},
		"cta":    t("hero.cta.plan"),
		"footer": b.footer(t),
	})
}

func (b *Builder) EliteJourneys(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/elite-journeys", t("experiences.page.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"tagline":     t("experiences.page.tagline"),
			"title":       t("experiences.page.title"),
			"description": t("experiences.page.description"),
		},
		"categories": b.options(t, models.ExperienceLabelPrefix, []string{"cruise", "safari", "wellness", "culinary"}),
		"cta":        t("hero.cta.plan"),
		"footer":     b.footer(t),
	})
}

func (b *Builder) Boutique(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "/boutique", t("services.accommodations.title"), map[string]any{
		"nav": b.nav(t),
		"intro": map[string]any{
			"title":       t("services.accommodations.title"),
			"description": t("services.accommodations.desc"),
		},
		"categories": b.options(t, models.ExperienceLabelPrefix, []string{"hotel", "villa"}),
		"cta":        t("hero.cta.plan"),
		"footer":     b.footer(t),
	})
}

// NotFound is the localized catch-all payload.
func (b *Builder) NotFound(locale i18n.Locale) Page {
	t := b.bundle.Func(locale)

	return b.page(locale, "", t("notfound.title"), map[string]any{
		"message": t("notfound.message"),
		"cta":     t("notfound.cta"),
	})
}
