// Package render turns typed view models into HTML fragments. All text is
// escaped by html/template; a fragment always replaces the whole container.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"chamber-directory/internal/directory"
	"chamber-directory/internal/model"
	"chamber-directory/internal/parse"
	"chamber-directory/internal/weather"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer holds the parsed template set. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MemberCard is the view model of one member.
type MemberCard struct {
	Name     string
	Tagline  string
	Address  string
	Phone    string
	Website  string
	Host     string
	ImageSrc string
	Tel      template.URL
	Level    directory.Level
}

// NewMemberCard maps a member to its card.
func NewMemberCard(m model.Member) MemberCard {
	return MemberCard{
		Name:     m.Name,
		Tagline:  m.Tagline,
		Address:  m.Address,
		Phone:    m.Phone,
		Website:  m.Website,
		Host:     parse.Hostname(m.Website),
		ImageSrc: "images/" + m.Image,
		// Only digits survive PhoneDigits, so the URL cannot carry markup.
		Tel:   template.URL("tel:" + parse.PhoneDigits(m.Phone)),
		Level: directory.LevelOf(int(m.MembershipLevel)),
	}
}

func memberCards(members []model.Member) []MemberCard {
	cards := make([]MemberCard, len(members))
	for i, m := range members {
		cards[i] = NewMemberCard(m)
	}
	return cards
}

// AttractionCard is the view model of one attraction.
type AttractionCard struct {
	Name        string
	Address     string
	Description string
	ImageSrc    string
	LearnMore   string
}

// ErrorView is an in-page error block.
type ErrorView struct {
	Title   string
	Message string
	Hint    string
}

// Directory renders the member cards in the given mode, or the empty state.
func (r *Renderer) Directory(members []model.Member, mode directory.ViewMode) (template.HTML, error) {
	if len(members) == 0 {
		return r.fragment("no-members", nil)
	}
	return r.fragment("directory", struct {
		Mode  directory.ViewMode
		Cards []MemberCard
	}{Mode: mode, Cards: memberCards(members)})
}

// Spotlights renders a spotlight selection, or the explicit empty state.
func (r *Renderer) Spotlights(s directory.Spotlight) (template.HTML, error) {
	if s.Empty() {
		return r.fragment("no-spotlights", nil)
	}
	return r.fragment("spotlights", memberCards(s.Members))
}

// Attractions renders the discover cards under the given grid class.
func (r *Renderer) Attractions(list []model.Attraction, gridClass string) (template.HTML, error) {
	cards := make([]AttractionCard, len(list))
	for i, a := range list {
		cards[i] = AttractionCard{
			Name:        a.Name,
			Address:     a.Address,
			Description: a.Description,
			ImageSrc:    "images/" + a.Image,
			LearnMore:   "https://www.google.com/search?q=" + template.URLQueryEscaper(a.Name),
		}
	}
	return r.fragment("attractions", struct {
		GridClass string
		Cards     []AttractionCard
	}{GridClass: gridClass, Cards: cards})
}

// Weather renders the widget.
func (r *Renderer) Weather(rep weather.Report) (template.HTML, error) {
	return r.fragment("weather", rep)
}

// VisitorMessage renders the discover page banner.
func (r *Renderer) VisitorMessage(msg string) (template.HTML, error) {
	return r.fragment("visitor-message", msg)
}

// Error renders an error block. It carries no record markup.
func (r *Renderer) Error(v ErrorView) template.HTML {
	html, err := r.fragment("error", v)
	if err != nil {
		return template.HTML("<div class=\"error-message\"><p>" + template.HTMLEscapeString(v.Message) + "</p></div>")
	}
	return html
}

// Body renders one of the page body templates ("home-body", "join-body", ...).
func (r *Renderer) Body(name string, data any) (template.HTML, error) {
	return r.fragment(name, data)
}

// Page writes a complete document.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", p)
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
