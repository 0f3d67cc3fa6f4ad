package page

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"time"

	"chamber-directory/config"
	"chamber-directory/internal/application"
	"chamber-directory/internal/directory"
	"chamber-directory/internal/loader"
	"chamber-directory/internal/model"
	"chamber-directory/internal/render"
	"chamber-directory/internal/visit"
	"chamber-directory/internal/weather"
)

// WeatherReporter is the weather widget's data source.
type WeatherReporter interface {
	Report(ctx context.Context) weather.Report
}

// Site holds what the page controllers share.
type Site struct {
	sources  config.SourcesConfig
	loader   *loader.Loader
	weather  WeatherReporter
	picker   *directory.Picker
	renderer *render.Renderer
	now      func() time.Time
}

// NewSite wires the controllers.
func NewSite(sources config.SourcesConfig, l *loader.Loader, w WeatherReporter, p *directory.Picker, r *render.Renderer) *Site {
	return &Site{
		sources:  sources,
		loader:   l,
		weather:  w,
		picker:   p,
		renderer: r,
		now:      time.Now,
	}
}

// Renderer exposes the shared renderer.
func (s *Site) Renderer() *render.Renderer { return s.renderer }

// Members loads the member records.
func (s *Site) Members(ctx context.Context) ([]model.Member, error) {
	return loader.LoadRecords[model.Member](ctx, s.loader, s.sources.Members)
}

// Attractions loads the discover page records.
func (s *Site) Attractions(ctx context.Context) ([]model.Attraction, error) {
	return loader.LoadRecords[model.Attraction](ctx, s.loader, s.sources.Attractions)
}

// Weather returns the widget report. It never fails.
func (s *Site) Weather(ctx context.Context) weather.Report {
	return s.weather.Report(ctx)
}

// Request carries the per-request inputs a controller may read.
type Request struct {
	Mode      directory.ViewMode
	Width     int
	LastVisit time.Time
	Query     url.Values
	Form      model.Application
	Problems  []string
}

// Render runs the controller for kind. It never returns a nil context;
// failures end in StateErrored with an error block as the body.
func (s *Site) Render(ctx context.Context, kind Kind, req Request) *Context {
	pc := NewContext(kind)
	if err := pc.begin(); err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return pc
	}

	switch kind {
	case KindHome:
		s.home(ctx, pc)
	case KindDirectory:
		s.directory(ctx, pc, req.Mode)
	case KindDiscover:
		s.discover(ctx, pc, req)
	case KindJoin:
		s.join(pc, req)
	case KindThankYou:
		s.thankYou(pc, req)
	default:
		pc.errored(fmt.Errorf("unknown page kind %d", int(kind)), s.renderer.Error(render.ErrorView{Message: "Page not found."}))
	}
	return pc
}

func (s *Site) home(ctx context.Context, pc *Context) {
	weatherHTML, err := s.renderer.Weather(s.Weather(ctx))
	if err != nil {
		log.Printf("Error rendering weather: %v", err)
		weatherHTML = s.renderer.Error(render.ErrorView{Message: "Weather is unavailable."})
	}

	var loadErr error
	var spotlights template.HTML
	members, err := s.Members(ctx)
	if err != nil {
		log.Printf("Error loading home page members: %v", err)
		loadErr = err
		spotlights = s.renderer.Error(render.ErrorView{Message: "Unable to load featured members."})
	} else if spotlights, err = s.renderer.Spotlights(s.picker.Pick(members)); err != nil {
		loadErr = err
		spotlights = s.renderer.Error(render.ErrorView{Message: "Unable to load featured members."})
	}

	body, err := s.renderer.Body("home-body", struct {
		Weather    template.HTML
		Spotlights template.HTML
	}{Weather: weatherHTML, Spotlights: spotlights})
	if err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return
	}
	if loadErr != nil {
		pc.errored(loadErr, body)
		return
	}
	pc.rendered(body)
}

func (s *Site) directory(ctx context.Context, pc *Context, mode directory.ViewMode) {
	if mode == "" {
		mode = directory.ViewGrid
	}
	pc.Mode = mode

	members, err := s.Members(ctx)
	if err != nil {
		log.Printf("Error loading directory members: %v", err)
		failure := s.renderer.Error(render.ErrorView{Message: "Failed to load member data. Please try again later."})
		body, rerr := s.renderer.Body("directory-body", directoryView{Mode: mode, Members: failure})
		pc.errored(err, orFallback(body, rerr, failure))
		return
	}
	log.Printf("Directory members loaded: %d members", len(members))

	body, err := directoryBody(s.renderer, members, mode)
	if err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return
	}
	pc.Members = members
	pc.rendered(body)
}

// orFallback returns body, or fallback when rendering body failed.
func orFallback(body template.HTML, err error, fallback template.HTML) template.HTML {
	if err != nil {
		log.Printf("Error rendering page body, showing error block only: %v", err)
		return fallback
	}
	return body
}

type directoryView struct {
	Mode    directory.ViewMode
	Members template.HTML
}

func directoryBody(r *render.Renderer, members []model.Member, mode directory.ViewMode) (template.HTML, error) {
	cards, err := r.Directory(members, mode)
	if err != nil {
		return "", err
	}
	return r.Body("directory-body", directoryView{Mode: mode, Members: cards})
}

func (s *Site) discover(ctx context.Context, pc *Context, req Request) {
	banner, err := s.renderer.VisitorMessage(visit.Message(req.LastVisit, s.now()))
	if err != nil {
		log.Printf("Error rendering visitor message: %v", err)
	}

	var attractions template.HTML
	list, loadErr := s.Attractions(ctx)
	if loadErr != nil {
		log.Printf("Error loading attractions: %v", loadErr)
		attractions = s.renderer.Error(render.ErrorView{
			Title:   "Unable to Load Attractions",
			Message: "Unable to load attractions data.",
			Hint:    "Please try refreshing the page.",
		})
	} else if attractions, err = s.renderer.Attractions(list, GridClass(req.Width)); err != nil {
		loadErr = err
		attractions = s.renderer.Error(render.ErrorView{Title: "Unable to Load Attractions", Message: "Something went wrong."})
	}

	body, err := s.renderer.Body("discover-body", struct {
		Visitor     template.HTML
		Attractions template.HTML
	}{Visitor: banner, Attractions: attractions})
	if err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return
	}
	if loadErr != nil {
		pc.errored(loadErr, body)
		return
	}
	pc.rendered(body)
}

// GridClass picks the attractions grid from a viewport width hint. No hint
// means the large layout.
func GridClass(width int) string {
	switch {
	case width <= 0:
		return "large-grid"
	case width <= 640:
		return "small-grid"
	case width <= 1024:
		return "medium-grid"
	default:
		return "large-grid"
	}
}

func (s *Site) join(pc *Context, req Request) {
	body, err := s.renderer.Body("join-body", struct {
		Form      model.Application
		Errors    []string
		Tiers     []application.Tier
		Timestamp string
	}{Form: req.Form, Errors: req.Problems, Tiers: application.Tiers, Timestamp: application.Stamp(s.now())})
	if err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return
	}
	pc.rendered(body)
}

func (s *Site) thankYou(pc *Context, req Request) {
	body, err := s.renderer.Body("thankyou-body", struct {
		Fields []application.Field
	}{Fields: application.Summary(req.Query, time.Local)})
	if err != nil {
		pc.errored(err, s.renderer.Error(render.ErrorView{Message: "Something went wrong."}))
		return
	}
	pc.rendered(body)
}
