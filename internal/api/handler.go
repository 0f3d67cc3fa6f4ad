package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chamber-directory/internal/loader"
	"chamber-directory/internal/page"
	"chamber-directory/internal/render"
)

// ThemeCookie holds the visitor's light/dark preference.
const ThemeCookie = "theme"

// Handler holds shared dependencies for page and API handlers.
type Handler struct {
	site         *page.Site
	defaultTheme string
	lastModified time.Time
	now          func() time.Time
}

// NewHandler creates a new handler. lastModified is shown in every footer.
func NewHandler(site *page.Site, defaultTheme string, lastModified time.Time) *Handler {
	if defaultTheme != "dark" {
		defaultTheme = "light"
	}
	return &Handler{
		site:         site,
		defaultTheme: defaultTheme,
		lastModified: lastModified,
		now:          time.Now,
	}
}

func (h *Handler) theme(c *gin.Context) string {
	v, err := c.Cookie(ThemeCookie)
	if err != nil || (v != "light" && v != "dark") {
		return h.defaultTheme
	}
	return v
}

// writePage wraps a controller's body in the layout. Errored pages still
// render the layout around their error block.
func (h *Handler) writePage(c *gin.Context, pc *page.Context, status int) {
	if pc.State == page.StateErrored {
		status = errorStatus(pc.Err)
	}

	var buf bytes.Buffer
	err := h.site.Renderer().Page(&buf, render.Page{
		Title:        pc.Kind.String(),
		Heading:      pc.Kind.Heading(),
		Path:         pc.Kind.Path(),
		Theme:        h.theme(c),
		Nav:          render.Navigation(pc.Kind.Path()),
		Body:         pc.Body,
		Year:         h.now().Year(),
		LastModified: h.lastModified.Format("01/02/2006 15:04:05"),
	})
	if err != nil {
		log.Printf("Error rendering %s page: %v", pc.Kind, err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// errorStatus maps a load failure to a response code. Upstream failures are
// the gateway's fault, anything else is ours.
func errorStatus(err error) int {
	var fe *loader.FetchError
	if errors.As(err, &fe) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
