package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"chamber-directory/internal/application"
	"chamber-directory/internal/directory"
	"chamber-directory/internal/model"
	"chamber-directory/internal/page"
	"chamber-directory/internal/visit"
)

const visitCookieMaxAge = 365 * 24 * 60 * 60

// GetHome handles GET /.
func (h *Handler) GetHome(c *gin.Context) {
	pc := h.site.Render(c.Request.Context(), page.KindHome, page.Request{})
	h.writePage(c, pc, http.StatusOK)
}

// GetDirectory handles GET /directory?view=grid|list.
func (h *Handler) GetDirectory(c *gin.Context) {
	mode := directory.ParseViewMode(c.Query("view"))
	pc := h.site.Render(c.Request.Context(), page.KindDirectory, page.Request{Mode: mode})
	h.writePage(c, pc, http.StatusOK)
}

// GetDiscover handles GET /discover?width=N and refreshes the last-visit cookie.
func (h *Handler) GetDiscover(c *gin.Context) {
	width, _ := strconv.Atoi(c.Query("width"))

	var last time.Time
	if v, err := c.Cookie(visit.CookieName); err == nil {
		last = visit.ParseCookie(v)
	}

	pc := h.site.Render(c.Request.Context(), page.KindDiscover, page.Request{Width: width, LastVisit: last})
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(visit.CookieName, visit.FormatCookie(h.now()), visitCookieMaxAge, "/", "", false, true)
	h.writePage(c, pc, http.StatusOK)
}

// GetJoin handles GET /join.
func (h *Handler) GetJoin(c *gin.Context) {
	pc := h.site.Render(c.Request.Context(), page.KindJoin, page.Request{})
	h.writePage(c, pc, http.StatusOK)
}

// PostJoin handles POST /join. A valid application redirects to the
// thank-you page with the fields in the query string; an invalid one
// re-renders the form with the problems listed.
func (h *Handler) PostJoin(c *gin.Context) {
	var app model.Application
	var problems []string
	if err := c.ShouldBind(&app); err != nil {
		problems = application.BindingProblems(err)
	}
	problems = append(problems, application.Validate(app)...)

	if len(problems) > 0 {
		pc := h.site.Render(c.Request.Context(), page.KindJoin, page.Request{Form: app, Problems: problems})
		h.writePage(c, pc, http.StatusUnprocessableEntity)
		return
	}

	if app.Timestamp == "" {
		app.Timestamp = application.Stamp(h.now())
	}
	c.Redirect(http.StatusSeeOther, page.KindThankYou.Path()+"?"+application.QueryString(app))
}

// GetThankYou handles GET /thankyou.
func (h *Handler) GetThankYou(c *gin.Context) {
	pc := h.site.Render(c.Request.Context(), page.KindThankYou, page.Request{Query: c.Request.URL.Query()})
	h.writePage(c, pc, http.StatusOK)
}

// PostTheme handles POST /theme: flips the theme cookie and sends the
// visitor back to the page they came from.
func (h *Handler) PostTheme(c *gin.Context) {
	next := "dark"
	if h.theme(c) == "dark" {
		next = "light"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ThemeCookie, next, visitCookieMaxAge, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// safeReturn only allows local absolute paths.
func safeReturn(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
