package application

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"chamber-directory/internal/model"
)

var titleRe = regexp.MustCompile(`^[A-Za-z\s\-]{7,}$`)

// TitleError is shown when the optional organizational title is malformed.
const TitleError = "Title must be at least 7 characters and contain only letters, spaces, and hyphens"

// Validate checks what binding tags cannot express. Required fields are
// enforced by gin's binding on model.Application.
func Validate(app model.Application) []string {
	var problems []string
	if app.Title != "" && !titleRe.MatchString(app.Title) {
		problems = append(problems, TitleError)
	}
	return problems
}

// BindingProblems turns a binding error into user-facing messages.
func BindingProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"The form could not be read. Please try again."}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldLabels[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required.", field))
		case "email":
			problems = append(problems, fmt.Sprintf("%s must be a valid email address.", field))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of the listed options.", field))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid.", field))
		}
	}
	return problems
}

var fieldLabels = map[string]string{
	"FirstName":       "First Name",
	"LastName":        "Last Name",
	"Email":           "Email",
	"Phone":           "Phone",
	"BusinessName":    "Business Name",
	"MembershipLevel": "Membership Level",
}

// QueryString encodes an application for the confirmation redirect.
func QueryString(app model.Application) string {
	v := url.Values{}
	set := func(k, s string) {
		if s = strings.TrimSpace(s); s != "" {
			v.Set(k, s)
		}
	}
	set("firstName", app.FirstName)
	set("lastName", app.LastName)
	set("email", app.Email)
	set("phone", app.Phone)
	set("businessName", app.BusinessName)
	set("membershipLevel", app.MembershipLevel)
	set("timestamp", app.Timestamp)
	return v.Encode()
}

// Field is one labelled line of the confirmation summary.
type Field struct {
	Label string
	Value string
}

// Summary builds the confirmation lines from query values. Missing values
// read "Not provided".
func Summary(q url.Values, loc *time.Location) []Field {
	orDefault := func(k string) string {
		if s := strings.TrimSpace(q.Get(k)); s != "" {
			return s
		}
		return "Not provided"
	}
	return []Field{
		{Label: "First Name", Value: orDefault("firstName")},
		{Label: "Last Name", Value: orDefault("lastName")},
		{Label: "Email", Value: orDefault("email")},
		{Label: "Phone", Value: orDefault("phone")},
		{Label: "Business Name", Value: orDefault("businessName")},
		{Label: "Membership Level", Value: LevelSummary(q.Get("membershipLevel"))},
		{Label: "Application Date", Value: FormatTimestamp(q.Get("timestamp"), loc)},
	}
}

// FormatTimestamp renders an RFC3339 form timestamp for display.
func FormatTimestamp(raw string, loc *time.Location) string {
	if raw == "" {
		return "Not available"
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "Not available"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("January 2, 2006 at 03:04 PM")
}

// Stamp returns the hidden timestamp value for a freshly rendered form.
func Stamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
