package page

import (
	"fmt"
	"html/template"

	"chamber-directory/internal/directory"
	"chamber-directory/internal/model"
	"chamber-directory/internal/render"
)

// State is the per-render lifecycle: Idle → Loading → Rendered | Errored.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateErrored:
		return "errored"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Context is owned by one request. It carries the loaded records so a view
// switch can re-render without refetching.
type Context struct {
	Kind    Kind
	State   State
	Mode    directory.ViewMode
	Members []model.Member
	Body    template.HTML
	Err     error
}

// NewContext starts an idle context for kind.
func NewContext(kind Kind) *Context {
	return &Context{Kind: kind, State: StateIdle, Mode: directory.ViewGrid}
}

func (c *Context) begin() error {
	if c.State != StateIdle {
		return fmt.Errorf("page %s: cannot load from state %s", c.Kind, c.State)
	}
	c.State = StateLoading
	return nil
}

func (c *Context) rendered(body template.HTML) {
	c.State = StateRendered
	c.Body = body
}

func (c *Context) errored(err error, body template.HTML) {
	c.State = StateErrored
	c.Err = err
	c.Body = body
}

// SwitchView re-renders the held members in mode. Only a rendered directory
// page can switch; the records are not refetched.
func (c *Context) SwitchView(r *render.Renderer, mode directory.ViewMode) error {
	if c.Kind != KindDirectory || c.State != StateRendered {
		return fmt.Errorf("page %s: cannot switch view from state %s", c.Kind, c.State)
	}
	body, err := directoryBody(r, c.Members, mode)
	if err != nil {
		return err
	}
	c.Mode = mode
	c.Body = body
	return nil
}
