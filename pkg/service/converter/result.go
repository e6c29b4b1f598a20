package converter

import (
	"context"
	"errors"

	"github.com/amirasaad/fxquery/pkg/conversion"
)

// Notice titles shown when a query cannot be answered.
const (
	NoticeMissingAPIKey = "Currency Converter: please set your API key in plugin settings"
	NoticeRatesFailed   = "Currency Converter: failed to fetch exchange rates. Check your API key."
)

const (
	defaultIcon  = "images/app.png"
	defaultScore = 100

	copyActionName = "Copy result"
)

// ErrNoAction is returned when activating a result that has no default action.
var ErrNoAction = errors.New("result has no action")

// Kind tells a host how to render a Result.
type Kind string

const (
	KindConversion Kind = "conversion"
	KindNotice     Kind = "notice"
)

// Clipboard is the host capability a result's default action needs.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Action describes something the host can do with a result.
type Action struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// Result is one row a host displays.
type Result struct {
	Kind     Kind     `json:"kind"`
	Title    string   `json:"title"`
	SubTitle string   `json:"subtitle,omitempty"`
	Icon     string   `json:"icon"`
	Score    int      `json:"score"`
	CopyText string   `json:"copy_text,omitempty"`
	Actions  []Action `json:"actions"`

	Record *conversion.Record `json:"-"`
}

func newConversionResult(r conversion.Record) Result {
	return Result{
		Kind:     KindConversion,
		Title:    r.Title,
		SubTitle: r.Subtitle,
		Icon:     defaultIcon,
		Score:    defaultScore,
		CopyText: r.CopyText(),
		Actions:  []Action{{Name: copyActionName, IsDefault: true}},
		Record:   &r,
	}
}

func newNotice(title string) Result {
	return Result{
		Kind:    KindNotice,
		Title:   title,
		Icon:    defaultIcon,
		Score:   defaultScore,
		Actions: []Action{},
	}
}

// DefaultAction returns the action run when the user picks the result.
func (r Result) DefaultAction() (Action, bool) {
	for _, a := range r.Actions {
		if a.IsDefault {
			return a, true
		}
	}
	return Action{}, false
}

// Activate runs the default action using the host's clipboard.
func (r Result) Activate(ctx context.Context, clipboard Clipboard) error {
	if _, ok := r.DefaultAction(); !ok {
		return ErrNoAction
	}
	return clipboard.Copy(ctx, r.CopyText)
}
