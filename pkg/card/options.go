package card

// Layout variants for the activity card.
const (
	LayoutDefault  = "default"
	LayoutVertical = "vertical"
)

const (
	defaultWidth  = 480
	minWidth      = 320
	maxWidth      = 1000
	defaultRadius = 4.5
)

// Options controls how a card is rendered. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	Type         string  `json:"type"`
	Theme        string  `json:"theme"`
	ShowBorder   bool    `json:"show_border"`
	BorderRadius float64 `json:"border_radius"`
	HideStats    bool    `json:"hide_stats"`
	HideProjects bool    `json:"hide_projects"`
	Width        int     `json:"width"`
	Layout       string  `json:"layout"`
}

// DefaultOptions returns the option set used when a request specifies
// nothing: full activity card, default theme, border on.
func DefaultOptions() Options {
	return Options{
		Type:         TypeActivity,
		Theme:        DefaultTheme,
		ShowBorder:   true,
		BorderRadius: defaultRadius,
		Width:        defaultWidth,
	}
}

// normalize fills unset fields and clamps out-of-range values. It is
// idempotent.
func (o *Options) normalize() {
	if o.Type == "" {
		o.Type = TypeActivity
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.Width < minWidth {
		o.Width = minWidth
	}
	if o.Width > maxWidth {
		o.Width = maxWidth
	}
	if o.BorderRadius < 0 {
		o.BorderRadius = 0
	}
	if o.Layout == "" {
		o.Layout = LayoutDefault
	}
}
