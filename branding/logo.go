// Package branding renders the decorative Sporthub logo.
package branding

import (
	"html/template"
	"io"
)

// LogoProps controls the logo text and the accent underline color.
type LogoProps struct {
	Prefix      string
	Accent      string
	AccentColor template.CSS
}

func DefaultLogo() LogoProps {
	return LogoProps{
		Prefix:      "Sport",
		Accent:      "hub",
		AccentColor: "#ff9000",
	}
}

// The underline sits behind the accent text (z-index -1), 2px below the baseline.
var logoTemplate = template.Must(template.New("logo").Parse(
	`<span class="logo" style="display:inline-flex;align-items:center;position:relative">` +
		`<span style="font-size:1.25rem;font-weight:bold">{{.Prefix}}` +
		`<span style="position:relative">{{.Accent}}` +
		`<span aria-hidden="true" style="position:absolute;bottom:-2px;left:0;width:100%;height:4px;background-color:{{.AccentColor}};z-index:-1"></span>` +
		`</span></span></span>`,
))

// RenderLogo writes the logo markup to w.
func RenderLogo(w io.Writer, props LogoProps) error {
	return logoTemplate.Execute(w, props)
}
