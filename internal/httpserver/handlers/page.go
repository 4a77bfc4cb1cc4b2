package handlers

import (
	"html/template"
	"net/http"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/view"
)

// pageTmpl is the single presenter document. The client script drives the
// overlays and the player through the JSON API; the server renders the SEO
// head and the initial dataset so the page is meaningful without scripting.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta name="keywords" content="{{.Keywords}}">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
{{if .ActiveThumb}}<meta property="og:image" content="{{.ActiveThumb}}">{{end}}
</head>
<body data-view="{{.View}}">
<main id="player">
{{if .PlaybackURL}}<iframe src="{{.PlaybackURL}}" allow="autoplay; fullscreen" allowfullscreen></iframe>{{end}}
</main>
<nav id="channels">
{{range .Entries}}<button data-id="{{.ID}}" title="{{.Title}}"><img src="{{.ThumbnailURL}}" alt="{{.Title}}"></button>
{{end}}</nav>
<script src="/static/app.js" defer></script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Keywords    string
	View        view.State
	Entries     []domain.Entry
	ActiveThumb string
	PlaybackURL string
}

// Page renders the presenter for every public path. The reserved admin
// marker forces the admin view; any other unknown path is a 404.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		current := d.Views.Observe(path)
		if current != view.Admin {
			target, ok := view.StateForPath(path)
			if !ok {
				http.NotFound(w, r)
				return
			}
			current, _ = d.Views.Navigate(target)
		}

		profile := d.Profile.Get()
		data := pageData{
			Title:       profile.SEOTitle,
			Description: profile.SEODescription,
			Keywords:    profile.SEOKeywords,
			View:        current,
			Entries:     d.Items.All(),
		}
		if active, ok := d.Items.Active(); ok {
			data.ActiveThumb = active.ThumbnailURL
			if active.Kind == domain.KindVideo {
				// Previews start muted so autoplay is allowed.
				opts := domain.DefaultPlayback()
				opts.Muted = true
				data.PlaybackURL = domain.BuildPlaybackURL(active.SourceURL, opts)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			d.Logger.Error("page render failed", logger.Error(err))
		}
	}
}
