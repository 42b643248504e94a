package render

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/rohits-web03/roboshow/internal/models"
)

const appName = "RoboShow"

// Chrome is what every full page needs besides its body.
type Chrome struct {
	Title  string
	Active string // nav entry to highlight: "home" or "upload"
	User   *models.Session
}

// PageTitle appends the site name unless title already ends with it.
func PageTitle(title string) string {
	switch {
	case title == "":
		return appName
	case strings.HasSuffix(title, "| "+appName):
		return title
	default:
		return title + " | " + appName
	}
}

// Layout wraps body in the document shell and navigation.
func Layout(c Chrome, body templ.Component) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.rawf(`<title>%s</title>`, esc(PageTitle(c.Title)))
		hw.raw(`</head><body>`)
		hw.component(Nav(c))
		hw.raw(`<main class="container">`)
		hw.component(body)
		hw.raw(`</main>`)
		hw.raw(`<footer class="footer"><p>RoboShow · Student robotics showcase</p></footer>`)
		hw.raw(`</body></html>`)
	})
}

func navLink(hw *htmlWriter, href, label string, active bool) {
	class := ""
	if active {
		class = ` class="active"`
	}
	hw.rawf(`<li><a href="%s"%s>%s</a></li>`, href, class, esc(label))
}

// Nav is the top bar. Signed-in users get their name, My Projects and
// Logout; everyone else gets Login and Sign Up.
func Nav(c Chrome) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<nav class="navbar"><a class="navbar-brand" href="/">🤖 RoboShow</a><ul class="navbar-menu">`)
		navLink(hw, "/", "Home", c.Active == "home")
		navLink(hw, "/upload", "Upload Project", c.Active == "upload")
		if c.User != nil {
			hw.raw(`<li class="auth-item user-menu-item"><div class="user-menu">`)
			hw.rawf(`<span class="user-menu-button">%s</span>`, esc(c.User.Name))
			hw.raw(`<div class="user-dropdown"><a href="/my-projects">My Projects</a>`)
			hw.raw(`<form method="post" action="/logout"><button type="submit" class="link-button">Logout</button></form>`)
			hw.raw(`</div></div></li>`)
		} else {
			hw.raw(`<li class="auth-item"><a href="/login" class="btn btn-outline btn-sm">Login</a></li>`)
			hw.raw(`<li class="auth-item"><a href="/signup" class="btn btn-primary btn-sm">Sign Up</a></li>`)
		}
		hw.raw(`</ul></nav>`)
	})
}
