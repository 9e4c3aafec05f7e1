// Package web holds the embedded HTML pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Page template names.
const (
	PageAddEmployee    = "addemp.html"
	PageAddedEmployee  = "addempoutput.html"
	PageAbout          = "about.html"
	PageGetEmployee    = "getemp.html"
	PageEmployeeOutput = "getempoutput.html"
	PageUnavailable    = "unavailable.html"
	PageError          = "error.html"
)

// Templates parses every embedded page.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
