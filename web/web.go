// Package web holds the HTML views and the echo renderer that serves them.
package web

import "embed"

// Templates contains layouts, partials and pages under templates/.
//
//go:embed templates
var Templates embed.FS
