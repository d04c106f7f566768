package renderer

import (
	"html/template"

	"github.com/unrolled/render"
)

func New() *render.Render {
	return render.New(render.Options{
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"firstImage": func(urls []string) string {
					if len(urls) == 0 {
						return ""
					}
					return urls[0]
				},
			},
		},
	})
}
