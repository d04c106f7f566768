package handlers

import (
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type StaticHandler struct {
	render *render.Render
}

func NewStaticHandler(r *render.Render) *StaticHandler {
	return &StaticHandler{render: r}
}

func (h *StaticHandler) About(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "About Us",
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "About us", URL: "/about-us"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "about", data)
}
