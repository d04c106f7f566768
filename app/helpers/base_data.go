package helpers

import (
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/models/other"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
)

const SiteName = "Devansh Zip Industries"

// GetBaseData merges the ambient request state (session user, flash message
// query params) into the page-specific template data.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = SiteName
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	pageSpecificData["IsLoggedIn"] = false
	pageSpecificData["User"] = nil
	pageSpecificData["UserID"] = ""

	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = &other.UserForTemplate{
				ID:    user.ID,
				Email: user.Email,
				Role:  user.Role,
			}
			pageSpecificData["IsLoggedIn"] = true
			pageSpecificData["UserID"] = user.ID
		}
	}

	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	pageSpecificData["Message"] = r.URL.Query().Get("message")

	return pageSpecificData
}
