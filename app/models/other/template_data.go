package other

import (
	"net/url"

	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
)

type UserForTemplate struct {
	ID    string
	Email string
	Role  string
}

// BasePageData carries the fields every rendered page needs. Page-specific
// data structs embed it.
type BasePageData struct {
	Title         string
	IsLoggedIn    bool
	User          *UserForTemplate
	UserID        string
	IsAdminPage   bool
	Breadcrumbs   []breadcrumb.Breadcrumb
	Message       string
	MessageStatus string
	CSRFField     interface{}
	Query         url.Values
}
