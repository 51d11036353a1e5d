// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// SiteName is shown in the page header and title.
const SiteName = "Ukrainian Community Connect"

// NavItem is one entry of the main navigation.
type NavItem struct {
	Path  string
	Label string
}

var mainNav = []NavItem{
	{"/", "Home"},
	{"/translator", "Translator"},
	{"/lessons", "Lessons"},
	{"/community", "Community"},
	{"/heritage", "Heritage"},
	{"/events", "Events"},
	{"/resources", "Resources"},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string
	Nav      []NavItem

	IsAdmin bool

	Title       string
	BackURL     string
	CurrentPath string

	// Empty outside CSRF-protected routes.
	CSRFToken string

	Flashes []string
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName,
		Nav:         mainNav,
		IsAdmin:     auth.IsAdminCtx(r),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// WithFlashes attaches messages popped from the session.
func (vm BaseVM) WithFlashes(msgs []string) BaseVM {
	vm.Flashes = msgs
	return vm
}

// Active reports whether path is the current section, for nav highlighting.
func (vm BaseVM) Active(path string) bool {
	if path == "/" {
		return vm.CurrentPath == "/"
	}
	return vm.CurrentPath == path || len(vm.CurrentPath) > len(path) && vm.CurrentPath[:len(path)+1] == path+"/"
}
