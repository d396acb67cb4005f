package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dh139/cafef/invoice"
	"github.com/dh139/cafef/store"
)

// Deps carries everything the route handlers need. Each handler closes over
// exactly the pieces it uses.
type Deps struct {
	Catalog       *store.Catalog
	Renderer      *invoice.Renderer
	Invoices      *invoice.Store
	ImagesDir     string
	UploadsDir    string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point that wires up the menu, invoice and
// upload route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupMenuRoutes(r, deps)
	SetupInvoiceRoutes(r, deps)
	SetupUploadRoutes(r, deps)
}
