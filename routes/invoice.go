package routes

import (
	"github.com/gin-gonic/gin"

	invoicecontroller "github.com/dh139/cafef/controllers/invoice"
	uploadcontroller "github.com/dh139/cafef/controllers/upload"
)

// SetupInvoiceRoutes registers the checkout pipeline endpoints.
func SetupInvoiceRoutes(r *gin.Engine, deps Deps) {
	r.POST("/save-invoice", invoicecontroller.SaveInvoice(deps.Renderer, deps.Invoices))
	r.GET("/share-link", invoicecontroller.ShareLink(deps.Invoices))
}

// SetupUploadRoutes registers the generic file upload endpoint.
func SetupUploadRoutes(r *gin.Engine, deps Deps) {
	r.POST("/upload", uploadcontroller.HandleFileUpload(deps.UploadsDir, deps.PublicBaseURL))
}
