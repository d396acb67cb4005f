package routes

import (
	"github.com/gin-gonic/gin"

	menucontroller "github.com/dh139/cafef/controllers/menu"
)

// SetupMenuRoutes registers the admin-facing menu catalog endpoints.
func SetupMenuRoutes(r *gin.Engine, deps Deps) {
	menu := r.Group("/menu")
	{
		menu.GET("/items", menucontroller.GetMenuItems(deps.Catalog))
		menu.POST("/items", menucontroller.CreateMenuItem(deps.Catalog, deps.ImagesDir))
		menu.PUT("/items/:id", menucontroller.UpdateMenuItem(deps.Catalog, deps.ImagesDir))
	}
}
