package console

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", handler.Index)
	r.POST("/submit", handler.Submit)

	slips := r.Group("/slips/:id")
	{
		slips.POST("/edit", handler.Edit)
		slips.GET("/delete", handler.ConfirmDelete)
		slips.POST("/delete", handler.Delete)
	}
}
