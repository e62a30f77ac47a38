package lookup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/document-type/list", handler.ListDocumentTypes)
	r.GET("/employee-type/list", handler.ListEmployeeTypes)
}
