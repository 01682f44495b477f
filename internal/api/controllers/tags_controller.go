package controllers

import (
	"github.com/gin-gonic/gin"

	"shinkai/internal/services"
	"shinkai/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (tc *TagController) ListTagPriorities(c *gin.Context) {
	tags, err := tc.tagService.ListTagPriorities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tags, "Fetched tag priorities successfully")
}
