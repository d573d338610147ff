package attachments

import (
	"context"
	"net/http"

	"comphq/dto"
	"comphq/middleware"
	"comphq/model"
	"comphq/services/attachment"

	"github.com/gin-gonic/gin"
)

// AttachmentService is what the controller needs from the attachment layer.
type AttachmentService interface {
	CreateAttachment(ctx context.Context, in attachment.CreateAttachmentInput) attachment.Result
	DeleteAttachment(ctx context.Context, attachmentID, orgID string) attachment.Result
	GetAttachmentAccessURL(ctx context.Context, attachmentID, orgID string) attachment.Result
}

func AttachmentsController(router *gin.Engine, svc AttachmentService) {
	routes := router.Group("/attachment", middleware.AccessTokenMiddleware())
	{
		routes.POST("/create", func(c *gin.Context) {
			CreateAttachment(c, svc)
		})
		routes.DELETE("/delete/:attachmentid", func(c *gin.Context) {
			DeleteAttachment(c, svc)
		})
		routes.GET("/url/:attachmentid", func(c *gin.Context) {
			GetAttachmentURL(c, svc)
		})
	}
}

// CreateAttachment records an attachment the upload flow already stored.
func CreateAttachment(c *gin.Context, svc AttachmentService) {
	orgID := c.MustGet("orgId").(string)
	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res := svc.CreateAttachment(c.Request.Context(), attachment.CreateAttachmentInput{
		OrganizationID: orgID,
		EntityType:     model.AttachmentEntityType(req.EntityType),
		EntityID:       req.EntityID,
		FileName:       req.Filename,
		FileType:       req.Filetype,
		URL:            req.URL,
	})
	c.JSON(statusFor(res), res)
}

func DeleteAttachment(c *gin.Context, svc AttachmentService) {
	orgID := c.MustGet("orgId").(string)
	res := svc.DeleteAttachment(c.Request.Context(), c.Param("attachmentid"), orgID)
	c.JSON(statusFor(res), res)
}

func GetAttachmentURL(c *gin.Context, svc AttachmentService) {
	orgID := c.MustGet("orgId").(string)
	res := svc.GetAttachmentAccessURL(c.Request.Context(), c.Param("attachmentid"), orgID)
	c.JSON(statusFor(res), res)
}

func statusFor(res attachment.Result) int {
	if res.OK {
		return http.StatusOK
	}
	switch res.Reason {
	case attachment.ReasonNotAuthorized:
		return http.StatusUnauthorized
	case attachment.ReasonNotFoundOrDenied:
		return http.StatusNotFound
	case attachment.ReasonUnsupportedEntityType, attachment.ReasonMalformedReference:
		return http.StatusUnprocessableEntity
	case attachment.ReasonStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
