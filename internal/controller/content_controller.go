package controller

import (
	"flou-backend/internal/pkg/serverutils"
	"flou-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	GetContent(ctx *fiber.Ctx) error
}

type contentController struct {
	service        service.IContentService
	profileService service.IProfileService
}

func NewContentController(svc service.IContentService, profileSvc service.IProfileService) IContentController {
	return &contentController{service: svc, profileService: profileSvc}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/info/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/content", c.GetContent)
}

func (c *contentController) GetContent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	lang := c.profileService.ResolveLanguage(ctx.Context(), userId, ctx.Get("Accept-Language"))
	res, err := c.service.GetContent(ctx.Context(), lang)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get content", res))
}