package controller

import (
	"flou-backend/internal/dto"
	"flou-backend/internal/pkg/serverutils"
	"flou-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWellnessController interface {
	RegisterRoutes(r fiber.Router)
	Checkin(ctx *fiber.Ctx) error
	Energy(ctx *fiber.Ctx) error
	Motivation(ctx *fiber.Ctx) error
	CompleteExercise(ctx *fiber.Ctx) error
}

type wellnessController struct {
	service        service.IWellnessService
	profileService service.IProfileService
}

func NewWellnessController(svc service.IWellnessService, profileSvc service.IProfileService) IWellnessController {
	return &wellnessController{service: svc, profileService: profileSvc}
}

func (c *wellnessController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wellness/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/check-in", c.Checkin)
	h.Post("/energy", c.Energy)
	h.Get("/motivation", c.Motivation)
	h.Post("/exercises/complete", c.CompleteExercise)
}

func (c *wellnessController) Checkin(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CheckinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Checkin(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record check-in", res))
}

func (c *wellnessController) Energy(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.EnergyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	lang := c.profileService.ResolveLanguage(ctx.Context(), userId, ctx.Get("Accept-Language"))
	res, err := c.service.Energy(ctx.Context(), userId, &req, lang)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get exercise", res))
}

func (c *wellnessController) Motivation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	lang := c.profileService.ResolveLanguage(ctx.Context(), userId, ctx.Get("Accept-Language"))
	res, err := c.service.Motivation(ctx.Context(), lang)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get motivation", res))
}

func (c *wellnessController) CompleteExercise(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CompleteExerciseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CompleteExercise(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete exercise", res))
}