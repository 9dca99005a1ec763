package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/configs"
	uDTO "schoolinfo_backend/internals/features/users/dto"
	uModel "schoolinfo_backend/internals/features/users/model"
	helper "schoolinfo_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req uDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Password != req.Password2 {
		return helper.FieldError(c, "password", "Passwords do not match.")
	}

	var count int64
	if err := h.DB.Model(&uModel.UserModel{}).
		Where("user_username = ?", req.Username).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}
	if count > 0 {
		return helper.FieldError(c, "username", "A user with that username already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	m := &uModel.UserModel{
		UserUsername: req.Username,
		UserEmail:    req.Email,
		UserPassword: string(hash),
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"data":    uDTO.NewUserResponse(m),
	})
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req uDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m uModel.UserModel
	if err := h.DB.Where("user_username = ?", req.Username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}
	if bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := issueAccessToken(&m)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(uDTO.LoginResponse{
		Access: token,
		User:   uDTO.NewUserResponse(&m),
	})
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var m uModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"data": uDTO.NewUserResponse(&m)})
}

/* ===================== HELPERS ===================== */

func issueAccessToken(m *uModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":  m.UserID.String(),
		"role": m.UserRole,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
