package controllers

import (
	"errors"
	"strings"
	"time"

	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services"
	"Backend-VentureHR/src/utils"

	"github.com/gofiber/fiber/v2"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// Register - สมัครบัญชีผู้ใช้ใหม่
func Register(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if user.Email == "" || user.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}
	if !user.Role.IsValid() {
		user.Role = models.RoleEmployee
	}

	if err := services.RegisterUser(&user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
				"code":  "EMAIL_TAKEN",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration failed",
			"code":  "REGISTER_ERROR",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login - ตรวจ credentials แล้วออก access + refresh token
func Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	user, emp, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, services.ErrAccountInactive) {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "INVALID_CREDENTIALS",
		})
	}

	employeeCode := ""
	if emp != nil {
		employeeCode = emp.Code
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, employeeCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store refresh token",
			"code":  "TOKEN_ERROR",
		})
	}

	resp := fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"role":         user.Role,
		"message":      "Login successful",
	}
	if employeeCode != "" {
		resp["employeeCode"] = employeeCode
	}
	return c.JSON(resp)
}

// Refresh - แลก refresh token เป็น access token ใหม่
func Refresh(c *fiber.Ctx) error {
	type RefreshRequest struct {
		UserID       string `json:"userId"`
		Email        string `json:"email"`
		RefreshToken string `json:"refreshToken"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId and refreshToken are required",
			"code":  "INVALID_REQUEST",
		})
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
			"code":  "INVALID_TOKEN",
		})
	}

	user, emp, err := services.LookupUser(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
			"code":  "INVALID_TOKEN",
		})
	}

	employeeCode := ""
	if emp != nil {
		employeeCode = emp.Code
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, employeeCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

// Logout - เพิกถอน access token และลบ refresh token
func Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseJWT(tokenStr)
	if err == nil {
		_ = utils.DeleteRefreshToken(claims.UserID)
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			_ = utils.BlacklistToken(tokenStr, remaining)
		}
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
