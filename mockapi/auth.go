package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"coursehub/config"
	"coursehub/models"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// Login looks the user up by email and issues a token
func Login(c *fiber.Ctx) error {
	var reqData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user UserRow
	if err := Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := GenerateJWT(user.UserID, user.Name, user.Role, user.Email)
	if err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return JsonSuccess(c, fiber.Map{
		"user": models.AuthUser{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
		},
		"token": token,
	})
}

// Signup creates a user; students and instructors get their profile row.
// New accounts wait for admin approval.
func Signup(c *fiber.Ctx) error {
	var reqData struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.Name == "" || reqData.Email == "" || reqData.Password == "" {
		return JsonError(c, fiber.StatusBadRequest, "Name, email, and password are required")
	}
	if reqData.Role == "" {
		reqData.Role = models.RoleStudent
	}

	var existing int64
	Database.Db.Model(&UserRow{}).Where("email = ?", reqData.Email).Count(&existing)
	if existing > 0 {
		return JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	user := UserRow{
		UserID:   uuid.NewString(),
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
		Approved: false,
	}
	if err := Database.Db.Create(&user).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	switch user.Role {
	case models.RoleStudent:
		Database.Db.Create(&StudentRow{UserID: user.UserID})
	case models.RoleInstructor:
		Database.Db.Create(&InstructorRow{UserID: user.UserID})
	}

	return JsonSuccess(c, fiber.Map{
		"message": "User created successfully",
		"user": models.AuthUser{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
		},
	})
}

// Health is the liveness endpoint.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "API is running",
	})
}
