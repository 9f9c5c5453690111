package helper

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"carbon_zero/config"
	"carbon_zero/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AccessTokenTTL = 60 * time.Minute

func jwtSecret() ([]byte, error) {
	s := config.Config("JWT_SECRET")
	if s == "" {
		return nil, config.ErrMissingJWTSecret
	}
	return []byte(s), nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = strconv.FormatUint(uint64(tokenClaim.UserId), 10)
	claims["email"] = tokenClaim.Email
	claims["userTypeId"] = tokenClaim.UserTypeId
	claims["exp"] = time.Now().Add(AccessTokenTTL).Unix()

	return token.SignedString(secret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret()
	})
}

// ClaimFromToken reads the user id and email out of a parsed token.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return model.TokenClaim{}, err
	}
	userId, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || userId == 0 {
		return model.TokenClaim{}, errors.New("invalid subject in token")
	}
	email, _ := claims["email"].(string)
	userTypeId, _ := claims["userTypeId"].(float64)

	return model.TokenClaim{
		UserId:     uint(userId),
		Email:      email,
		UserTypeId: uint(userTypeId),
	}, nil
}

// GetTokenClaim returns the claim stored by the auth middlewares.
func GetTokenClaim(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals("user").(model.TokenClaim)
	return claim, ok
}
