package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/configs"
	AuthModel "github.com/rodrigospisila/parish-backend/internals/features/users/auth/model"
	UserModel "github.com/rodrigospisila/parish-backend/internals/features/users/users/model"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IssueTokenPair signs an access token carrying the user's role and scope
// ids, signs a refresh token, and persists the refresh token row.
func IssueTokenPair(db *gorm.DB, user *UserModel.UserModel) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(configs.JWTExpiresIn).Unix(),
	}
	if user.DioceseID != nil {
		accessClaims["diocese_id"] = user.DioceseID.String()
	}
	if user.ParishID != nil {
		accessClaims["parish_id"] = user.ParishID.String()
	}
	if user.CommunityID != nil {
		accessClaims["community_id"] = user.CommunityID.String()
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshExpiry := now.Add(configs.JWTRefreshTTL)
	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": refreshExpiry.Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	row := AuthModel.RefreshTokenModel{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExpiry,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyRefreshToken checks the signature and expiry and returns the user id.
func VerifyRefreshToken(tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return uuid.Nil, fmt.Errorf("refresh token has no subject")
	}
	return uuid.Parse(sub)
}
