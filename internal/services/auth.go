package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/apierr"
	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/repos"
	"github.com/yungbote/devconnector-backend/internal/requestdata"
	"github.com/yungbote/devconnector-backend/internal/types"
	"github.com/yungbote/devconnector-backend/internal/utils"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (string, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*types.User, error)
	// SetContextFromToken verifies the token and attaches the principal to
	// the context. Verification is stateless: the signing secret is the only
	// thing trusted, no user/token table is consulted.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (string, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))

	var fields []apierr.FieldError
	if user.Name == "" {
		fields = append(fields, apierr.FieldError{Msg: "Name is required", Param: "name"})
	}
	if user.Email == "" {
		fields = append(fields, apierr.FieldError{Msg: "Please include a valid email", Param: "email"})
	}
	if len(user.Password) < 6 {
		fields = append(fields, apierr.FieldError{Msg: "Please enter a password with 6 or more characters", Param: "password"})
	}
	if len(fields) > 0 {
		return "", apierr.NewValidation(fields...)
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return "", fmt.Errorf("Failed to check user email: %w", err)
	}
	if exists {
		return "", apierr.NewValidation(apierr.FieldError{Msg: "User already exists", Param: "email"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("Failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	user.ID = uuid.New()
	user.AvatarURL = utils.GravatarURL(user.Email)

	if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
		return "", fmt.Errorf("Failed to create user: %w", err)
	}
	return as.generateAccessToken(user)
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	var fields []apierr.FieldError
	if email == "" {
		fields = append(fields, apierr.FieldError{Msg: "Please include a valid email", Param: "email"})
	}
	if password == "" {
		fields = append(fields, apierr.FieldError{Msg: "Password is required", Param: "password"})
	}
	if len(fields) > 0 {
		return "", apierr.NewValidation(fields...)
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", fmt.Errorf("Error retrieving user by email: %w", err)
	}
	if len(users) == 0 {
		return "", apierr.New(http.StatusBadRequest, "Invalid Credentials", apierr.ErrInvalidCredentials)
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apierr.New(http.StatusBadRequest, "Invalid Credentials", apierr.ErrInvalidCredentials)
	}
	return as.generateAccessToken(user)
}

func (as *authService) CurrentUser(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "User not found", apierr.ErrNotFound)
	}
	return users[0], nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("Failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("Invalid or expired JWT token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("Invalid user id in token: %w", err)
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}
	ctx = requestdata.WithRequestData(ctx, rd)
	return ctx, nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
