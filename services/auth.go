package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret), jwtTTL: jwtTTL}
}

type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (RegisteredUser, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var errs []string
	if len(username) < 3 {
		errs = append(errs, "Username must be at least 3 characters")
	}
	if !emailPattern.MatchString(email) {
		errs = append(errs, "Valid email is required")
	}
	if len(password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if len(errs) > 0 {
		return RegisteredUser{}, apperr.Validation(strings.Join(errs, "; "))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return RegisteredUser{}, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return RegisteredUser{}, err
	}

	return RegisteredUser{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to callers.
		if apperr.KindOf(err) == apperr.KindNotFound {
			return LoginResult{}, apperr.Unauthorized("Invalid credentials")
		}
		return LoginResult{}, err
	}

	if !user.IsActive {
		return LoginResult{}, apperr.Unauthorized("Account is deactivated")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return LoginResult{}, apperr.Wrap(apperr.KindInternal, "failed to generate token", err)
	}

	return LoginResult{Token: token, Username: user.Username}, nil
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}
