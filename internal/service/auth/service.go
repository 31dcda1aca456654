package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/auth"
	"github.com/heartmarshall/tringgo-backend/internal/config"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertTravelerProfile(ctx context.Context, p domain.TravelerProfile) (*domain.TravelerProfile, error)
	UpsertAdminProfile(ctx context.Context, p domain.AdminProfile) (*domain.AdminProfile, error)
	CreateLoginLog(ctx context.Context, l domain.LoginLog) error
}

// areaRepo resolves area references given at signup.
type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
}

// merchantRepo creates the business profile of a MERCHANT account.
type merchantRepo interface {
	Create(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error)
}

// placeRepo lists a new merchant in the directory.
type placeRepo interface {
	UpsertForMerchant(ctx context.Context, merchantID uuid.UUID, proj domain.PlaceProjection) (uuid.UUID, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// authMethodRepo links accounts to external identity providers.
type authMethodRepo interface {
	GetByProvider(ctx context.Context, provider domain.LoginMethod, providerID string) (*domain.AuthMethod, error)
	Create(ctx context.Context, m domain.AuthMethod) (*domain.AuthMethod, error)
}

// identityVerifier checks a Google ID token.
type identityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.OAuthIdentity, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (domain.Caller, error)
	GenerateRefreshToken() (string, string, error)
}

// Service implements signup, login and token operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	areas       areaRepo
	merchants   merchantRepo
	places      placeRepo
	tokens      tokenRepo
	authMethods authMethodRepo
	tx          txManager
	jwt         jwtManager
	google      identityVerifier
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance. google may be nil, which
// disables Google sign-in.
func NewService(
	logger *slog.Logger,
	users userRepo,
	areas areaRepo,
	merchants merchantRepo,
	places placeRepo,
	tokens tokenRepo,
	authMethods authMethodRepo,
	tx txManager,
	jwt jwtManager,
	google identityVerifier,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		areas:       areas,
		merchants:   merchants,
		places:      places,
		tokens:      tokens,
		authMethods: authMethods,
		tx:          tx,
		jwt:         jwt,
		google:      google,
		cfg:         cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
