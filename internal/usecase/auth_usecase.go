package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"medical-escrow-ledger/config"
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrBadIssuerSecret = errors.New("issuer secret does not match")

// AuthUsecase mints and revokes caller-identity tokens. The host environment
// owns identity; this surface only turns a host-vouched address into a
// bearer token the middleware can verify and revoke.
type AuthUsecase interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	RevokeToken(ctx context.Context) error
}

type authUsecase struct {
	log         *logrus.Logger
	cfg         config.HostConfig
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	cfg config.HostConfig,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		cfg:         cfg,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// IssueToken exchanges the issuer secret for an access token bound to the
// given ledger address. The token id is stored in Redis so the token can be
// revoked before expiry.
func (u *authUsecase) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.IssuerSecret), []byte(u.cfg.IssuerSecret)) != 1 {
		u.log.Warnf("Token issuance rejected for address %s", req.Address)
		return nil, ErrBadIssuerSecret
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(req.Address)
	if err != nil {
		u.log.Errorf("Failed to generate access token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", req.Address, tokenID)
	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Errorf("Failed to store access token: %+v", err)
		return nil, err
	}

	u.log.Infof("Token issued: address=%s", req.Address)
	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// RevokeToken deletes the current token from Redis, invalidating it ahead of
// its expiry.
func (u *authUsecase) RevokeToken(ctx context.Context) error {
	address, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return ErrNoCaller
	}
	tokenID, ok := middleware.GetTokenIDFromContext(ctx)
	if !ok {
		return ErrNoCaller
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", address, tokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Errorf("Failed to revoke token: %+v", err)
		return err
	}

	u.log.Infof("Token revoked: address=%s", address)
	return nil
}
