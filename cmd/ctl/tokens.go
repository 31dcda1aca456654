package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	arearepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/area"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/authmethod"
	merchantrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/merchant"
	placerepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/place"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/tringgo-backend/internal/auth"
	authsvc "github.com/heartmarshall/tringgo-backend/internal/service/auth"
)

var cleanupTokensCmd = &cobra.Command{
	Use:   "cleanup-tokens",
	Short: "Delete expired and revoked refresh tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := authsvc.NewService(
			logger,
			userrepo.New(pool), arearepo.New(pool), merchantrepo.New(pool), placerepo.New(pool), token.New(pool),
			authmethod.New(pool),
			postgres.NewTxManager(pool),
			authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
			nil,
			cfg.Auth,
		)

		n, err := svc.CleanupExpiredTokens(ctx)
		if err != nil {
			return fmt.Errorf("cleanup tokens: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired or revoked refresh tokens\n", n)
		return nil
	},
}
