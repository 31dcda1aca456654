package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	arearepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/area"
	merchantrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/merchant"
	userrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tringgo-backend/internal/service/account"
)

var (
	adminLogin string
	adminArea  string
)

var assignAdminCmd = &cobra.Command{
	Use:   "assign-admin",
	Short: "Put an admin account in charge of an area",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminLogin == "" || adminArea == "" {
			return errors.New("assign-admin: --username and --area are required")
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := account.NewService(logger, userrepo.New(pool), merchantrepo.New(pool), arearepo.New(pool))
		profile, err := svc.AssignAdminArea(ctx, adminLogin, adminArea)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "admin %s now manages %q (area %s)\n",
			profile.UserID, adminArea, profile.AreaID)
		return nil
	},
}

func init() {
	assignAdminCmd.Flags().StringVarP(&adminLogin, "username", "u", "", "admin username or email")
	assignAdminCmd.Flags().StringVarP(&adminArea, "area", "a", "", "area name")
}
