package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/token"
)

// TokenCmd mints a bearer token for manual testing against a running API.
func TokenCmd() *cobra.Command {
	var userID, email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed JWT for the given user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := bson.ObjectIDFromHex(userID); err != nil {
				return errors.New("--user must be a 24 char hex ObjectID")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			tm := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
			signed, err := tm.Issue(userID, email)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (hex ObjectID)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
