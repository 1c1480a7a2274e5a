package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"hypehouse-backend/cmd/labelctl/output"
	"hypehouse-backend/internal/domains/auth/model"
	authRepo "hypehouse-backend/internal/domains/auth/repository"
	authService "hypehouse-backend/internal/domains/auth/service"
	"hypehouse-backend/pkg/cache"
)

var (
	userEmail    string
	userPassword string
	grantAdmin   bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login identities",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a login identity",
	Example: `  labelctl user create --email ops@hypehouse.example --password '...' --admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := newAuthService(pool)
		user, err := svc.CreateUser(ctx, model.CreateUserRequest{Email: userEmail, Password: userPassword})
		if err != nil {
			return err
		}
		output.Success("Created user %s (%s)", user.Email, user.ID)

		if grantAdmin {
			if err := svc.GrantRole(ctx, user.Email, model.RoleAdmin); err != nil {
				return err
			}
			output.Success("Granted %s to %s", model.RoleAdmin, user.Email)
		}
		return nil
	},
}

// newAuthService: CLI không phát token nên không cần jwt manager; cache chỉ để thỏa constructor
func newAuthService(pool *pgxpool.Pool) authService.ServiceInterface {
	return authService.NewAuthService(authRepo.NewPostgresRepository(pool), cache.NewMemoryCache(), nil, authService.Config{})
}

func withAuth(ctx context.Context, fn func(authService.ServiceInterface) error) error {
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(newAuthService(pool))
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "Email đăng nhập")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Mật khẩu (8-128 ký tự)")
	userCreateCmd.Flags().BoolVar(&grantAdmin, "admin", false, "Grant role admin ngay sau khi tạo")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}
