package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"hypehouse-backend/cmd/labelctl/output"
	"hypehouse-backend/internal/config"
)

var (
	// Global flags
	dbURL      string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "labelctl",
	Short: "Hype House operator tool",
	Long: `labelctl quản lý database của Hype House backend:

  migrate  - áp dụng / xem trạng thái migration, cấp quyền cho role của API
  user     - tạo identity đăng nhập admin
  role     - grant / revoke / list role`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute chạy root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (mặc định lấy từ DB_* env)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// connect mở pool từ --db, hoặc từ cùng DB_* env mà API dùng
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	url := dbURL
	if url == "" {
		cfg, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}
		url = cfg.ConnectionString()
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
