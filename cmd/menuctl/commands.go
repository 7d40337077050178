package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/repository/postgres"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/service/session"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
	"github.com/kingrain94/digital-menu-api/pkg/password"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrTenantRequired   = errors.New("tenant is required")
	ErrNoSharedSessions = errors.New("tokens need SESSION_STORE=redis; a memory session store is private to one process")
)

// commandFactory opens backing connections only for the commands that need them.
type commandFactory struct {
	cfg    *config.Config
	logger *logger.Logger

	db    *config.DatabaseConnections
	redis *redis.Client
}

func newCommandFactory(cfg *config.Config, logger *logger.Logger) *commandFactory {
	return &commandFactory{cfg: cfg, logger: logger}
}

func (f *commandFactory) Close() {
	if f.db != nil {
		_ = f.db.Close()
	}
	if f.redis != nil {
		_ = f.redis.Close()
	}
}

func (f *commandFactory) NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Operator tool for the digital menu platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		f.NewCreateSuperAdminCmd(),
		f.NewTokenCmd(),
		f.NewWatchCmd(),
	)
	return root
}

// NewCreateSuperAdminCmd bootstraps an operator account. Super-admins can
// not be created over HTTP.
func (f *commandFactory) NewCreateSuperAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Create a super-admin account. Usage: menuctl create-superadmin -u [username] -p [password]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			plain, _ := cmd.Flags().GetString("password")
			if username == "" {
				return ErrUsernameRequired
			}

			users, err := f.userService()
			if err != nil {
				return err
			}

			user, err := users.CreateSuperAdmin(cmd.Context(), username, plain)
			if err != nil {
				return fmt.Errorf("failed to create super-admin: %w", err)
			}

			f.logger.Infof("Created super-admin %s (%s)", user.Username, user.ID)
			cmd.Println(user.ID)
			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "Username")
	cmd.Flags().StringP("password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewTokenCmd opens a session for an existing user and prints its bearer token.
func (f *commandFactory) NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user. Usage: menuctl token -u [username]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			if username == "" {
				return ErrUsernameRequired
			}
			if f.cfg.SessionStore != config.SessionStoreRedis {
				return ErrNoSharedSessions
			}

			ctx := cmd.Context()
			users, err := f.userService()
			if err != nil {
				return err
			}
			user, err := users.GetByUsername(ctx, username)
			if err != nil {
				return fmt.Errorf("failed to find user %s: %w", username, err)
			}

			client, err := f.redisClient(ctx)
			if err != nil {
				return err
			}
			auth := service.NewAuthService(users, session.NewRedisStore(client), f.cfg.JWTSecretKey, f.cfg.SessionTTL)

			result, err := auth.IssueToken(ctx, user)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			cmd.Println(result.Token)
			cmd.PrintErrf("Expires at %s\n", result.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "Username")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

// NewWatchCmd prints live menu events for a tenant until interrupted.
func (f *commandFactory) NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print live menu events of a tenant. Usage: menuctl watch -t [tenant id]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenantID, _ := cmd.Flags().GetString("tenant")
			baseURL, _ := cmd.Flags().GetString("url")
			if tenantID == "" {
				return ErrTenantRequired
			}
			if baseURL == "" {
				baseURL = fmt.Sprintf("ws://localhost:%d", f.cfg.ServerPort)
			}

			return watchMenu(cmd, fmt.Sprintf("%s/api/public/menu/%s/stream", baseURL, tenantID))
		},
	}

	cmd.Flags().StringP("tenant", "t", "", "Tenant id")
	cmd.Flags().String("url", "", "Server websocket base URL, e.g. ws://localhost:10000")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func watchMenu(cmd *cobra.Command, url string) error {
	ctx := cmd.Context()

	cmd.PrintErrf("Connecting to %s...\n", url)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, http.Header{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	cmd.PrintErrln("Connected! Waiting for menu events...")
	done := make(chan error, 1)
	go func() {
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				done <- err
				return
			}
			cmd.Println(string(message))
		}
	}()

	select {
	case err := <-done:
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			return nil
		}
		return fmt.Errorf("read error: %w", err)
	case <-ctx.Done():
		cmd.PrintErrln("Disconnecting...")
		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			return fmt.Errorf("write close: %w", err)
		}
		select {
		case <-done:
		case <-time.After(time.Second):
		}
		return nil
	}
}

func (f *commandFactory) userService() (*service.UserService, error) {
	if f.db == nil {
		db, err := config.NewDatabaseConnections(f.cfg.AppEnv)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		f.db = db
	}
	repo := postgres.NewPostgresRepository(f.db)
	return service.NewUserService(repo, password.NewBcryptHasher(0), f.cfg.AllowRegistration), nil
}

func (f *commandFactory) redisClient(ctx context.Context) (*redis.Client, error) {
	if f.redis == nil {
		client, err := config.DefaultRedisConfig().GetClient(ctx)
		if err != nil {
			return nil, err
		}
		f.redis = client
	}
	return f.redis, nil
}
