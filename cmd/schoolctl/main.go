package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/app/services"
	"github.com/okul/schoolhub/internal/client"
	"github.com/okul/schoolhub/internal/config"
	"github.com/okul/schoolhub/internal/guard"
	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/logger"
	"github.com/okul/schoolhub/internal/pkg/tokenstore"
	"github.com/okul/schoolhub/internal/session"
)

const usage = `schoolctl - School LMS command line client

Usage:
  schoolctl [flags] <command> [args]

Commands:
  login      authenticate with email and password
  logout     end the current session
  whoami     print the current user
  profile    update the current user's profile
  dashboard  print the school dashboard statistics
  notices    list notices visible to the current user

Flags:
`

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	configPath := flag.String("config", config.GetEnv("SCHOOLHUB_CONFIG", "config.yml"), "path to config file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
		Output: os.Stderr,
	})

	store, err := tokenstore.NewFileStore(cfg.Auth.TokenFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open token store")
	}

	var sess *session.Manager
	api, err := client.New(client.Options{
		BaseURL: cfg.API.BaseURL,
		Store:   store,
		Timeout: cfg.RequestTimeout(),
		Logger:  logger.Default(),
		OnSessionExpired: func() {
			if sess != nil {
				sess.Expire()
			}
			fmt.Fprintf(os.Stderr, "Session expired, please run: schoolctl login\n")
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create API client")
	}

	svcs := services.NewServices(api)
	sess = session.NewManager(svcs.Auth)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, svcs, sess, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svcs *services.Services, sess *session.Manager, cmd string, args []string) error {
	switch cmd {
	case "login":
		return cmdLogin(ctx, sess, args)
	case "logout":
		sess.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return cmdWhoami(ctx, sess)
	case "profile":
		return cmdProfile(ctx, sess, args)
	case "dashboard":
		return cmdDashboard(ctx, svcs, sess)
	case "notices":
		return cmdNotices(ctx, svcs, sess)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLogin(ctx context.Context, sess *session.Manager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Print("Email: ")
		if _, err := fmt.Scanln(email); err != nil {
			return fmt.Errorf("read email: %w", err)
		}
	}
	if *password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		*password = string(raw)
	}

	user, err := sess.Login(ctx, dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Role)
	fmt.Printf("Home: %s\n", guard.HomePath(user.Role))
	return nil
}

func cmdWhoami(ctx context.Context, sess *session.Manager) error {
	sess.Initialize(ctx)
	snap := sess.Snapshot()
	if snap.State != session.StateAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}

	u := snap.User
	fmt.Printf("%-12s %s\n", "ID:", u.ID)
	fmt.Printf("%-12s %s\n", "Name:", u.FullName())
	fmt.Printf("%-12s %s\n", "Email:", u.Email)
	fmt.Printf("%-12s %s\n", "Role:", u.Role)
	return nil
}

func cmdProfile(ctx context.Context, sess *session.Manager, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	firstName := fs.String("first-name", "", "new first name")
	lastName := fs.String("last-name", "", "new last name")
	phone := fs.String("phone", "", "new phone number")
	bio := fs.String("bio", "", "new bio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess.Initialize(ctx)
	if sess.State() != session.StateAuthenticated {
		return apperrors.ErrNotAuthenticated
	}

	req := dto.UpdateProfileRequest{}
	if *firstName != "" {
		req.FirstName = firstName
	}
	if *lastName != "" {
		req.LastName = lastName
	}
	if *phone != "" {
		req.Phone = phone
	}
	if *bio != "" {
		req.Bio = bio
	}

	user, err := sess.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated for %s\n", user.FullName())
	return nil
}

func cmdDashboard(ctx context.Context, svcs *services.Services, sess *session.Manager) error {
	sess.Initialize(ctx)
	decision := guard.Decide(sess.Snapshot(), models.RoleDeveloper, models.RolePrincipal)
	if decision.Action != guard.Allow {
		return fmt.Errorf("%w: dashboard requires a principal or developer account", apperrors.ErrRoleMismatch)
	}

	stats, err := svcs.Core.DashboardStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-22s %d\n", "Students:", stats.TotalStudents)
	fmt.Printf("%-22s %d\n", "Teachers:", stats.TotalTeachers)
	fmt.Printf("%-22s %d\n", "Classes:", stats.TotalClasses)
	fmt.Printf("%-22s %d\n", "Notices:", stats.TotalNotices)
	fmt.Printf("%-22s %d\n", "Pending assignments:", stats.PendingAssignments)
	fmt.Printf("%-22s %.1f%%\n", "Attendance:", stats.AttendancePercentage)
	return nil
}

func cmdNotices(ctx context.Context, svcs *services.Services, sess *session.Manager) error {
	sess.Initialize(ctx)
	if sess.State() != session.StateAuthenticated {
		return apperrors.ErrNotAuthenticated
	}

	notices, err := svcs.Notices.List(ctx, dto.ListParams{})
	if err != nil {
		return err
	}
	if len(notices) == 0 {
		fmt.Println("No notices.")
		return nil
	}

	for _, n := range notices {
		line := strings.TrimSpace(n.Title)
		fmt.Printf("[%s] %s\n", n.Priority, line)
	}
	return nil
}
