package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/events"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/sequence"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - migrate: Create or update every table
// - admin:   Create the admin account if it does not exist
// - import:  Load a legacy JSON store export

type seedFlags struct {
	Admin  adminFlags
	Import importFlags
}

type adminFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
}

type importFlags struct {
	cmd  *flag.FlagSet
	file *string
}

// seedDeps is populated from the same providers the server uses.
type seedDeps struct {
	fx.In

	Config   *config.Config
	DB       *gorm.DB
	Logger   *slog.Logger
	AuthUC   usecase.AuthUsecase
	ImportUC usecase.ImportUsecase
}

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	flags := seedFlags{
		Admin: adminFlags{
			cmd:      adminCmd,
			username: adminCmd.String("username", "", "Admin username (defaults to auth.adminUsername)"),
			password: adminCmd.String("password", "", "Admin password (defaults to auth.adminPassword)"),
		},
		Import: importFlags{
			cmd:  importCmd,
			file: importCmd.String("file", "db.json", "Legacy JSON store to import"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, flags *seedFlags) error {
	switch os.Args[1] {
	case "migrate":
		return withDeps(ctx, func(ctx context.Context, deps seedDeps) error {
			return handleMigrate(ctx, deps)
		})
	case "admin":
		if err := flags.Admin.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withDeps(ctx, func(ctx context.Context, deps seedDeps) error {
			return handleAdmin(ctx, deps, flags)
		})
	case "import":
		if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withDeps(ctx, func(ctx context.Context, deps seedDeps) error {
			return handleImport(ctx, deps, *flags.Import.file)
		})
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

// withDeps starts the persistence providers, runs fn and stops them again.
func withDeps(ctx context.Context, fn func(context.Context, seedDeps) error) error {
	var deps seedDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			gormstore.New,
			gormstore.NewProductRepository,
			gormstore.NewServiceRepository,
			gormstore.NewBlogRepository,
			gormstore.NewTicketRepository,
			gormstore.NewSettingsRepository,
			gormstore.NewAdminUserRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			events.NewEventPublisher,
			sequence.NewSequenceGenerator,
			qrcode.NewQRCodeService,
			impl.NewAuthService,
			impl.NewTicketService,
			impl.NewImportService,
		),
		fx.Populate(&deps),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}

	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			deps.Logger.Warn("Failed to stop dependencies", slog.Any("error", err))
		}
	}()

	return fn(ctx, deps)
}

func handleMigrate(ctx context.Context, deps seedDeps) error {
	if err := gormstore.Migrate(deps.DB.WithContext(ctx)); err != nil {
		return err
	}

	deps.Logger.Info("Schema migrated")

	return nil
}

func printUsage() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate                 Create or update every table")
	fmt.Println("  admin   [-username -password]")
	fmt.Println("                          Create the admin account if it does not exist")
	fmt.Println("  import  [-file db.json] Load a legacy JSON store export")
	fmt.Println()
	fmt.Println("Configuration is read from config/config.yaml and the environment.")
}
