package main

import (
	"fmt"
	"os"

	"accounts/config"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase"
	"accounts/internal/usecase/impl"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	root := &cobra.Command{
		Use:          "accountsctl",
		Short:        "Operator tooling for the accounts service",
		SilenceUsage: true,
	}
	root.AddCommand(newSeedAdminCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// seedAdminConfig holds flag overrides for the seed-admin command. Values left
// empty fall back to the bootstrap section of the service config.
type seedAdminConfig struct {
	name     string
	email    string
	password string
}

func newSeedAdminCmd() *cobra.Command {
	flags := &seedAdminConfig{}

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the initial admin account if it does not exist",
		Long: `Create the initial admin account. The operation is idempotent:
if an account with the configured email already exists, nothing is written.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeedAdmin(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "admin display name (default: bootstrap.adminName from config)")
	cmd.Flags().StringVar(&flags.email, "email", "", "admin email (default: bootstrap.adminEmail from config)")
	cmd.Flags().StringVar(&flags.password, "password", "", "admin password (default: BOOTSTRAP_ADMINPASSWORD env via config)")

	return cmd
}

func runSeedAdmin(cmd *cobra.Command, flags *seedAdminConfig) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	input, err := resolveSeedInput(cfg, flags)
	if err != nil {
		return err
	}

	db, closeDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	bootstrap := impl.NewBootstrapService(impl.BootstrapServiceParams{
		AccountRepo: postgres.NewAccountRepository(db),
		Hasher:      newPasswordHasher(cfg),
		Logger:      logger,
	})

	created, err := bootstrap.EnsureAdminAccount(cmd.Context(), input)
	if err != nil {
		return errors.Wrap(err, "failed to ensure admin account")
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "admin account %s created\n", input.Email)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "admin account %s already exists, nothing to do\n", input.Email)
	}

	return nil
}

func resolveSeedInput(cfg *config.Config, flags *seedAdminConfig) (*usecase.SeedAdminInput, error) {
	input := &usecase.SeedAdminInput{
		Name:     flags.name,
		Email:    flags.email,
		Password: flags.password,
	}

	if cfg.Bootstrap != nil {
		if input.Name == "" {
			input.Name = cfg.Bootstrap.AdminName
		}
		if input.Email == "" {
			input.Email = cfg.Bootstrap.AdminEmail
		}
		if input.Password == "" {
			input.Password = cfg.Bootstrap.AdminPassword
		}
	}

	if input.Email == "" {
		return nil, errors.New("admin email is required; pass --email or set bootstrap.adminEmail")
	}
	if input.Password == "" {
		return nil, errors.New("admin password is required; pass --password or set BOOTSTRAP_ADMINPASSWORD")
	}

	return input, nil
}

// openDatabase connects outside the Fx lifecycle; a one-shot command has no
// use for pool monitoring or start hooks.
func openDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return db, func() { _ = sqlDB.Close() }, nil
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}
