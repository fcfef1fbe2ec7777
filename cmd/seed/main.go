// Command seed creates the first admin and prints a bearer token for it.
//
// Running it again reuses the existing admin. With -demo it also creates a
// team with an installer and prints the installer's token.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"fieldops/cmd"
	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/sethvargo/go-envconfig"
	"gorm.io/gorm"
)

func main() {
	adminName := flag.String("admin", "Dispatcher", "display name of the admin to create")
	demo := flag.Bool("demo", false, "also create a demo team with an installer")
	flag.Parse()

	if err := run(*adminName, *demo); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(adminName string, demo bool) error {
	ctx := context.Background()

	if err := cmd.LoadDotEnv(".env"); err != nil {
		return err
	}
	config, err := cmd.LoadConfig(ctx, envconfig.OsLookuper())
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: config.LogLevel, Pretty: true})

	db, err := cmd.OpenDatabase(ctx, config, log)
	if err != nil {
		return err
	}
	app := cmd.NewCompositionRoot(config, db)
	tokens, err := app.CreateSessionTokens()
	if err != nil {
		return err
	}

	admin, err := ensureAdmin(ctx, db, adminName)
	if err != nil {
		return err
	}
	token, err := tokens.Issue(admin.ID(), time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("admin %s (%s)\n  token: %s\n", admin.Name(), admin.ID(), token)

	if !demo {
		return nil
	}

	actor := admin.Actor()
	teamCmd, err := commands.NewCreateTeamCommand(actor, kernel.NewUUID(), "Demo crew")
	if err != nil {
		return err
	}
	createdTeam, err := app.CreateCreateTeamCommandHandler().Handle(ctx, teamCmd)
	if err != nil {
		return err
	}

	installerCmd, err := commands.NewCreateInstallerCommand(actor, kernel.NewUUID(), createdTeam.ID(), "Demo installer", nil)
	if err != nil {
		return err
	}
	installer, err := app.CreateCreateInstallerCommandHandler().Handle(ctx, installerCmd)
	if err != nil {
		return err
	}
	token, err = tokens.Issue(installer.ID(), time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("team %s (%s)\ninstaller %s (%s)\n  token: %s\n",
		createdTeam.Name(), createdTeam.ID(), installer.Name(), installer.ID(), token)
	return nil
}

// ensureAdmin returns the oldest admin, creating one when none exists.
func ensureAdmin(ctx context.Context, db *gorm.DB, name string) (*user.User, error) {
	users := postgres.NewGormUnitOfWorkFactory(db).Create().UserRepository()

	var existing uuid.UUID
	err := db.WithContext(ctx).
		Raw(`SELECT id FROM users WHERE role = ? ORDER BY created_at LIMIT 1`, user.Admin.String()).
		Row().
		Scan(&existing)
	switch {
	case err == nil:
		id, idErr := kernel.UUIDFromBytes(existing[:])
		if idErr != nil {
			return nil, idErr
		}
		return users.Get(ctx, id)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	admin, err := user.NewAdmin(kernel.NewUUID(), name, nil, time.Now())
	if err != nil {
		return nil, err
	}
	if err = users.Add(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
