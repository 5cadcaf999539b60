package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ctxKey string

const dbKey ctxKey = "db"

const reportID = 1

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func contextDB(c *cli.Context) (*sql.DB, error) {
	db, ok := c.Context.Value(dbKey).(*sql.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Manage the singleton weekly report document",
		Flags: []cli.Flag{
			newDBURLFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Create the weekly_reports table and insert the default document if absent",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runInit,
			},
			{
				Name:  "reset",
				Usage: "Overwrite the stored document with the built-in default",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Required; confirms the stored document will be discarded",
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runReset,
			},
			{
				Name:   "show",
				Usage:  "Print the stored document as JSON",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runShow,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runInit(c *cli.Context) error {
	db, err := contextDB(c)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(c.Context, `
		CREATE TABLE IF NOT EXISTS weekly_reports (
			id INTEGER PRIMARY KEY,
			report_data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create weekly_reports table: %w", err)
	}

	var exists bool
	if err := db.QueryRowContext(c.Context,
		`SELECT EXISTS (SELECT 1 FROM weekly_reports WHERE id = $1)`, reportID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check for existing report: %w", err)
	}
	if exists {
		log.Println("weekly report already present, leaving it untouched")
		return nil
	}

	return writeDefault(c.Context, db)
}

func runReset(c *cli.Context) error {
	if !c.Bool("force") {
		return fmt.Errorf("refusing to overwrite the stored document without --force")
	}

	db, err := contextDB(c)
	if err != nil {
		return err
	}

	return writeDefault(c.Context, db)
}

func runShow(c *cli.Context) error {
	db, err := contextDB(c)
	if err != nil {
		return err
	}

	var payload []byte
	var updatedAt time.Time
	err = db.QueryRowContext(c.Context,
		`SELECT report_data, updated_at FROM weekly_reports WHERE id = $1`, reportID,
	).Scan(&payload, &updatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("no weekly report stored; run `seed init` first")
	}
	if err != nil {
		return fmt.Errorf("failed to read weekly report: %w", err)
	}

	fmt.Printf("updated_at: %s\n%s\n", updatedAt.Format(time.RFC3339), payload)
	return nil
}

func writeDefault(ctx context.Context, db *sql.DB) error {
	doc := domain.DefaultWeeklyData()
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode default report: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO weekly_reports (id, report_data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET report_data = EXCLUDED.report_data, updated_at = now()
	`, reportID, payload)
	if err != nil {
		return fmt.Errorf("failed to write default report: %w", err)
	}

	log.Printf("seeded weekly report for week starting %s", doc.WeekStarting)
	return nil
}
