// Command prune-history trims every user's search history to the newest
// HISTORY_MAX_ITEMS entries. The limit is enforced on every insert, so this
// is only needed after lowering it.
//
// Usage:
//
//	prune-history [-keep=N]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pruneSQL = `
DELETE FROM search_history h
USING (
	SELECT id, row_number() OVER (PARTITION BY user_id ORDER BY searched_at DESC, id DESC) AS rn
	FROM search_history
) ranked
WHERE h.id = ranked.id AND ranked.rn > $1`

func main() {
	keep := flag.Int("keep", envInt("HISTORY_MAX_ITEMS", 50), "entries to keep per user")
	flag.Parse()

	if *keep < 1 {
		fmt.Fprintln(os.Stderr, "Usage: prune-history [-keep=N] (N >= 1)")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx, pruneSQL, *keep)
	if err != nil {
		log.Fatalf("prune history: %v", err)
	}

	fmt.Printf("Deleted %d history entries beyond the newest %d per user.\n", tag.RowsAffected(), *keep)
}

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil {
		return v
	}
	return def
}
