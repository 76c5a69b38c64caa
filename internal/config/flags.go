package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/microblog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-w int      bcrypt work factor for password/token digests
//	-n int      default feed page size
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt work factor")
	fs.IntVar(&config.FeedPageSize, "n", config.FeedPageSize, "default feed page size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
