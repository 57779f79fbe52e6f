// Command build_db loads the baseball statistics database from the upstream
// sources. The connection string is positional; flags pick the sources and the
// season window.
//
//	build_db [flags] <dsn>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/cache"
	"mlbstats/ingestion/internal/client"
	"mlbstats/ingestion/internal/config"
	"mlbstats/ingestion/internal/loader"
	"mlbstats/ingestion/internal/repository"
)

func main() {
	var (
		startYear   = flag.Int("start", 2017, "first season to load")
		endYear     = flag.Int("end", 2019, "last season to load")
		all         = flag.Bool("all", false, "load every source")
		lookup      = flag.Bool("lookup", false, "load the player lookup table")
		statcast    = flag.Bool("statcast", false, "load pitch-level statcast data")
		gamelog     = flag.Bool("gamelog", false, "load retrosheet game logs and lineups")
		retrosplits = flag.Bool("retrosplits", false, "load per-player single-game stats")
		rosters     = flag.Bool("rosters", false, "load team rosters")
		teams       = flag.Bool("teams", false, "seed the franchise table")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <dsn>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	dsn := flag.Arg(0)

	setupLogger()

	cfg := config.MustLoad()
	log.Info().
		Int("start", *startYear).
		Int("end", *endYear).
		Msg("Starting database build")

	if *startYear > *endYear {
		log.Fatal().Msg("start season is after end season")
	}

	ctx := context.Background()

	db, err := repository.NewDatabaseDSN(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	var archive client.ArchiveCache
	redisCache, err := cache.NewRedisCache(cache.Config{
		Host:     cfg.RedisHost,
		Port:     strconv.Itoa(cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without archive cache")
	} else {
		defer redisCache.Close()
		archive = redisCache
		log.Info().Msg("Archive cache connected")
	}

	src := client.NewClient(cfg, archive)
	ld := loader.New(src, db, loader.Options{CommitEachUnit: cfg.CommitEachUnit})

	// The lookup table loads first so everything else can be joined to it as
	// soon as it lands. Teams go last; they depend on nothing.
	if *all || *lookup {
		if err := ld.LoadPlayerLookup(ctx); err != nil {
			log.Fatal().Err(err).Msg("Player lookup load failed")
		}
	}

	if *all || *statcast {
		start := time.Date(*startYear, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*endYear, time.November, 1, 0, 0, 0, 0, time.UTC)
		if err := ld.LoadStatcast(ctx, start, end); err != nil {
			log.Fatal().Err(err).Msg("Statcast load failed")
		}
	}

	if *all || *gamelog {
		for year := *startYear; year <= *endYear; year++ {
			if err := ld.LoadGameLogs(ctx, year, loader.GameTypeRegularSeason); err != nil {
				log.Fatal().Err(err).Int("year", year).Msg("Game log load failed")
			}
		}
	}

	if *all || *retrosplits {
		if err := ld.LoadPlayerGameStats(ctx, *startYear, *endYear); err != nil {
			log.Fatal().Err(err).Msg("Player game stats load failed")
		}
	}

	if *all || *rosters {
		for year := *startYear; year <= *endYear; year++ {
			if err := ld.LoadRosters(ctx, year); err != nil {
				log.Fatal().Err(err).Int("year", year).Msg("Roster load failed")
			}
		}
	}

	if *all || *teams {
		if err := ld.LoadTeams(ctx); err != nil {
			log.Fatal().Err(err).Msg("Team seed failed")
		}
	}

	log.Info().Msg("Database build complete")
}

// setupLogger configures the zerolog logger
func setupLogger() {
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)
}
