package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adhop/internal/combat"
	"adhop/internal/config"
	"adhop/internal/util"
)

func main() {
	var settings config.Settings
	if err := config.ParseEnv(&settings); err != nil {
		panic(err)
	}

	var cfgDir, out, name string
	var seed int64
	var n, workers, missionIdx int
	var verbose, debug, list bool
	flag.StringVar(&cfgDir, "config", settings.ConfigDir, "config dir")
	flag.StringVar(&out, "out", settings.Out, "output file (single) or summary file (batch)")
	flag.StringVar(&name, "name", "", "player name")
	flag.IntVar(&missionIdx, "mission", 0, "index of the mission to run")
	flag.Int64Var(&seed, "seed", settings.Seed, "seed (0 = random)")
	flag.IntVar(&n, "n", settings.Runs, "number of encounters")
	flag.IntVar(&workers, "workers", settings.Workers, "batch workers")
	flag.BoolVar(&verbose, "v", settings.Verbose, "enable verbose logging")
	flag.BoolVar(&debug, "debug", settings.Debug, "enable debug logging")
	flag.BoolVar(&list, "list", false, "list missions and exit")
	flag.Parse()

	logger, err := newLogger(verbose, debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if seed == 0 {
		s, err := util.NewSeed()
		if err != nil {
			logger.Fatal("draw seed", zap.Error(err))
		}
		seed = s
	}

	actorsCfg, missionsCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		logger.Fatal("load config", zap.String("dir", cfgDir), zap.Error(err))
	}
	book, err := combat.NewPresetBook(actorsCfg)
	if err != nil {
		logger.Fatal("build presets", zap.Error(err))
	}
	rng := util.New(seed)
	board, err := combat.NewMissionBoard(missionsCfg, book, rng)
	if err != nil {
		logger.Fatal("build mission board", zap.Error(err))
	}
	if list {
		for i, title := range board.Titles() {
			fmt.Printf("%d. %s\n", i, title)
		}
		return
	}
	if err := board.Select(missionIdx); err != nil {
		logger.Fatal("select mission", zap.Error(err))
	}

	player, err := book.Player(combat.NormalizeName(name))
	if err != nil {
		logger.Fatal("build player", zap.Error(err))
	}
	logger.Info("player ready",
		zap.String("name", player.Name),
		zap.Int("max_hp", player.MaxHP),
		zap.Int("min_damage", player.MinDamage),
		zap.Int("max_damage", player.MaxDamage),
		zap.Float64("retreat_ratio", player.RetreatRatio),
		zap.Int64("seed", seed))

	if n <= 1 {
		campaign := combat.NewCampaign(player, board)
		campaign.Emit = eventLogger(logger)
		res, err := combat.RunSingle(campaign, missionIdx, rng, true)
		if err != nil {
			logger.Fatal("run encounter", zap.Error(err))
		}
		logOutcome(logger, res.Outcome)
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			logger.Fatal("write result", zap.String("out", out), zap.Error(err))
		}
		fmt.Printf("Single simsvc finished. Result=%s, Turns=%d -> %s\n", res.Outcome.Result, res.Outcome.Turns, out)
		return
	}

	sum := combat.RunBatch(combat.BatchConfig{Runs: n, Seed: seed, Workers: workers}, *player, board.Active())
	logSummary(logger, sum)
	if err := os.WriteFile(out, combat.MarshalPretty(sum), 0644); err != nil {
		logger.Fatal("write summary", zap.String("out", out), zap.Error(err))
	}
	p := message.NewPrinter(language.English)
	p.Printf("Batch %d done: win %.2f%%, loss %.2f%%, retreat %.2f%% -> %s\n",
		n, sum.WinRate*100, sum.LossRate*100, sum.RetreatRate*100, filepath.Base(out))
}
